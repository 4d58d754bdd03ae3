// Package fixture verifies that the static files tests depend on are present.
package fixture

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"smokecheck/internal/domain"
	smokeerrors "smokecheck/internal/errors"
	"smokecheck/internal/logging"
)

// defaultWorkers is the number of concurrent existence checks in CheckAll.
const defaultWorkers = 4

// DataFile is the smoke suite's built-in fixture, tests/smoke/data/datafile.txt.
//
//nolint:gochecknoglobals // Fixed fixture definition shared by the manifest defaults and the smoke test
var DataFile = domain.Fixture{
	Name:     "datafile",
	Segments: []string{"tests", "smoke", "data", "datafile.txt"},
}

// Checker performs read-only existence checks through a filesystem adapter.
type Checker struct {
	fs      domain.FileSystemAdapter
	workers int
	logger  *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithWorkers sets the number of concurrent checks used by CheckAll.
func WithWorkers(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.workers = n
		}
	}
}

// NewChecker creates a new fixture checker.
func NewChecker(fs domain.FileSystemAdapter, logger *slog.Logger, opts ...Option) *Checker {
	c := &Checker{
		fs:      fs,
		workers: defaultWorkers,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns the on-disk location of f. An empty root keeps the path relative
// to the process working directory.
func Resolve(root string, f domain.Fixture) string {
	if root == "" {
		return f.Path()
	}
	return filepath.Join(root, f.Path())
}

// Check stats the fixture and returns a *errors.FixtureError when it is absent.
// Only existence is examined; contents, size and permission bits are ignored.
func (c *Checker) Check(ctx context.Context, root string, f domain.Fixture) error {
	path := Resolve(root, f)

	if _, err := c.fs.Stat(path); err != nil {
		logging.WithFixture(c.logger, f.Name, path).DebugContext(ctx, "Fixture missing", "error", err)
		return smokeerrors.NewFixtureError(f.Name, path, err)
	}

	logging.WithFixture(c.logger, f.Name, path).DebugContext(ctx, "Fixture present")
	return nil
}

// checkTask is one fixture queued for a worker.
type checkTask struct {
	index   int
	fixture domain.Fixture
}

// CheckAll checks every fixture on a bounded worker pool. Results keep input order.
// The returned error joins every missing-fixture error and is nil when all exist.
func (c *Checker) CheckAll(ctx context.Context, root string, fixtures []domain.Fixture) (*domain.CheckReport, error) {
	logger, runID := logging.WithRun(c.logger)
	report := &domain.CheckReport{
		RunID:   runID,
		Results: make([]domain.CheckResult, len(fixtures)),
	}

	if len(fixtures) == 0 {
		return report, nil
	}

	workers := min(c.workers, len(fixtures))
	logger.InfoContext(ctx, "Checking fixtures", "count", len(fixtures), "workers", workers, "root", root)

	taskChan := make(chan checkTask, len(fixtures))
	for i, f := range fixtures {
		taskChan <- checkTask{index: i, fixture: f}
	}
	close(taskChan)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				result := domain.CheckResult{
					Fixture: task.fixture,
					Path:    Resolve(root, task.fixture),
				}
				if err := ctx.Err(); err != nil {
					result.Err = err
				} else {
					result.Err = c.Check(ctx, root, task.fixture)
				}
				// Each worker writes a distinct index.
				report.Results[task.index] = result
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}

	failed := report.Failed()
	logger.InfoContext(ctx, "Fixture check completed",
		"passed", len(fixtures)-len(failed),
		"failed", len(failed))

	if len(failed) == 0 {
		return report, nil
	}

	errs := make([]error, 0, len(failed))
	for _, result := range failed {
		errs = append(errs, result.Err)
	}
	return report, smokeerrors.Join(errs...)
}
