package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"smokecheck/internal/domain"
	"smokecheck/internal/fixture"
	"smokecheck/internal/logging"
)

const (
	// defaultFetchConcurrency is the number of concurrent fixture downloads.
	defaultFetchConcurrency = 4

	fixtureDirPermissions  = 0o755
	fixtureFilePermissions = 0o644
)

// FetchCommand downloads fixtures that declare a source URL.
type FetchCommand struct {
	manifestRepo domain.ManifestRepository
	checker      domain.FixtureChecker
	httpAdapter  domain.HTTPAdapter
	fs           domain.FileSystemAdapter
	logger       *slog.Logger
}

// NewFetchCommand creates a new fetch command.
func NewFetchCommand(
	manifestRepo domain.ManifestRepository,
	checker domain.FixtureChecker,
	httpAdapter domain.HTTPAdapter,
	fs domain.FileSystemAdapter,
	logger *slog.Logger,
) *FetchCommand {
	return &FetchCommand{
		manifestRepo: manifestRepo,
		checker:      checker,
		httpAdapter:  httpAdapter,
		fs:           fs,
		logger:       logger,
	}
}

// FetchRequest contains the parameters for the fetch command.
type FetchRequest struct {
	Root        string
	Force       bool
	Concurrency int
}

// FetchResult contains the result of the fetch command.
type FetchResult struct {
	Downloaded []string
	Present    []string
	NoSource   []string
	Report     *domain.CheckReport
}

// Execute downloads missing fixtures (or all fixtures with a URL when Force is set)
// and then re-checks the whole manifest against disk.
func (c *FetchCommand) Execute(ctx context.Context, req FetchRequest) (*FetchResult, error) {
	logger := logging.WithOperation(c.logger, "fetch")

	fixtures, err := c.manifestRepo.GetFixtures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixtures: %w", err)
	}

	result := &FetchResult{}
	var pending []domain.Fixture
	for _, f := range fixtures {
		switch {
		case f.URL == "":
			result.NoSource = append(result.NoSource, f.Name)
		case !req.Force && c.checker.Check(ctx, req.Root, f) == nil:
			result.Present = append(result.Present, f.Name)
		default:
			pending = append(pending, f)
		}
	}

	logger.InfoContext(ctx, "Fetching fixtures",
		"pending", len(pending),
		"present", len(result.Present),
		"no_source", len(result.NoSource))

	concurrency := req.Concurrency
	if concurrency <= 0 {
		concurrency = defaultFetchConcurrency
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, f := range pending {
		g.Go(func() error {
			if fetchErr := c.fetchOne(gctx, req.Root, f); fetchErr != nil {
				return fmt.Errorf("failed to fetch %s: %w", f.Name, fetchErr)
			}
			mu.Lock()
			result.Downloaded = append(result.Downloaded, f.Name)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	result.Report, err = c.checker.CheckAll(ctx, req.Root, fixtures)
	return result, err
}

// fetchOne downloads a fixture and writes it below root.
func (c *FetchCommand) fetchOne(ctx context.Context, root string, f domain.Fixture) error {
	path := fixture.Resolve(root, f)
	logger := logging.WithFixture(c.logger, f.Name, path)

	data, err := c.httpAdapter.Download(ctx, f.URL)
	if err != nil {
		return err
	}

	if mkdirErr := c.fs.MkdirAll(filepath.Dir(path), fixtureDirPermissions); mkdirErr != nil {
		return fmt.Errorf("failed to create fixture directory: %w", mkdirErr)
	}
	if writeErr := c.fs.WriteFile(path, data, fixtureFilePermissions); writeErr != nil {
		return fmt.Errorf("failed to write fixture: %w", writeErr)
	}

	logger.DebugContext(ctx, "Fixture downloaded", "url", f.URL, "bytes", len(data))
	return nil
}
