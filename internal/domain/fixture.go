package domain

import (
	"context"
	"path/filepath"
)

// Fixture is a static input file a test depends on being present.
type Fixture struct {
	Name     string   `yaml:"name"`
	Segments []string `yaml:"path,flow"`
	URL      string   `yaml:"url,omitempty"`
}

// Path returns the fixture location relative to the fixture root.
func (f Fixture) Path() string {
	return filepath.Join(f.Segments...)
}

// CheckResult is the outcome of a single existence check.
type CheckResult struct {
	Fixture Fixture
	Path    string
	Err     error
}

// Passed reports whether the fixture was found.
func (r CheckResult) Passed() bool {
	return r.Err == nil
}

// FixtureChecker verifies that fixtures exist on disk.
type FixtureChecker interface {
	// Check returns an error matching errors.ErrMissingFixture when the fixture is absent.
	Check(ctx context.Context, root string, fixture Fixture) error

	// CheckAll checks every fixture and returns one result per fixture in input order.
	CheckAll(ctx context.Context, root string, fixtures []Fixture) (*CheckReport, error)
}

// CheckReport collects the results of one check run.
type CheckReport struct {
	RunID   string
	Results []CheckResult
}

// Failed returns the results whose fixture was missing.
func (r *CheckReport) Failed() []CheckResult {
	var failed []CheckResult
	for _, result := range r.Results {
		if !result.Passed() {
			failed = append(failed, result)
		}
	}
	return failed
}

// FixtureFilter determines whether a fixture should be skipped.
type FixtureFilter interface {
	ShouldExclude(fixture Fixture) bool
}
