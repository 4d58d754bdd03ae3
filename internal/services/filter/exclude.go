package filter

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gobwas/glob"

	"smokecheck/internal/domain"
)

// ExcludeFilter skips fixtures whose name or slash-separated path matches a glob pattern.
type ExcludeFilter struct {
	patterns []glob.Glob
	sources  []string
	logger   *slog.Logger
}

// NewExcludeFilter creates a new exclude filter with the given patterns.
func NewExcludeFilter(patterns []string, logger *slog.Logger) (*ExcludeFilter, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no patterns provided for exclude filter")
	}

	compiledPatterns := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		compiledPatterns = append(compiledPatterns, compiled)
	}

	return &ExcludeFilter{
		patterns: compiledPatterns,
		sources:  patterns,
		logger:   logger,
	}, nil
}

// ShouldExclude returns true if the fixture matches any exclude pattern.
func (f *ExcludeFilter) ShouldExclude(fixture domain.Fixture) bool {
	path := filepath.ToSlash(fixture.Path())
	for i, pattern := range f.patterns {
		if pattern.Match(fixture.Name) || pattern.Match(path) {
			f.logger.Debug("Fixture excluded",
				"fixture", fixture.Name,
				"path", path,
				"pattern", f.sources[i])
			return true
		}
	}
	return false
}

// Apply returns the fixtures the filter keeps, preserving order.
func Apply(filter domain.FixtureFilter, fixtures []domain.Fixture) []domain.Fixture {
	kept := make([]domain.Fixture, 0, len(fixtures))
	for _, fixture := range fixtures {
		if !filter.ShouldExclude(fixture) {
			kept = append(kept, fixture)
		}
	}
	return kept
}
