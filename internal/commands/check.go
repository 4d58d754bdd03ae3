package commands

import (
	"context"
	"fmt"
	"log/slog"

	"smokecheck/internal/domain"
	"smokecheck/internal/services/filter"
)

// CheckCommand verifies that every manifest fixture exists.
type CheckCommand struct {
	manifestRepo domain.ManifestRepository
	checker      domain.FixtureChecker
	logger       *slog.Logger
}

// NewCheckCommand creates a new check command.
func NewCheckCommand(
	manifestRepo domain.ManifestRepository,
	checker domain.FixtureChecker,
	logger *slog.Logger,
) *CheckCommand {
	return &CheckCommand{
		manifestRepo: manifestRepo,
		checker:      checker,
		logger:       logger,
	}
}

// CheckRequest contains the parameters for the check command.
type CheckRequest struct {
	Root            string
	ExcludePatterns []string
}

// CheckResult contains the result of the check command.
type CheckResult struct {
	Report   *domain.CheckReport
	Excluded int
}

// Execute runs the check command. The result is returned even when fixtures are
// missing so callers can print every outcome; the error then joins the failures.
func (c *CheckCommand) Execute(ctx context.Context, req CheckRequest) (*CheckResult, error) {
	fixtures, err := c.manifestRepo.GetFixtures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixtures: %w", err)
	}

	var fixtureFilter domain.FixtureFilter = filter.NewNoOpFilter()
	if len(req.ExcludePatterns) > 0 {
		excludeFilter, filterErr := filter.NewExcludeFilter(req.ExcludePatterns, c.logger)
		if filterErr != nil {
			return nil, fmt.Errorf("failed to create exclude filter: %w", filterErr)
		}
		fixtureFilter = excludeFilter
	}

	selected := filter.Apply(fixtureFilter, fixtures)
	result := &CheckResult{Excluded: len(fixtures) - len(selected)}

	c.logger.DebugContext(ctx, "Running fixture check",
		"fixtures", len(selected),
		"excluded", result.Excluded,
		"root", req.Root)

	result.Report, err = c.checker.CheckAll(ctx, req.Root, selected)
	return result, err
}
