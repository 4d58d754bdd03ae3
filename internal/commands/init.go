package commands

import (
	"context"
	"fmt"
	"log/slog"

	"smokecheck/internal/domain"
	smokeerrors "smokecheck/internal/errors"
)

// InitCommand writes a starter manifest.
type InitCommand struct {
	manifestRepo domain.ManifestRepository
	fs           domain.FileSystemAdapter
	logger       *slog.Logger
}

// NewInitCommand creates a new init command.
func NewInitCommand(
	manifestRepo domain.ManifestRepository,
	fs domain.FileSystemAdapter,
	logger *slog.Logger,
) *InitCommand {
	return &InitCommand{
		manifestRepo: manifestRepo,
		fs:           fs,
		logger:       logger,
	}
}

// InitRequest contains the parameters for the init command.
type InitRequest struct {
	Force bool
}

// Execute writes the repository's current manifest and returns its path.
// An existing manifest file is only overwritten with Force.
func (c *InitCommand) Execute(ctx context.Context, req InitRequest) (string, error) {
	path := c.manifestRepo.Path()

	if _, err := c.fs.Stat(path); err == nil && !req.Force {
		return "", smokeerrors.NewValidationError("manifest_path", path, "not_exists",
			fmt.Sprintf("manifest %s already exists (use --force to overwrite)", path))
	}

	if err := c.manifestRepo.SaveManifest(ctx); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}

	c.logger.InfoContext(ctx, "Manifest written", "path", path)
	return path, nil
}
