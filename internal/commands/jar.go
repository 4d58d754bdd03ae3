package commands

import (
	"context"
	"fmt"
	"log/slog"

	"smokecheck/internal/domain"
	smokeerrors "smokecheck/internal/errors"
	"smokecheck/internal/harness"
)

// JarCommand asserts on the entries of an existing jar archive.
type JarCommand struct {
	fs     domain.FileSystemAdapter
	logger *slog.Logger
}

// NewJarCommand creates a new jar command.
func NewJarCommand(fs domain.FileSystemAdapter, logger *slog.Logger) *JarCommand {
	return &JarCommand{
		fs:     fs,
		logger: logger,
	}
}

// JarRequest contains the parameters for the jar command.
type JarRequest struct {
	Path     string
	Contains []string
	Absent   []string
}

// JarResult contains the result of the jar command.
type JarResult struct {
	Entries int
}

// Execute opens the jar and runs both assertions, reporting every failure.
func (c *JarCommand) Execute(ctx context.Context, req JarRequest) (*JarResult, error) {
	if req.Path == "" {
		return nil, smokeerrors.NewValidationError("path", "", "required", "jar path must not be empty")
	}
	if len(req.Contains) == 0 && len(req.Absent) == 0 {
		return nil, smokeerrors.NewValidationError("assertions", "", "required",
			"at least one of --contains or --absent is required")
	}

	jar, err := harness.OpenJar(c.fs, req.Path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := jar.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "Failed to close jar", "path", req.Path, "error", closeErr)
		}
	}()

	result := &JarResult{Entries: len(jar.Entries())}
	c.logger.DebugContext(ctx, "Opened jar", "path", req.Path, "entries", result.Entries)

	var errs []error
	if len(req.Contains) > 0 {
		errs = append(errs, jar.Contains(req.Contains...))
	}
	if len(req.Absent) > 0 {
		errs = append(errs, jar.DoesNotContain(req.Absent...))
	}

	if joined := smokeerrors.Join(errs...); joined != nil {
		return result, fmt.Errorf("%s: %w", req.Path, joined)
	}
	return result, nil
}
