package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	osexec "os/exec"

	"smokecheck/internal/domain"
)

// Runner executes external commands with os/exec.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewRunner creates a runner that forwards non-silent output to stdout and stderr.
func NewRunner(stdout, stderr io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Run executes args[0] with the remaining arguments in dir.
// Both streams are always captured. When silent is false they are also streamed
// to the runner's stdout and stderr.
func (r *Runner) Run(ctx context.Context, dir string, silent bool, args ...string) (domain.CommandResult, error) {
	if len(args) == 0 {
		return domain.CommandResult{}, errors.New("no command given")
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir

	var captured, capturedErr bytes.Buffer
	if silent {
		cmd.Stdout = &captured
		cmd.Stderr = &capturedErr
	} else {
		cmd.Stdout = io.MultiWriter(&captured, r.stdout)
		cmd.Stderr = io.MultiWriter(&capturedErr, r.stderr)
	}

	r.logger.DebugContext(ctx, "Running command", "args", args, "dir", dir, "silent", silent)

	err := cmd.Run()
	result := domain.CommandResult{Stdout: captured.Bytes(), Stderr: capturedErr.Bytes()}

	var exitErr *osexec.ExitError
	switch {
	case err == nil:
		return result, nil
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		r.logger.DebugContext(ctx, "Command exited non-zero", "args", args, "exit_code", result.ExitCode)
		return result, nil
	default:
		return result, fmt.Errorf("failed to start %s: %w", args[0], err)
	}
}

// Default returns a runner wired to the process streams.
func Default(logger *slog.Logger) *Runner {
	return NewRunner(os.Stdout, os.Stderr, logger)
}
