package domain

import "context"

// CommandResult captures the outcome of an external command.
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// CommandRunner runs external commands such as bazel.
//
// A non-zero exit is reported through CommandResult.ExitCode, not as an error.
// The error return is reserved for commands that could not be started.
type CommandRunner interface {
	Run(ctx context.Context, dir string, silent bool, args ...string) (CommandResult, error)
}
