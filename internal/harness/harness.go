// Package harness drives a Bazel workspace for smoke tests and inspects the jars
// a build produces.
package harness

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"smokecheck/internal/domain"
	smokeerrors "smokecheck/internal/errors"
	"smokecheck/internal/logging"
)

const (
	bazelBinary = "bazel"
	binDir      = "bazel-bin"

	// libraryKinds matches the rule kinds LibQuery reports.
	libraryKinds = "java_import|.*_library"

	// workerArgsSuffix names the persistent worker argument file next to a target's outputs.
	workerArgsSuffix = "-worker.args"
)

// Harness runs bazel commands for one package inside a workspace.
type Harness struct {
	runner    domain.CommandRunner
	fs        domain.FileSystemAdapter
	logger    *slog.Logger
	workspace string
	pkg       string
	verbose   bool
}

// Option configures a Harness.
type Option func(*Harness)

// WithVerbose streams command output instead of discarding it.
func WithVerbose(verbose bool) Option {
	return func(h *Harness) {
		h.verbose = verbose
	}
}

// New creates a harness for pkg (a slash-separated package path such as
// "tests/smoke") inside an already known workspace root.
func New(
	runner domain.CommandRunner,
	fs domain.FileSystemAdapter,
	logger *slog.Logger,
	workspace, pkg string,
	opts ...Option,
) *Harness {
	h := &Harness{
		runner:    runner,
		fs:        fs,
		logger:    logger,
		workspace: workspace,
		pkg:       strings.Trim(filepath.ToSlash(pkg), "/"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Discover asks bazel for the workspace root and returns a harness for pkg.
func Discover(
	ctx context.Context,
	runner domain.CommandRunner,
	fs domain.FileSystemAdapter,
	logger *slog.Logger,
	pkg string,
	opts ...Option,
) (*Harness, error) {
	args := []string{bazelBinary, "info", "workspace"}
	result, err := runner.Run(ctx, "", true, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to locate bazel workspace: %w", err)
	}
	if result.ExitCode != 0 {
		return nil, smokeerrors.NewCommandErrorWithOutput(args, result.ExitCode, string(result.Stderr))
	}

	workspace := strings.TrimSpace(string(result.Stdout))
	if workspace == "" {
		return nil, smokeerrors.NewCommandError(args, result.ExitCode, errors.New("empty workspace path"))
	}

	logger.DebugContext(ctx, "Discovered bazel workspace", "workspace", workspace, "package", pkg)
	return New(runner, fs, logger, workspace, pkg, opts...), nil
}

// Workspace returns the workspace root.
func (h *Harness) Workspace() string {
	return h.workspace
}

// Package returns the package path targets are resolved in.
func (h *Harness) Package() string {
	return h.pkg
}

// Target returns the label for name. Absolute labels are returned unchanged.
func (h *Harness) Target(name string) string {
	if strings.HasPrefix(name, "//") {
		return name
	}
	return fmt.Sprintf("//%s:%s", h.pkg, name)
}

// BinPath returns the location of a build output of this package.
func (h *Harness) BinPath(file string) string {
	return filepath.Join(h.workspace, binDir, filepath.FromSlash(h.pkg), file)
}

// run executes bazel in the workspace and converts the exit code into an error.
func (h *Harness) run(ctx context.Context, ignoreError bool, args ...string) (domain.CommandResult, error) {
	result, err := h.runner.Run(ctx, h.workspace, !h.verbose, args...)
	if err != nil {
		return result, fmt.Errorf("failed to run %s: %w", strings.Join(args, " "), err)
	}
	if result.ExitCode != 0 && !ignoreError {
		return result, smokeerrors.NewCommandErrorWithOutput(args, result.ExitCode, string(result.Stderr))
	}
	return result, nil
}

// Build builds target.
func (h *Harness) Build(ctx context.Context, target string) error {
	label := h.Target(target)
	logging.WithTarget(h.logger, label).DebugContext(ctx, "Building target")
	_, err := h.run(ctx, false, bazelBinary, "build", label)
	return err
}

// BuildExpectingFail builds target and returns an error if the build succeeds.
func (h *Harness) BuildExpectingFail(ctx context.Context, target string) error {
	label := h.Target(target)
	args := []string{bazelBinary, "build", label}

	logging.WithTarget(h.logger, label).DebugContext(ctx, "Building target, expecting failure")
	result, err := h.run(ctx, true, args...)
	if err != nil {
		return err
	}
	if result.ExitCode == 0 {
		return smokeerrors.NewUnexpectedSuccessError(args)
	}
	return nil
}

// Launch builds target and then runs it with the given bazel verb ("run" or "test").
func (h *Harness) Launch(ctx context.Context, target, verb string, ignoreError bool) error {
	if verb == "" {
		verb = "run"
	}
	if err := h.Build(ctx, target); err != nil {
		return err
	}

	label := h.Target(target)
	logging.WithTarget(h.logger, label).DebugContext(ctx, "Launching target", "verb", verb)
	_, err := h.run(ctx, ignoreError, bazelBinary, verb, label)
	return err
}

// Query runs a bazel query and returns its output lines.
// Implicit dependencies are excluded unless implicits is set.
func (h *Harness) Query(ctx context.Context, expr string, implicits bool) ([]string, error) {
	args := []string{bazelBinary, "query", expr}
	if !implicits {
		args = append(args, "--noimplicit_deps")
	}

	result, err := h.runner.Run(ctx, h.workspace, true, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query %s: %w", expr, err)
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("error (%d) evaluating query %s: %w",
			result.ExitCode, expr, smokeerrors.NewCommandErrorWithOutput(args, result.ExitCode, string(result.Stderr)))
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(result.Stdout))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read query output: %w", scanErr)
	}
	return lines, nil
}

// LibQuery returns the library and java_import targets label depends on.
func (h *Harness) LibQuery(ctx context.Context, label string, implicits bool) ([]string, error) {
	expr := fmt.Sprintf("kind(%q, deps(%s))", libraryKinds, h.Target(label))
	return h.Query(ctx, expr, implicits)
}

// BuildJar builds "<target>.<ext>" and opens the resulting archive.
func (h *Harness) BuildJar(ctx context.Context, target, ext string) (*Jar, error) {
	label := h.Target(target + "." + ext)
	if err := h.Build(ctx, label); err != nil {
		return nil, err
	}
	pkg, name := splitLabel(label)
	return OpenJar(h.fs, filepath.Join(h.workspace, binDir, filepath.FromSlash(pkg), name))
}

// splitLabel splits "//pkg:name" into its package and target name.
func splitLabel(label string) (string, string) {
	label = strings.TrimPrefix(label, "//")
	pkg, name, found := strings.Cut(label, ":")
	if !found {
		return pkg, path.Base(pkg)
	}
	return pkg, name
}

// WorkerArgs reads the persistent worker argument file of target. The file holds
// alternating key and value lines.
func (h *Harness) WorkerArgs(target string) (map[string]string, error) {
	file := h.BinPath(target + workerArgsSuffix)
	data, err := h.fs.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read worker args %s: %w", file, err)
	}
	return ParseWorkerArgs(data), nil
}

// ParseWorkerArgs pairs alternating key and value lines. A trailing key without
// a value is dropped.
func ParseWorkerArgs(data []byte) map[string]string {
	args := make(map[string]string)
	key := ""
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if key == "" {
			key = line
			continue
		}
		args[key] = line
		key = ""
	}
	return args
}
