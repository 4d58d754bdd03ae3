package app

import (
	"context"
	"time"

	"smokecheck/internal/adapters/http"
	"smokecheck/internal/commands"
	"smokecheck/internal/harness"
)

const (
	// defaultHTTPTimeout is the default timeout for fixture downloads.
	defaultHTTPTimeout = 30 * time.Second
)

// CreateCheckCommand creates the fixture check command.
func (a *App) CreateCheckCommand() *commands.CheckCommand {
	return commands.NewCheckCommand(a.ManifestRepo, a.Checker, a.Logger)
}

// CreateFetchCommand creates the fetch command with its own HTTP client.
// insecureSkipTLS disables certificate verification for self-signed fixture hosts.
func (a *App) CreateFetchCommand(insecureSkipTLS bool) *commands.FetchCommand {
	httpAdapter := a.createHTTPAdapter(insecureSkipTLS)
	return commands.NewFetchCommand(a.ManifestRepo, a.Checker, httpAdapter, a.FileSystem, a.Logger)
}

func (a *App) createHTTPAdapter(insecureSkipTLS bool) *http.Adapter {
	httpAdapter := http.NewAdapter(a.Config.HTTPTimeout, insecureSkipTLS, a.Logger)
	if a.Config.HTTPRate > 0 {
		httpAdapter.SetRateLimit(a.Config.HTTPRate, a.Config.HTTPBurst)
	}
	return httpAdapter
}

// CreateInitCommand creates the manifest init command.
func (a *App) CreateInitCommand() *commands.InitCommand {
	return commands.NewInitCommand(a.ManifestRepo, a.FileSystem, a.Logger)
}

// CreateJarCommand creates the jar assertion command.
func (a *App) CreateJarCommand() *commands.JarCommand {
	return commands.NewJarCommand(a.FileSystem, a.Logger)
}

// CreateHarness asks bazel for the workspace root and returns a harness for pkg.
func (a *App) CreateHarness(ctx context.Context, pkg string) (*harness.Harness, error) {
	return harness.Discover(ctx, a.Runner, a.FileSystem, a.Logger, pkg, harness.WithVerbose(a.Config.Verbose))
}
