package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"smokecheck/internal/domain"
	"smokecheck/internal/logging"
)

// App contains all application dependencies.
type App struct {
	// Core configuration dependencies (always needed)
	ManifestRepo   domain.ManifestRepository
	ConfigProvider domain.ConfigProvider

	// Fixture checks (needed by check and fetch)
	Checker domain.FixtureChecker

	// File operations (needed by multiple commands)
	FileSystem domain.FileSystemAdapter

	// External processes (needed by the build harness)
	Runner domain.CommandRunner

	// I/O dependencies
	Console domain.Console

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel     logging.LogLevel
	LogFormat    string
	Verbose      bool
	NoColor      bool
	ManifestPath string
	Root         string
	Workers      int
	HTTPTimeout  time.Duration

	// HTTPRate and HTTPBurst override the download rate limit when HTTPRate is positive.
	HTTPRate  float64
	HTTPBurst int

	// Fs replaces the OS filesystem, mainly for tests.
	Fs afero.Fs
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level logging.LogLevel) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithLogFormat selects the "text" or "json" log handler.
func WithLogFormat(format string) Option {
	return func(cfg *Config) {
		cfg.LogFormat = format
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = logging.LevelDebug
		}
	}
}

// WithNoColor disables coloured output.
func WithNoColor(noColor bool) Option {
	return func(cfg *Config) {
		cfg.NoColor = noColor
	}
}

// WithManifestPath overrides the manifest location.
func WithManifestPath(path string) Option {
	return func(cfg *Config) {
		cfg.ManifestPath = path
	}
}

// WithRoot sets the directory fixture paths are resolved against.
func WithRoot(root string) Option {
	return func(cfg *Config) {
		cfg.Root = root
	}
}

// WithWorkers sets the number of concurrent fixture checks.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		cfg.Workers = n
	}
}

// WithHTTPTimeout sets the timeout for fixture downloads.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		if timeout > 0 {
			cfg.HTTPTimeout = timeout
		}
	}
}

// WithHTTPRateLimit sets the download rate limit in requests per second.
func WithHTTPRateLimit(requestsPerSecond float64, burst int) Option {
	return func(cfg *Config) {
		cfg.HTTPRate = requestsPerSecond
		cfg.HTTPBurst = max(burst, 1)
	}
}

// WithFs replaces the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(cfg *Config) {
		cfg.Fs = fs
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel:    logging.LevelInfo,
		LogFormat:   "text",
		Verbose:     false,
		HTTPTimeout: defaultHTTPTimeout,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}

// UseColor reports whether output should be coloured.
func (a *App) UseColor() bool {
	return !a.Config.NoColor && a.Console.IsInteractive()
}
