package app

import (
	"context"
	"os"

	"smokecheck/internal/adapters/exec"
	"smokecheck/internal/adapters/filesystem"
	"smokecheck/internal/adapters/terminal"
	"smokecheck/internal/fixture"
	"smokecheck/internal/logging"
	"smokecheck/internal/services/config"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	logger := logging.NewLogger(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})

	// Create filesystem adapter.
	fs := filesystem.New()
	if cfg.Fs != nil {
		fs = filesystem.NewWithFs(cfg.Fs)
	}

	// Create config services.
	configProvider := config.NewProvider(fs, cfg.ManifestPath, cfg.Root)
	manifestPath, err := configProvider.GetManifestPath()
	if err != nil {
		return nil, err
	}
	manifestRepo, err := config.NewRepository(fs, manifestPath, logger)
	if err != nil {
		return nil, err
	}

	checker := fixture.NewChecker(fs, logger, fixture.WithWorkers(cfg.Workers))

	// Log configuration details.
	logger.DebugContext(ctx, "Initializing smokecheck with configuration",
		"logLevel", string(cfg.LogLevel),
		"verbose", cfg.Verbose,
		"manifestPath", manifestPath,
		"root", cfg.Root)

	// Note: HTTP adapters and the build harness are created on demand in factory.go

	return &App{
		ManifestRepo:   manifestRepo,
		ConfigProvider: configProvider,
		Checker:        checker,
		FileSystem:     fs,
		Runner:         exec.Default(logger),
		Console:        terminal.NewAdapter(os.Stdout),
		Logger:         logger,
		Config:         cfg,
	}, nil
}
