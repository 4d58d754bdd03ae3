// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"

	"smokecheck/internal/adapters/filesystem"
	"smokecheck/internal/logging"
)

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// MemFS returns a filesystem adapter backed by memory together with the raw afero
// filesystem, so tests can seed files before exercising code under test.
func MemFS() (*filesystem.Adapter, afero.Fs) {
	fs := afero.NewMemMapFs()
	return filesystem.NewWithFs(fs), fs
}

// ModuleRoot returns the repository root, derived from this file's location.
func ModuleRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}
