package filesystem

import (
	"os"

	"github.com/spf13/afero"

	"smokecheck/internal/domain"
)

// Adapter provides file system operations on top of an afero filesystem.
type Adapter struct {
	fs afero.Fs
}

// New creates a new filesystem adapter backed by the operating system.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates a filesystem adapter over an arbitrary afero filesystem.
func NewWithFs(fs afero.Fs) *Adapter {
	return &Adapter{fs: fs}
}

// ReadFile reads a file from disk.
func (a *Adapter) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// WriteFile writes data to a file.
func (a *Adapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, path, data, perm)
}

// MkdirAll creates a directory and all necessary parents.
func (a *Adapter) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// Remove deletes a file.
func (a *Adapter) Remove(path string) error {
	return a.fs.Remove(path)
}

// Stat returns file info.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// Open opens a file for reading.
func (a *Adapter) Open(path string) (domain.File, error) {
	return a.fs.Open(path)
}

// Getwd returns the process working directory.
func (a *Adapter) Getwd() (string, error) {
	return os.Getwd()
}
