package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"smokecheck/internal/domain"
	smokeerrors "smokecheck/internal/errors"
	"smokecheck/internal/fixture"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
	manifestVersion = "1.0" // Current manifest version
)

// Repository handles fixture manifest persistence.
type Repository struct {
	fs           domain.FileSystemAdapter
	manifestPath string
	manifest     *domain.Manifest
	logger       *slog.Logger
}

// NewRepository creates a new manifest repository. A missing manifest file is not
// an error: the repository then holds the built-in datafile fixture only.
func NewRepository(
	fs domain.FileSystemAdapter,
	manifestPath string,
	logger *slog.Logger,
) (*Repository, error) {
	repo := &Repository{
		fs:           fs,
		manifestPath: manifestPath,
		manifest:     DefaultManifest(),
		logger:       logger,
	}

	if err := repo.LoadManifest(context.Background()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return repo, nil
}

// DefaultManifest returns the manifest used when no manifest file exists.
func DefaultManifest() *domain.Manifest {
	dataFile := fixture.DataFile
	dataFile.Segments = slices.Clone(fixture.DataFile.Segments)
	return &domain.Manifest{
		Version:  manifestVersion,
		Fixtures: []domain.Fixture{dataFile},
	}
}

// Path returns the manifest file location.
func (r *Repository) Path() string {
	return r.manifestPath
}

// GetFixtures returns all configured fixtures.
func (r *Repository) GetFixtures(ctx context.Context) ([]domain.Fixture, error) {
	r.logger.DebugContext(ctx, "Getting fixtures from manifest", "count", len(r.manifest.Fixtures))
	return slices.Clone(r.manifest.Fixtures), nil
}

// SaveManifest writes the manifest to disk.
func (r *Repository) SaveManifest(ctx context.Context) error {
	if err := r.fs.MkdirAll(filepath.Dir(r.manifestPath), dirPermissions); err != nil {
		return smokeerrors.NewConfigurationError("manifest_directory", filepath.Dir(r.manifestPath),
			"failed to create manifest directory", err)
	}

	data, err := yaml.Marshal(r.manifest)
	if err != nil {
		return smokeerrors.NewConfigurationError("manifest_format", "yaml", "failed to marshal manifest", err)
	}

	if writeErr := r.fs.WriteFile(r.manifestPath, data, filePermissions); writeErr != nil {
		return smokeerrors.NewConfigurationError("manifest_path", r.manifestPath,
			"failed to write manifest file", writeErr)
	}

	r.logger.DebugContext(ctx, "Manifest saved", "path", r.manifestPath)
	return nil
}

// LoadManifest loads the manifest from disk. It returns os.ErrNotExist when the
// file is absent and leaves the current manifest untouched.
func (r *Repository) LoadManifest(ctx context.Context) error {
	data, err := r.fs.ReadFile(r.manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.DebugContext(ctx, "Manifest file does not exist, using defaults", "path", r.manifestPath)
			return os.ErrNotExist
		}
		return smokeerrors.NewConfigurationError("manifest_path", r.manifestPath, "failed to read manifest file", err)
	}

	var manifest domain.Manifest
	if unmarshalErr := yaml.Unmarshal(data, &manifest); unmarshalErr != nil {
		return smokeerrors.NewConfigurationError("manifest_format", "yaml", "failed to unmarshal manifest", unmarshalErr)
	}

	if manifest.Version == "" {
		manifest.Version = manifestVersion
	}
	if manifest.Version != manifestVersion {
		return smokeerrors.NewConfigurationError("version", manifest.Version,
			fmt.Sprintf("unsupported manifest version (want %s)", manifestVersion), nil)
	}

	if validateErr := ValidateFixtures(manifest.Fixtures); validateErr != nil {
		return validateErr
	}

	r.manifest = &manifest
	r.logger.InfoContext(ctx, "Manifest loaded",
		"path", r.manifestPath,
		"version", manifest.Version,
		"fixtures", len(manifest.Fixtures))
	return nil
}

// ValidateFixtures checks names and path segments of every fixture.
func ValidateFixtures(fixtures []domain.Fixture) error {
	seen := make(map[string]struct{}, len(fixtures))
	for i, f := range fixtures {
		field := fmt.Sprintf("fixtures[%d]", i)

		if strings.TrimSpace(f.Name) == "" {
			return smokeerrors.NewValidationError(field+".name", f.Name, "required", "fixture name must not be empty")
		}
		if _, dup := seen[f.Name]; dup {
			return smokeerrors.NewValidationError(field+".name", f.Name, "unique",
				fmt.Sprintf("duplicate fixture name %q", f.Name))
		}
		seen[f.Name] = struct{}{}

		if len(f.Segments) == 0 {
			return smokeerrors.NewValidationError(field+".path", "", "required", "fixture path must not be empty")
		}
		for _, segment := range f.Segments {
			if segment == "" {
				return smokeerrors.NewValidationError(field+".path", segment, "relative",
					"fixture path segments must not be empty")
			}
			if filepath.IsAbs(segment) {
				return smokeerrors.NewValidationError(field+".path", segment, "relative",
					"fixture path segments must not be absolute")
			}
			if slices.Contains(strings.Split(filepath.ToSlash(segment), "/"), "..") {
				return smokeerrors.NewValidationError(field+".path", segment, "relative",
					"fixture path segments must not contain ..")
			}
		}
		if !filepath.IsLocal(f.Path()) {
			return smokeerrors.NewValidationError(field+".path", f.Path(), "relative",
				"fixture path must stay inside the fixture root")
		}
	}
	return nil
}
