package domain

import "context"

// Manifest lists the fixtures smokecheck verifies.
type Manifest struct {
	Version  string    `yaml:"version"`
	Fixtures []Fixture `yaml:"fixtures"`
}

// ManifestRepository loads the fixture manifest.
type ManifestRepository interface {
	Path() string
	GetFixtures(ctx context.Context) ([]Fixture, error)
	LoadManifest(ctx context.Context) error
	SaveManifest(ctx context.Context) error
}

// ConfigProvider provides configuration paths and defaults.
type ConfigProvider interface {
	GetManifestPath() (string, error)
	GetFixtureRoot() (string, error)
}
