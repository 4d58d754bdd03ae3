package config

import (
	"fmt"
	"path/filepath"

	"smokecheck/internal/domain"
)

// DefaultManifestName is the manifest file looked up in the fixture root.
const DefaultManifestName = "smokecheck.yaml"

// Provider provides configuration paths.
type Provider struct {
	fs           domain.FileSystemAdapter
	manifestPath string
	root         string
}

// NewProvider creates a new configuration provider. Empty values fall back to defaults.
func NewProvider(fs domain.FileSystemAdapter, manifestPath, root string) *Provider {
	return &Provider{
		fs:           fs,
		manifestPath: manifestPath,
		root:         root,
	}
}

// GetFixtureRoot returns the directory fixture paths are resolved against.
// Without an explicit root it is the process working directory.
func (p *Provider) GetFixtureRoot() (string, error) {
	if p.root != "" {
		return p.root, nil
	}
	wd, err := p.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// GetManifestPath returns the path to the fixture manifest.
func (p *Provider) GetManifestPath() (string, error) {
	if p.manifestPath != "" {
		return p.manifestPath, nil
	}
	root, err := p.GetFixtureRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, DefaultManifestName), nil
}
