// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"

	"smokecheck/internal/domain"
)

// MockFileSystemAdapter is a mock of domain.FileSystemAdapter.
type MockFileSystemAdapter struct {
	mock.Mock
}

// NewMockFileSystemAdapter creates a mock and asserts its expectations on cleanup.
func NewMockFileSystemAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFileSystemAdapter {
	m := &MockFileSystemAdapter{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFileSystemAdapter) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockFileSystemAdapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	return m.Called(path, data, perm).Error(0)
}

func (m *MockFileSystemAdapter) MkdirAll(path string, perm os.FileMode) error {
	return m.Called(path, perm).Error(0)
}

func (m *MockFileSystemAdapter) Remove(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockFileSystemAdapter) Stat(path string) (os.FileInfo, error) {
	args := m.Called(path)
	info, _ := args.Get(0).(os.FileInfo)
	return info, args.Error(1)
}

func (m *MockFileSystemAdapter) Open(path string) (domain.File, error) {
	args := m.Called(path)
	f, _ := args.Get(0).(domain.File)
	return f, args.Error(1)
}

func (m *MockFileSystemAdapter) Getwd() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// MockCommandRunner is a mock of domain.CommandRunner.
type MockCommandRunner struct {
	mock.Mock
}

// NewMockCommandRunner creates a mock and asserts its expectations on cleanup.
func NewMockCommandRunner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommandRunner {
	m := &MockCommandRunner{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCommandRunner) Run(
	ctx context.Context,
	dir string,
	silent bool,
	args ...string,
) (domain.CommandResult, error) {
	ret := m.Called(ctx, dir, silent, args)
	return ret.Get(0).(domain.CommandResult), ret.Error(1)
}

// MockHTTPAdapter is a mock of domain.HTTPAdapter.
type MockHTTPAdapter struct {
	mock.Mock
}

// NewMockHTTPAdapter creates a mock and asserts its expectations on cleanup.
func NewMockHTTPAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHTTPAdapter {
	m := &MockHTTPAdapter{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHTTPAdapter) Download(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// MockManifestRepository is a mock of domain.ManifestRepository.
type MockManifestRepository struct {
	mock.Mock
}

// NewMockManifestRepository creates a mock and asserts its expectations on cleanup.
func NewMockManifestRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManifestRepository {
	m := &MockManifestRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockManifestRepository) GetFixtures(ctx context.Context) ([]domain.Fixture, error) {
	args := m.Called(ctx)
	fixtures, _ := args.Get(0).([]domain.Fixture)
	return fixtures, args.Error(1)
}

func (m *MockManifestRepository) LoadManifest(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockManifestRepository) SaveManifest(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockManifestRepository) Path() string {
	return m.Called().String(0)
}
