package cmd

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smokecheck/internal/logging"
)

// executeArgs runs the root command with args and returns its output.
func executeArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		cfgFile = ""
		viper.Reset()
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDataFile(t *testing.T, dir string) {
	t.Helper()
	path := filepath.Join(dir, "tests", "smoke", "data", "datafile.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("smoke fixture"), 0o644))
}

func TestRootCommand_Structure(t *testing.T) {
	assert.Equal(t, "smokecheck", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.False(t, rootCmd.Runnable(), "root command should only have subcommands")

	found := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		found[sub.Name()] = true
	}
	for _, expected := range []string{"check", "fetch", "init", "jar", "query", "version"} {
		assert.True(t, found[expected], "expected command %q to be registered", expected)
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "no-color", "dir"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "expected persistent flag %q", name)
		assert.NotEmpty(t, flag.Usage)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01", "make")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown", "unknown") })

	out, err := executeArgs(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "smokecheck version 1.2.3")
	assert.Contains(t, out, "commit: abc123")
}

func TestCheckCommand_Pass(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir)

	out, err := executeArgs(t, "check", "--dir", dir, "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, "PASS datafile")
	assert.Contains(t, out, "1 fixtures, 0 failed")
}

func TestCheckCommand_MissingDataFile(t *testing.T) {
	dir := t.TempDir()

	out, err := executeArgs(t, "check", "--dir", dir, "--no-color")

	require.Error(t, err)
	assert.EqualError(t, err, "could not read datafile")
	assert.Contains(t, out, "FAIL datafile")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := executeArgs(t, "init", "--dir", dir)
	require.NoError(t, err)
	manifest := filepath.Join(dir, "smokecheck.yaml")
	assert.Contains(t, out, "Wrote "+manifest)

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "datafile")

	_, err = executeArgs(t, "init", "--dir", dir)
	assert.ErrorContains(t, err, "already exists")
}

func TestJarCommand(t *testing.T) {
	dir := t.TempDir()
	jarPath := filepath.Join(dir, "app.jar")
	f, err := os.Create(jarPath)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	_, err = zw.Create("app/Main.class")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	out, err := executeArgs(t, "jar", jarPath, "--dir", dir, "--no-color", "--contains", "app/Main.class")

	require.NoError(t, err)
	assert.Contains(t, out, "PASS "+jarPath+"  1 entries")
}

func TestJarCommand_RequiresFile(t *testing.T) {
	_, err := executeArgs(t, "jar")
	require.Error(t, err)
}

const settingsManifest = `version: "1.0"
fixtures:
  - name: datafile
    path: [tests, smoke, data, datafile.txt]
workers: 1
log:
  level: debug
http:
  rate: 2
  burst: 3
`

func TestCheckCommand_ReadsSettingsFromDirManifest(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir)
	manifest := filepath.Join(dir, "smokecheck.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(settingsManifest), 0o644))
	t.Chdir(t.TempDir())

	_, err := executeArgs(t, "check", "--dir", dir, "--no-color")

	require.NoError(t, err)
	assert.Equal(t, manifest, viper.ConfigFileUsed())
	assert.Equal(t, manifest, GetApp().ManifestRepo.Path())
	cfg := GetApp().Config
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel)
	assert.InDelta(t, 2.0, cfg.HTTPRate, 0.001)
	assert.Equal(t, 3, cfg.HTTPBurst)
}

func TestCheckCommand_ReadsSettingsFromConfigFlag(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir)
	manifest := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(settingsManifest), 0o644))

	_, err := executeArgs(t, "check", "--dir", dir, "--config", manifest, "--no-color")

	require.NoError(t, err)
	assert.Equal(t, manifest, viper.ConfigFileUsed())
	assert.Equal(t, 1, GetApp().Config.Workers)
}

func TestCheckCommand_EnvOverridesManifestSettings(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "smokecheck.yaml"), []byte(settingsManifest), 0o644))
	t.Setenv("SMOKECHECK_WORKERS", "3")
	t.Setenv("SMOKECHECK_LOG_LEVEL", "warn")

	_, err := executeArgs(t, "check", "--dir", dir, "--no-color")

	require.NoError(t, err)
	assert.Equal(t, 3, GetApp().Config.Workers)
	assert.Equal(t, logging.LogLevel("warn"), GetApp().Config.LogLevel)
}
