package commands_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smokecheck/internal/commands"
	smokeerrors "smokecheck/internal/errors"
	"smokecheck/internal/testutil"
)

func newTestJarCommand(t *testing.T, entries ...string) *commands.JarCommand {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		_, err := zw.Create(entry)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	adapter, memFs := testutil.MemFS()
	require.NoError(t, afero.WriteFile(memFs, "/out/app.jar", buf.Bytes(), 0o644))
	return commands.NewJarCommand(adapter, testutil.Logger())
}

func TestJarCommand_Execute_Pass(t *testing.T) {
	cmd := newTestJarCommand(t, "META-INF/MANIFEST.MF", "app/Main.class")

	result, err := cmd.Execute(context.Background(), commands.JarRequest{
		Path:     "/out/app.jar",
		Contains: []string{"app/Main.class"},
		Absent:   []string{"kotlin/**"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Entries)
}

func TestJarCommand_Execute_ReportsBothFailures(t *testing.T) {
	cmd := newTestJarCommand(t, "app/Main.class", "kotlin/Unit.class")

	result, err := cmd.Execute(context.Background(), commands.JarRequest{
		Path:     "/out/app.jar",
		Contains: []string{"app/Missing.class"},
		Absent:   []string{"kotlin/**"},
	})

	require.Error(t, err)
	require.NotNil(t, result)
	var multiErr *smokeerrors.MultiError
	require.ErrorAs(t, err, &multiErr)
	assert.Len(t, multiErr.Errors, 2)
	assert.Contains(t, err.Error(), "jar does not contain file [app/Missing.class]")
}

func TestJarCommand_Execute_Validation(t *testing.T) {
	cmd := newTestJarCommand(t, "a")

	_, err := cmd.Execute(context.Background(), commands.JarRequest{Contains: []string{"a"}})
	assert.True(t, smokeerrors.IsValidation(err))

	_, err = cmd.Execute(context.Background(), commands.JarRequest{Path: "/out/app.jar"})
	assert.True(t, smokeerrors.IsValidation(err))
}

func TestJarCommand_Execute_MissingJar(t *testing.T) {
	cmd := newTestJarCommand(t, "a")

	_, err := cmd.Execute(context.Background(), commands.JarRequest{Path: "/out/other.jar", Contains: []string{"a"}})

	assert.ErrorContains(t, err, "failed to open jar")
}
