package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_MemFs(t *testing.T) {
	adapter := NewWithFs(afero.NewMemMapFs())

	require.NoError(t, adapter.MkdirAll("/work/tests/smoke/data", 0o755))
	require.NoError(t, adapter.WriteFile("/work/tests/smoke/data/datafile.txt", []byte("fixture"), 0o644))

	info, err := adapter.Stat("/work/tests/smoke/data/datafile.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(len("fixture")), info.Size())

	data, err := adapter.ReadFile("/work/tests/smoke/data/datafile.txt")
	require.NoError(t, err)
	assert.Equal(t, "fixture", string(data))

	f, err := adapter.Open("/work/tests/smoke/data/datafile.txt")
	require.NoError(t, err)
	buf := make([]byte, 3)
	_, err = f.ReadAt(buf, 4)
	require.NoError(t, err)
	assert.Equal(t, "ure", string(buf))
	require.NoError(t, f.Close())

	require.NoError(t, adapter.Remove("/work/tests/smoke/data/datafile.txt"))
	_, err = adapter.Stat("/work/tests/smoke/data/datafile.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAdapter_OsFs(t *testing.T) {
	adapter := New()
	path := filepath.Join(t.TempDir(), "datafile.txt")

	require.NoError(t, adapter.WriteFile(path, []byte("x"), 0o600))

	f, err := adapter.Open(path)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	wd, err := adapter.Getwd()
	require.NoError(t, err)
	assert.NotEmpty(t, wd)
}
