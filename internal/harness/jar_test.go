package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smokecheck/internal/testutil"
)

func openTestJar(t *testing.T, entries ...string) *Jar {
	t.Helper()
	adapter, memFs := testutil.MemFS()
	writeJar(t, memFs, "/out/test.jar", entries...)
	jar, err := OpenJar(adapter, "/out/test.jar")
	require.NoError(t, err)
	t.Cleanup(func() { _ = jar.Close() })
	return jar
}

func TestJar_Contains(t *testing.T) {
	jar := openTestJar(t, "META-INF/MANIFEST.MF", "pkg/A.class", "pkg/B.class")

	assert.NoError(t, jar.Contains())
	assert.NoError(t, jar.Contains("pkg/A.class", "META-INF/MANIFEST.MF"))

	err := jar.Contains("pkg/A.class", "pkg/C.class", "pkg/D.class")
	assert.EqualError(t, err, "jar does not contain file [pkg/C.class]")
}

func TestJar_DoesNotContain(t *testing.T) {
	jar := openTestJar(t, "META-INF/MANIFEST.MF", "pkg/A.class", "pkg/inner/B.class", "kotlin/Unit.class")

	tests := []struct {
		name     string
		patterns []string
		wantErr  string
	}{
		{"no patterns", nil, ""},
		{"exact miss", []string{"pkg/C.class"}, ""},
		{"exact hit", []string{"pkg/A.class"}, "jar should not contain file pkg/A.class"},
		{"star stays in dir", []string{"pkg/*.class"}, "jar should not contain file pkg/A.class"},
		{"double star crosses dirs", []string{"pkg/**.class"},
			"jar should not contain file pkg/A.class, pkg/inner/B.class"},
		{"runtime bundled", []string{"kotlin/**"}, "jar should not contain file kotlin/Unit.class"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := jar.DoesNotContain(tt.patterns...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestJar_DoesNotContain_InvalidPattern(t *testing.T) {
	jar := openTestJar(t, "a")

	err := jar.DoesNotContain("[")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestOpenJar_NotAZip(t *testing.T) {
	adapter, memFs := testutil.MemFS()
	require.NoError(t, memFs.MkdirAll("/out", 0o755))
	f, err := memFs.Create("/out/bad.jar")
	require.NoError(t, err)
	_, _ = f.WriteString("not a zip")
	require.NoError(t, f.Close())

	_, err = OpenJar(adapter, "/out/bad.jar")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read jar")
}
