package harness

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/gobwas/glob"

	"smokecheck/internal/domain"
)

// Jar is an opened jar (zip) archive.
type Jar struct {
	reader *zip.Reader
	closer io.Closer
	path   string
}

// OpenJar opens the archive at path through the filesystem adapter.
func OpenJar(fs domain.FileSystemAdapter, path string) (*Jar, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open jar %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat jar %s: %w", path, err)
	}

	reader, err := zip.NewReader(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to read jar %s: %w", path, err)
	}

	return &Jar{reader: reader, closer: f, path: path}, nil
}

// Close releases the underlying file.
func (j *Jar) Close() error {
	return j.closer.Close()
}

// Path returns where the jar was opened from.
func (j *Jar) Path() string {
	return j.path
}

// Entries returns the names of all entries in archive order.
func (j *Jar) Entries() []string {
	names := make([]string, 0, len(j.reader.File))
	for _, f := range j.reader.File {
		names = append(names, f.Name)
	}
	return names
}

// Contains returns an error naming the first entry that is not in the jar.
func (j *Jar) Contains(entries ...string) error {
	index := make(map[string]struct{}, len(j.reader.File))
	for _, f := range j.reader.File {
		index[f.Name] = struct{}{}
	}

	for _, entry := range entries {
		if _, ok := index[entry]; !ok {
			return fmt.Errorf("jar does not contain file [%s]", entry)
		}
	}
	return nil
}

// DoesNotContain returns an error if any entry matches one of the glob patterns.
// Patterns use "/" as separator, so "*" stays within one directory and "**" crosses them.
func (j *Jar) DoesNotContain(patterns ...string) error {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}

	var found []string
	for _, f := range j.reader.File {
		for _, g := range globs {
			if g.Match(f.Name) {
				found = append(found, f.Name)
				break
			}
		}
	}

	if len(found) > 0 {
		return fmt.Errorf("jar should not contain file %s", strings.Join(found, ", "))
	}
	return nil
}
