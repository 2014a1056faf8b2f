// pkg/testutil/fs.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Build SSM trees on an in-memory filesystem

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/spf13/afero"
)

// NewMemFS returns an empty in-memory filesystem.
func NewMemFS() afero.Fs {
	return afero.NewMemMapFs()
}

// MkdirAll creates dir and its parents.
func MkdirAll(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
}

// WriteFile creates path with content, creating parent directories.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	MkdirAll(t, fs, filepath.Dir(path))
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// Touch creates an empty file.
func Touch(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	WriteFile(t, fs, path, "")
}

// MakeDomain creates a domain at root with one directory per layer.
func MakeDomain(t *testing.T, fs afero.Fs, root string, layers ...string) {
	t.Helper()
	MkdirAll(t, fs, filepath.Join(root, paths.DomainMarker))
	for _, layer := range layers {
		MkdirAll(t, fs, filepath.Join(root, layer))
	}
}

// MakePackage creates a package marker under dir.
func MakePackage(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	Touch(t, fs, filepath.Join(dir, paths.PackageMarker))
}

// PopulateTree creates a directory holding one file for each subdirectory,
// so the non-empty predicate accepts them.
func PopulateTree(t *testing.T, fs afero.Fs, base string, subdirs ...string) {
	t.Helper()
	for _, sub := range subdirs {
		Touch(t, fs, filepath.Join(base, sub, "placeholder"))
	}
}

// WriteRecord writes a platform compatibility record.
func WriteRecord(t *testing.T, fs afero.Fs, recordsDir, platform, line string) {
	t.Helper()
	dist := platform
	for i, r := range platform {
		if r == '-' {
			dist = platform[:i]
			break
		}
	}
	WriteFile(t, fs, filepath.Join(recordsDir, dist, platform), line+"\n")
}
