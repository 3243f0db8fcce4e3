// Package testutil provides helpers for testing against an in-memory
// filesystem: seeded parent directories and a fixed clock.
package testutil

import (
	"testing"
	"time"

	"github.com/spf13/afero"
)

// FixedClock returns the same instant on every call, so resolved names are
// deterministic.
type FixedClock struct {
	Instant time.Time
}

// Now implements namer.Clock.
func (c FixedClock) Now() time.Time { return c.Instant }

// ParentDir wraps a parent directory on a test filesystem and seeds it with
// pre-existing entries.
type ParentDir struct {
	FS   afero.Fs
	Path string
	T    *testing.T
}

// NewParentDir creates the parent directory on fs.
func NewParentDir(t *testing.T, fs afero.Fs, path string) *ParentDir {
	t.Helper()
	if err := fs.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	return &ParentDir{FS: fs, Path: path, T: t}
}

// AddDir pre-creates a sibling directory entry.
func (p *ParentDir) AddDir(name string) {
	p.T.Helper()
	if err := p.FS.Mkdir(p.Path+"/"+name, 0o755); err != nil {
		p.T.Fatalf("failed to seed directory %s: %v", name, err)
	}
}

// AddFile pre-creates a sibling file entry.
func (p *ParentDir) AddFile(name string) {
	p.T.Helper()
	if err := afero.WriteFile(p.FS, p.Path+"/"+name, []byte("x"), 0o644); err != nil {
		p.T.Fatalf("failed to seed file %s: %v", name, err)
	}
}

// Entries returns the names currently present under the parent directory.
func (p *ParentDir) Entries() []string {
	p.T.Helper()
	infos, err := afero.ReadDir(p.FS, p.Path)
	if err != nil {
		p.T.Fatalf("failed to read parent dir: %v", err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

// HasDir reports whether a directory entry with the given name exists.
func (p *ParentDir) HasDir(name string) bool {
	p.T.Helper()
	info, err := p.FS.Stat(p.Path + "/" + name)
	return err == nil && info.IsDir()
}
