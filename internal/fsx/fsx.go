// Package fsx wraps the filesystem operations smartdirs needs behind an
// afero.Fs so name probing and directory creation can run against an
// in-memory filesystem in tests.
package fsx

import (
	"os"

	"github.com/spf13/afero"
)

// Exists reports whether path refers to an existing entry of any kind.
func Exists(fs afero.Fs, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Mkdir creates path with must-not-exist semantics: when the name is already
// taken the returned error matches os.ErrExist, which callers treat as a
// lost creation race.
func Mkdir(fs afero.Fs, path string) error {
	return fs.Mkdir(path, 0o755)
}

// EnsureDir creates path and any missing parents; an existing directory is
// not an error.
func EnsureDir(fs afero.Fs, path string) error {
	return fs.MkdirAll(path, 0o755)
}

// ListEntries returns the names of all entries directly under dir. A missing
// dir yields no entries rather than an error, so probing an about-to-be
// created parent behaves like probing an empty one.
func ListEntries(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}
