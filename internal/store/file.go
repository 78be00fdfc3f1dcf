package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File is a repository mirrored to a text file. Every mutation rewrites the
// whole file.
type File struct {
	repo
	path string
}

// OpenFile loads the store at path. The returned repository is always usable:
// a missing file starts empty with a nil error, while an unreadable or
// malformed file starts empty and the error wraps ErrLoad.
func OpenFile(path string) (*File, error) {
	f := &File{path: path}
	f.repo = repo{st: newState(), save: f.write}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return f, fmt.Errorf("%w: read %s: %w", ErrLoad, path, err)
	}

	st, err := decode(data)
	if err != nil {
		return f, fmt.Errorf("%w: parse %s: %w", ErrLoad, path, err)
	}
	f.st = st
	return f, nil
}

// Path returns the backing file location.
func (f *File) Path() string {
	return f.path
}

func (f *File) write(st *state) error {
	if err := os.WriteFile(f.path, encode(st), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersist, f.path, err)
	}
	return nil
}
