package files

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound means the path does not exist.
	ErrNotFound = errors.New("files: not found")
	// ErrNotDir means a directory was expected.
	ErrNotDir = errors.New("files: not a directory")
	// ErrExists means the target already exists.
	ErrExists = errors.New("files: already exists")
	// ErrUnsupportedHash means the hash algorithm is unknown.
	ErrUnsupportedHash = errors.New("files: unsupported hash algorithm")
)

// classify attaches a package sentinel to well-known fs errors.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%w: %w", ErrExists, err)
	default:
		return err
	}
}
