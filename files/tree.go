package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// EnsureDir creates path and its parents. An existing non-directory at
// path is ErrNotDir.
func EnsureDir(path string, perm fs.FileMode) error {
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDir, path)
	}
	return os.MkdirAll(path, perm)
}

// Copy copies the regular file src to dst, keeping its permission bits.
// dst is replaced atomically; missing parent directories are created.
func Copy(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return classify(err)
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("files: copy %s: is a directory", src)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), fi.Mode().Perm()); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// CopyDir recursively copies the directory src into dst. Symlinks are
// recreated, not followed. Existing files in dst are overwritten.
func CopyDir(src, dst string) error {
	fi, err := os.Stat(src)
	if err != nil {
		return classify(err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDir, src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			_ = os.Remove(target)
			return os.Symlink(link, target)
		case d.Type().IsRegular():
			return Copy(path, target)
		default:
			return nil // devices, sockets and pipes are skipped
		}
	})
}

// Move renames src to dst, falling back to copy and delete when the
// rename crosses filesystems.
func Move(src, dst string) error {
	if _, err := os.Lstat(src); err != nil {
		return classify(err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if IsDir(src) {
		err = CopyDir(src, dst)
	} else {
		err = Copy(src, dst)
	}
	if err != nil {
		return err
	}
	return os.RemoveAll(src)
}

// Remove deletes path and everything below it. A missing path is
// ErrNotFound.
func Remove(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return classify(err)
	}
	return os.RemoveAll(path)
}

// Symlink creates link pointing at target. An existing link path is
// ErrExists.
func Symlink(target, link string) error {
	if _, err := os.Lstat(link); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, link)
	}
	return classify(os.Symlink(target, link))
}
