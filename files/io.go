package files

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
)

// Read returns the whole file.
func Read(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	return b, classify(err)
}

// Write replaces path atomically: the data goes to a temporary file in
// the same directory, is synced, then renamed over path. Readers see
// either the old or the new content, never a mix.
func Write(path string, data []byte, perm fs.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return classify(err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Append adds data to the end of path, creating it with perm if needed.
func Append(path string, data []byte, perm fs.FileMode) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return classify(err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Exists reports whether path exists (following symlinks).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Size returns the file size in bytes.
func Size(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, classify(err)
	}
	return fi.Size(), nil
}

// Lines calls fn for every line of path (without the line terminator),
// numbering from 1. A non-nil error from fn stops the scan and is
// returned. Lines longer than maxLine bytes fail with bufio.ErrTooLong.
func Lines(path string, fn func(n int, line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return classify(err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

const maxLine = 16 << 20
