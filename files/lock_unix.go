//go:build unix

package files

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// ReadLocked reads path while holding a shared advisory lock (flock), so
// cooperating writers holding an exclusive lock are waited for.
func ReadLocked(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classify(err)
	}
	defer f.Close()

	fd := int(f.Fd())
	if err := unix.Flock(fd, unix.LOCK_SH); err != nil {
		return nil, &os.PathError{Op: "flock", Path: path, Err: err}
	}
	defer func() { _ = unix.Flock(fd, unix.LOCK_UN) }()

	return io.ReadAll(f)
}

// WriteLocked overwrites path in place while holding an exclusive lock.
func WriteLocked(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return classify(err)
	}
	defer f.Close()

	fd := int(f.Fd())
	if err := unix.Flock(fd, unix.LOCK_EX); err != nil {
		return &os.PathError{Op: "flock", Path: path, Err: err}
	}
	defer func() { _ = unix.Flock(fd, unix.LOCK_UN) }()

	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
