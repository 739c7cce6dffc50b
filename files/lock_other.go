//go:build !unix

package files

import "os"

// ReadLocked falls back to a plain read where flock is unavailable.
func ReadLocked(path string) ([]byte, error) {
	return Read(path)
}

// WriteLocked falls back to a plain write where flock is unavailable.
func WriteLocked(path string, data []byte, perm os.FileMode) error {
	return classify(os.WriteFile(path, data, perm))
}
