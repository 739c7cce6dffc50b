package files

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// HumanSize returns the file size in SI units ("83 MB").
func HumanSize(path string) (string, error) {
	n, err := Size(path)
	if err != nil {
		return "", err
	}
	return humanize.Bytes(uint64(n)), nil
}

// Extension returns the lower-cased extension without the dot. Leading
// dots of hidden files do not count: ".bashrc" has no extension.
func Extension(path string) string {
	base := strings.TrimLeft(filepath.Base(path), ".")
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
}

// Name returns the base name without its extension.
func Name(path string) string {
	base := filepath.Base(path)
	trimmed := strings.TrimLeft(base, ".")
	ext := filepath.Ext(trimmed)
	return base[:len(base)-len(ext)]
}

// MimeType sniffs the content of path, e.g. "image/png" or
// "text/plain; charset=utf-8".
func MimeType(path string) (string, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", classify(err)
	}
	return m.String(), nil
}

// MimeTypeOf sniffs an in-memory buffer.
func MimeTypeOf(data []byte) string {
	return mimetype.Detect(data).String()
}

// IsMime reports whether path's sniffed type is, or descends from, any
// of the given types ("text/plain" matches "text/html").
func IsMime(path string, types ...string) (bool, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return false, classify(err)
	}
	for p := m; p != nil; p = p.Parent() {
		for _, t := range types {
			if p.Is(t) {
				return true, nil
			}
		}
	}
	return false, nil
}
