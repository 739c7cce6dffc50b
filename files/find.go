package files

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Kind filters Find results.
type Kind int

const (
	// AnyKind matches files and directories.
	AnyKind Kind = iota
	// FilesOnly matches regular files and symlinks.
	FilesOnly
	// DirsOnly matches directories.
	DirsOnly
)

// FindOptions configures Find.
type FindOptions struct {
	Pattern  string // filepath.Match pattern on the base name; "" matches all
	MaxDepth int    // 0 = unlimited; 1 = direct children only
	Kind     Kind
	Hidden   bool // include dot files and descend into dot directories
}

// Find walks root and returns matching paths in lexical order. root
// itself is never returned.
func Find(root string, opts FindOptions) ([]string, error) {
	if opts.Pattern != "" {
		if _, err := filepath.Match(opts.Pattern, ""); err != nil {
			return nil, fmt.Errorf("files: bad pattern %q: %w", opts.Pattern, err)
		}
	}
	if !IsDir(root) {
		if Exists(root) {
			return nil, fmt.Errorf("%w: %s", ErrNotDir, root)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
	}
	root = filepath.Clean(root)

	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		name := d.Name()
		if !opts.Hidden && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1
		if opts.MaxDepth > 0 && depth > opts.MaxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		switch opts.Kind {
		case FilesOnly:
			if d.IsDir() {
				return nil
			}
		case DirsOnly:
			if !d.IsDir() {
				return nil
			}
		}
		if opts.Pattern != "" {
			if ok, _ := filepath.Match(opts.Pattern, name); !ok {
				return nil
			}
		}
		out = append(out, path)
		return nil
	})
	return out, err
}
