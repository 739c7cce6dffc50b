package files_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvkit/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestReadWrite covers atomic writes, appends and locked reads.
func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")

	require.NoError(t, files.Write(p, []byte("one\n"), 0o600))
	require.NoError(t, files.Append(p, []byte("two\n"), 0o600))
	b, err := files.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(b))

	fi, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), fi.Mode().Perm())

	require.NoError(t, files.Write(p, []byte("replaced"), 0o644))
	b, err = files.ReadLocked(p)
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(b))

	require.NoError(t, files.WriteLocked(p, []byte("ok"), 0o644))
	b, err = files.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))

	// No temp files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = files.Read(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, files.ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = files.ReadLocked(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, files.ErrNotFound)
}

// TestInspect covers existence, sizes and name helpers.
func TestInspect(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "Report.Final.PDF")
	write(t, p, "hello")

	assert.True(t, files.Exists(p))
	assert.False(t, files.IsDir(p))
	assert.True(t, files.IsDir(dir))
	assert.False(t, files.Exists(filepath.Join(dir, "nope")))

	n, err := files.Size(p)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	h, err := files.HumanSize(p)
	require.NoError(t, err)
	assert.Equal(t, "5 B", h)
	_, err = files.Size(filepath.Join(dir, "nope"))
	assert.ErrorIs(t, err, files.ErrNotFound)

	assert.Equal(t, "pdf", files.Extension(p))
	assert.Equal(t, "Report.Final", files.Name(p))
	assert.Equal(t, "", files.Extension("/home/u/.bashrc"))
	assert.Equal(t, ".bashrc", files.Name("/home/u/.bashrc"))
	assert.Equal(t, "archive.tar", files.Name("archive.tar.gz"))
}

// TestMimeType sniffs content rather than trusting extensions.
func TestMimeType(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "image.txt")
	write(t, png, "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	page := filepath.Join(dir, "page.bin")
	write(t, page, "<html><body>hi</body></html>")

	m, err := files.MimeType(png)
	require.NoError(t, err)
	assert.Equal(t, "image/png", m)

	ok, err := files.IsMime(page, "text/plain")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = files.IsMime(png, "text/plain", "application/pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, "text/plain; charset=utf-8", files.MimeTypeOf([]byte("just text\n")))

	_, err = files.MimeType(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, files.ErrNotFound)
}

// TestHash checks known digests and parallel hashing.
func TestHash(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "h")
	write(t, p, "hello")

	want := map[string]string{
		"md5":    "5d41402abc4b2a76b9719d911017c592",
		"sha1":   "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
		"SHA256": "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		"crc32":  "3610a686",
	}
	for algo, sum := range want {
		got, err := files.Hash(p, algo)
		require.NoError(t, err, algo)
		assert.Equal(t, sum, got, algo)
	}
	_, err := files.Hash(p, "whirlpool")
	assert.ErrorIs(t, err, files.ErrUnsupportedHash)

	paths := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		q := filepath.Join(dir, "many", string(rune('a'+i)))
		write(t, q, "hello")
		paths = append(paths, q)
	}
	sums, err := files.HashMany(context.Background(), paths, "md5", 3)
	require.NoError(t, err)
	require.Len(t, sums, 20)
	for _, q := range paths {
		assert.Equal(t, want["md5"], sums[q])
	}

	_, err = files.HashMany(context.Background(), append(paths, filepath.Join(dir, "gone")), "md5", 0)
	assert.ErrorIs(t, err, files.ErrNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = files.HashMany(ctx, paths, "md5", 2)
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestTree covers copy, move, remove and symlinks.
func TestTree(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	write(t, filepath.Join(src, "a.txt"), "A")
	write(t, filepath.Join(src, "sub", "b.txt"), "B")
	require.NoError(t, os.Chmod(filepath.Join(src, "a.txt"), 0o640))
	require.NoError(t, files.Symlink("a.txt", filepath.Join(src, "link")))

	assert.ErrorIs(t, files.Symlink("a.txt", filepath.Join(src, "link")), files.ErrExists)

	dst := filepath.Join(dir, "dst")
	require.NoError(t, files.CopyDir(src, dst))
	b, err := files.Read(filepath.Join(dst, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "B", string(b))
	fi, err := os.Stat(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o640), fi.Mode().Perm())
	target, err := os.Readlink(filepath.Join(dst, "link"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", target)

	require.NoError(t, files.Copy(filepath.Join(src, "a.txt"), filepath.Join(dir, "deep", "x", "copy.txt")))
	assert.True(t, files.Exists(filepath.Join(dir, "deep", "x", "copy.txt")))
	assert.Error(t, files.Copy(src, filepath.Join(dir, "nope")))
	assert.ErrorIs(t, files.CopyDir(filepath.Join(src, "a.txt"), dst), files.ErrNotDir)

	moved := filepath.Join(dir, "moved", "a.txt")
	require.NoError(t, files.Move(filepath.Join(dst, "a.txt"), moved))
	assert.False(t, files.Exists(filepath.Join(dst, "a.txt")))
	assert.True(t, files.Exists(moved))
	assert.ErrorIs(t, files.Move(filepath.Join(dir, "ghost"), moved), files.ErrNotFound)

	require.NoError(t, files.Remove(dst))
	assert.False(t, files.Exists(dst))
	assert.ErrorIs(t, files.Remove(dst), files.ErrNotFound)

	require.NoError(t, files.EnsureDir(filepath.Join(dir, "e", "f"), 0o755))
	assert.True(t, files.IsDir(filepath.Join(dir, "e", "f")))
	assert.ErrorIs(t, files.EnsureDir(moved, 0o755), files.ErrNotDir)
}

// TestFind applies pattern, depth, kind and hidden filters.
func TestFind(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"a.go", "b.txt", "sub/c.go", "sub/deep/d.go", ".git/config", ".env"} {
		write(t, filepath.Join(root, p), "x")
	}
	rel := func(ps []string) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			r, err := filepath.Rel(root, p)
			require.NoError(t, err)
			out[i] = filepath.ToSlash(r)
		}
		return out
	}

	got, err := files.Find(root, files.FindOptions{Pattern: "*.go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "sub/c.go", "sub/deep/d.go"}, rel(got))

	got, err = files.Find(root, files.FindOptions{Pattern: "*.go", MaxDepth: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "sub/c.go"}, rel(got))

	got, err = files.Find(root, files.FindOptions{Kind: files.DirsOnly})
	require.NoError(t, err)
	assert.Equal(t, []string{"sub", "sub/deep"}, rel(got))

	got, err = files.Find(root, files.FindOptions{Kind: files.FilesOnly, Hidden: true, MaxDepth: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{".env", "a.go", "b.txt"}, rel(got))

	_, err = files.Find(root, files.FindOptions{Pattern: "[bad"})
	assert.Error(t, err)
	_, err = files.Find(filepath.Join(root, "a.go"), files.FindOptions{})
	assert.ErrorIs(t, err, files.ErrNotDir)
	_, err = files.Find(filepath.Join(root, "missing"), files.FindOptions{})
	assert.ErrorIs(t, err, files.ErrNotFound)
}

// TestLines numbers lines and stops on callback errors.
func TestLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "l.txt")
	write(t, p, "alpha\r\nbeta\ngamma")

	var got []string
	require.NoError(t, files.Lines(p, func(n int, line string) error {
		got = append(got, line)
		assert.Equal(t, len(got), n)
		return nil
	}))
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)

	stop := errors.New("stop")
	count := 0
	err := files.Lines(p, func(int, string) error {
		count++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, count)
}
