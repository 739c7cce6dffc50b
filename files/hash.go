package files

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

var hashes = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
	"crc32":  func() hash.Hash { return crc32.NewIEEE() },
}

// Hash returns the lower-case hex digest of path.
func Hash(path, algo string) (string, error) {
	newHash, ok := hashes[strings.ToLower(algo)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedHash, algo)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", classify(err)
	}
	defer f.Close()

	h := newHash()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashMany hashes paths concurrently with at most workers goroutines
// (runtime.NumCPU when workers <= 0). It stops at the first error or
// when ctx is cancelled.
func HashMany(ctx context.Context, paths []string, algo string, workers int) (map[string]string, error) {
	if _, ok := hashes[strings.ToLower(algo)]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, algo)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu  sync.Mutex
		out = make(map[string]string, len(paths))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, p := range paths {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := Hash(p, algo)
			if err != nil {
				return err
			}
			mu.Lock()
			out[p] = sum
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
