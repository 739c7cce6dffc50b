package arr

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// rngFromEntropy returns a *rand.Rand seeded from crypto/rand, falling
// back to the clock if the system source fails.
func rngFromEntropy() *rand.Rand {
	var b [8]byte
	seed := time.Now().UnixNano()
	if _, err := crand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleInPlace performs a Fisher–Yates shuffle of a using r.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace[T any](a []T, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// partialShuffle moves k uniformly chosen elements into a[:k].
// Only the first k positions are randomized (inside-out Fisher–Yates).
//
// Complexity: O(k).
func partialShuffle[T any](a []T, k int, r *rand.Rand) {
	n := len(a)
	for i := 0; i < k; i++ {
		j := i + r.Intn(n-i)
		a[i], a[j] = a[j], a[i]
	}
}
