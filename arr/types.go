package arr

import (
	"errors"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for arr operations.
var (
	// ErrEmpty is returned when an operation needs at least one element.
	ErrEmpty = errors.New("arr: input is empty")

	// ErrSampleSize is returned when Sample is asked for more elements than
	// the input holds, or for a negative count.
	ErrSampleSize = errors.New("arr: sample size out of range")

	// ErrBadWeights is returned when weights are negative, all zero, or do
	// not match the number of items.
	ErrBadWeights = errors.New("arr: invalid weights")

	// ErrPath is returned when a dot path or JSONPath expression cannot be
	// resolved against the input.
	ErrPath = errors.New("arr: path not resolvable")
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Option customizes random helpers (Shuffle, Sample, Random, WeightedPick).
type Option func(*Options)

// Options holds the RNG used by random helpers.
type Options struct {
	// Rand is the source of randomness. Nil means a freshly seeded source.
	Rand *rand.Rand
}

// DefaultOptions returns Options with a nil Rand (unpredictable output).
func DefaultOptions() Options {
	return Options{Rand: nil}
}

// WithSeed makes random helpers reproducible for the given seed.
// Seed 0 maps to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("arr: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// resolve applies opts over the defaults and guarantees a non-nil RNG.
func resolve(opts []Option) *rand.Rand {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		return rngFromEntropy()
	}
	return o.Rand
}
