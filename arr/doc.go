// Package arr collects small helpers for slices and string-keyed maps:
// flattening, dot-notation access, grouping, de-duplication, chunking,
// plucking, and seedable random sampling.
//
// What:
//
//   - Flatten / FlattenDepth: collapse nested []any into a flat list,
//     preserving every leaf value in order.
//   - Get / Set / Has / Forget: read and mutate nested maps with a
//     dot-separated path ("user.address.city").
//   - Dot / Undot: convert between nested maps and flat dot-keyed maps.
//   - GroupBy, Unique, Chunk, Pluck, Only, Except, First, Last, Sum,
//     Min, Max: generic slice and map utilities.
//   - Shuffle, Sample, Random, WeightedPick: Fisher–Yates based random
//     selection driven by an explicit, seedable *rand.Rand.
//   - Query: JSONPath expressions over decoded JSON-like data.
//
// Determinism:
//
//	Random helpers never read the shared global source. Without WithSeed
//	or WithRand each call draws from a freshly seeded source, so results
//	vary between calls. WithSeed makes them reproducible.
//
// Complexity:
//
//   - Flatten, Dot, Undot: O(total leaves).
//   - Get/Set/Has/Forget: O(path segments).
//   - Sample(k): O(n) copy + O(k) partial shuffle.
//   - WeightedPick: O(n).
package arr
