package arr_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvkit/arr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlatten_PreservesLeaves verifies every leaf survives flattening, in order.
func TestFlatten_PreservesLeaves(t *testing.T) {
	in := []any{1, []any{2, []any{3, "x"}}, map[string]any{"b": 5, "a": 4}, nil}
	got := arr.Flatten(in)
	assert.Equal(t, []any{1, 2, 3, "x", 4, 5, nil}, got)
}

// TestFlattenDepth checks depth-limited flattening.
func TestFlattenDepth(t *testing.T) {
	in := []any{1, []any{2, []any{3}}}
	assert.Equal(t, []any{1, 2, []any{3}}, arr.FlattenDepth(in, 1))
	assert.Equal(t, in, arr.FlattenDepth(in, 0), "depth 0 must be a shallow copy")
}

// TestDotAccess covers Get, Has, Set and Forget on nested maps.
func TestDotAccess(t *testing.T) {
	m := map[string]any{
		"user": map[string]any{
			"name":    "ann",
			"address": map[string]any{"city": "Kyiv"},
		},
		"a.b": "literal",
	}

	assert.Equal(t, "Kyiv", arr.Get(m, "user.address.city", nil))
	assert.Equal(t, "literal", arr.Get(m, "a.b", nil), "literal dotted key wins")
	assert.Equal(t, "def", arr.Get(m, "user.name.first", "def"), "scalar in the middle")
	assert.Equal(t, "def", arr.Get(m, "missing", "def"))
	assert.True(t, arr.Has(m, "user.address"))
	assert.False(t, arr.Has(m, "user.phone"))
	assert.False(t, arr.Has(m, ""))

	require.NoError(t, arr.Set(m, "user.address.zip", "01001"))
	require.NoError(t, arr.Set(m, "meta.created.by", "bob"))
	assert.Equal(t, "01001", arr.Get(m, "user.address.zip", nil))
	assert.Equal(t, "bob", arr.Get(m, "meta.created.by", nil))

	err := arr.Set(m, "user.name.first", "x")
	assert.ErrorIs(t, err, arr.ErrPath)

	arr.Forget(m, "user.address.city")
	assert.False(t, arr.Has(m, "user.address.city"))
	arr.Forget(m, "no.such.path") // no-op
}

// TestDotUndot_RoundTrip verifies that Undot inverts Dot.
func TestDotUndot_RoundTrip(t *testing.T) {
	m := map[string]any{
		"a": map[string]any{"b": 1, "c": map[string]any{"d": true}},
		"e": "f",
		"g": map[string]any{},
	}
	flat := arr.Dot(m)
	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": true, "e": "f", "g": map[string]any{}}, flat)
	assert.Equal(t, m, arr.Undot(flat))
}

// TestGroupBy buckets words by length.
func TestGroupBy(t *testing.T) {
	words := []string{"go", "php", "js", "rust"}
	got := arr.GroupBy(words, func(s string) int { return len(s) })
	assert.Equal(t, map[int][]string{2: {"go", "js"}, 3: {"php"}, 4: {"rust"}}, got)
}

// TestUniqueChunkPluck covers the small slice helpers.
func TestUniqueChunkPluck(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, arr.Unique([]int{3, 1, 3, 2, 1}))

	chunks, err := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	_, err = arr.Chunk([]int{1}, 0)
	assert.ErrorIs(t, err, arr.ErrSampleSize)

	type user struct{ ID int }
	assert.Equal(t, []int{7, 9}, arr.Pluck([]user{{7}, {9}}, func(u user) int { return u.ID }))
}

// TestOnlyExcept checks map projection helpers.
func TestOnlyExcept(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	assert.Equal(t, map[string]int{"a": 1, "c": 3}, arr.Only(m, "a", "c", "z"))
	assert.Equal(t, map[string]int{"b": 2}, arr.Except(m, "a", "c"))
	assert.Len(t, m, 3, "input must not be mutated")
}

// TestFirstLastSumMinMax covers predicates and aggregations.
func TestFirstLastSumMinMax(t *testing.T) {
	s := []int{4, 7, 10, 13}
	even := func(x int) bool { return x%2 == 0 }

	v, ok := arr.First(s, even)
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	v, ok = arr.Last(s, even)
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = arr.First([]int{1, 3}, even)
	assert.False(t, ok)

	assert.Equal(t, 34, arr.Sum(s))
	assert.InDelta(t, 0.6, arr.Sum([]float64{0.1, 0.2, 0.3}), 1e-12)

	lo, err := arr.Min(s)
	require.NoError(t, err)
	assert.Equal(t, 4, lo)
	hi, err := arr.Max([]string{"b", "c", "a"})
	require.NoError(t, err)
	assert.Equal(t, "c", hi)
	_, err = arr.Max([]int{})
	assert.ErrorIs(t, err, arr.ErrEmpty)
}

// TestWrap covers nil, list and scalar inputs.
func TestWrap(t *testing.T) {
	assert.Equal(t, []any{}, arr.Wrap(nil))
	assert.Equal(t, []any{1, 2}, arr.Wrap([]any{1, 2}))
	assert.Equal(t, []any{"x"}, arr.Wrap("x"))
	assert.True(t, arr.IsList([]any{}))
	assert.False(t, arr.IsList(map[string]any{}))
}

// TestShuffle_IsPermutationAndDeterministic checks Fisher–Yates invariants.
func TestShuffle_IsPermutationAndDeterministic(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	a := arr.Shuffle(in, arr.WithSeed(42))
	b := arr.Shuffle(in, arr.WithSeed(42))
	assert.Equal(t, a, b, "same seed, same order")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, in, "input untouched")

	sorted := append([]int(nil), a...)
	sort.Ints(sorted)
	assert.Equal(t, in, sorted, "shuffle must be a permutation")

	assert.Equal(t, arr.Shuffle(in, arr.WithSeed(0)), arr.Shuffle(in, arr.WithSeed(0)), "seed 0 is a fixed seed")
}

// TestRandomDefaultVaries checks that calls without a seed are not repeatable.
func TestRandomDefaultVaries(t *testing.T) {
	in := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	picks := map[int]int{}
	orders := map[string]struct{}{}
	for i := 0; i < 200; i++ {
		v, err := arr.Random(in)
		require.NoError(t, err)
		picks[v]++
		orders[fmt.Sprint(arr.Shuffle(in))] = struct{}{}
	}
	assert.Greater(t, len(picks), 1, "Random always returned the same element")
	assert.Greater(t, len(orders), 1, "Shuffle always returned the same order")
}

// TestSample checks size bounds and distinctness.
func TestSample(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}

	got, err := arr.Sample(in, 3, arr.WithSeed(7))
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Len(t, arr.Unique(got), 3, "sampled elements must be distinct")
	for _, x := range got {
		assert.Contains(t, in, x)
	}

	empty, err := arr.Sample(in, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = arr.Sample(in, 6)
	assert.ErrorIs(t, err, arr.ErrSampleSize)
	_, err = arr.Sample(in, -1)
	assert.ErrorIs(t, err, arr.ErrSampleSize)
}

// TestRandom checks the single-element pick.
func TestRandom(t *testing.T) {
	v, err := arr.Random([]int{5, 6, 7}, arr.WithSeed(3))
	require.NoError(t, err)
	assert.Contains(t, []int{5, 6, 7}, v)

	_, err = arr.Random([]int{})
	assert.ErrorIs(t, err, arr.ErrEmpty)
}

// TestWeightedPick checks validation and that zero-weight items are never picked.
func TestWeightedPick(t *testing.T) {
	items := []string{"never", "always"}
	for seed := int64(1); seed <= 50; seed++ {
		got, err := arr.WeightedPick(items, []int{0, 3}, arr.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, "always", got)
	}

	_, err := arr.WeightedPick(items, []int{1})
	assert.ErrorIs(t, err, arr.ErrBadWeights)
	_, err = arr.WeightedPick(items, []float64{-1, 2})
	assert.ErrorIs(t, err, arr.ErrBadWeights)
	_, err = arr.WeightedPick(items, []int{0, 0})
	assert.ErrorIs(t, err, arr.ErrBadWeights)
	_, err = arr.WeightedPick([]string{}, []int{})
	assert.ErrorIs(t, err, arr.ErrEmpty)
}

// TestWeightedPick_Distribution checks rough proportionality over many draws.
func TestWeightedPick_Distribution(t *testing.T) {
	counts := map[string]int{}
	opt := arr.WithRand(rand.New(rand.NewSource(99)))
	for i := 0; i < 10000; i++ {
		v, err := arr.WeightedPick([]string{"a", "b"}, []float64{1, 3}, opt)
		require.NoError(t, err)
		counts[v]++
	}
	assert.InDelta(t, 0.75, float64(counts["b"])/10000, 0.03)
}

// TestWithRand_PanicsOnNil verifies option constructors fail fast.
func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { arr.WithRand(nil) })
}

// TestQuery evaluates JSONPath expressions over decoded data.
func TestQuery(t *testing.T) {
	doc := map[string]any{
		"users": []any{
			map[string]any{"name": "ann", "age": 31.0},
			map[string]any{"name": "bob", "age": 25.0},
		},
	}
	v, err := arr.Query(doc, "$.users[0].name")
	require.NoError(t, err)
	assert.Equal(t, "ann", v)

	names, err := arr.Query(doc, "$.users[*].name")
	require.NoError(t, err)
	if diff := cmp.Diff([]any{"ann", "bob"}, names); diff != "" {
		t.Errorf("wildcard mismatch (-want +got):\n%s", diff)
	}

	_, err = arr.Query(doc, "$.missing")
	assert.ErrorIs(t, err, arr.ErrPath)
}
