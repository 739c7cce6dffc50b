// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrPenalty is returned for a negative or NaN slope penalty.
var ErrPenalty = errors.New("stats: slope penalty must be a non-negative number")

// WarpOptions configures DTW.
//
//   - Window: Sakoe-Chiba band, the largest |i-j| allowed; 0 means
//     unconstrained. It is widened to |len(a)-len(b)| when narrower, so
//     the end cell is always reachable.
//   - SlopePenalty: extra cost charged for each non-diagonal step.
//   - Path: also return the warping path. Without it only two DP rows
//     are kept in memory.
type WarpOptions struct {
	Window       int
	SlopePenalty float64
	Path         bool
}

// Warp is the result of DTW.
type Warp struct {
	Distance float64
	// Path holds aligned index pairs (i into a, j into b) from (0,0) to
	// (len(a)-1, len(b)-1). Nil unless WarpOptions.Path was set.
	Path [][2]int
}

// DTW aligns two series that may differ in speed and returns the
// dynamic time warping distance: the least total |a[i]-b[j]| over
// monotone alignments covering both series.
//
// Complexity: O(n·m) time; O(m) memory, O(n·m) when the path is wanted.
func DTW[T Number](a, b []T, opts WarpOptions) (Warp, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return Warp{}, ErrEmpty
	}
	pen := opts.SlopePenalty
	if pen < 0 || math.IsNaN(pen) {
		return Warp{}, fmt.Errorf("%w: %v", ErrPenalty, pen)
	}
	band := math.MaxInt
	if opts.Window > 0 {
		band = max(opts.Window, abs(n-m))
	}
	inf := math.Inf(1)
	cols := m + 1

	// Stage 1: rows of the DP table. With a path every row is kept in
	// one flat slice; otherwise row i reuses slot i%2.
	rows := 2
	if opts.Path {
		rows = n + 1
	}
	dp := make([]float64, rows*cols)
	row := func(i int) []float64 {
		if !opts.Path {
			i %= 2
		}
		return dp[i*cols : (i+1)*cols]
	}
	first := row(0)
	for j := 1; j <= m; j++ {
		first[j] = inf
	}

	// Stage 2: fill.
	for i := 1; i <= n; i++ {
		prev, cur := row(i-1), row(i)
		cur[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > band {
				cur[j] = inf
				continue
			}
			best := min(prev[j-1], prev[j]+pen, cur[j-1]+pen)
			cur[j] = math.Abs(float64(a[i-1])-float64(b[j-1])) + best
		}
	}
	w := Warp{Distance: row(n)[m]}
	if !opts.Path {
		return w, nil
	}

	// Stage 3: walk back from (n, m), preferring the diagonal on ties.
	i, j := n, m
	for i > 0 && j > 0 {
		w.Path = append(w.Path, [2]int{i - 1, j - 1})
		diag, up, left := row(i - 1)[j-1], row(i - 1)[j]+pen, row(i)[j-1]+pen
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(w.Path)-1; l < r; l, r = l+1, r-1 {
		w.Path[l], w.Path[r] = w.Path[r], w.Path[l]
	}
	return w, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
