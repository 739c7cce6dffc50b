// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvkit/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDTWErrors covers empty series and bad penalties.
func TestDTWErrors(t *testing.T) {
	_, err := stats.DTW([]float64{}, []float64{1}, stats.WarpOptions{})
	assert.ErrorIs(t, err, stats.ErrEmpty)
	_, err = stats.DTW([]int{1}, nil, stats.WarpOptions{})
	assert.ErrorIs(t, err, stats.ErrEmpty)
	_, err = stats.DTW([]int{1}, []int{1}, stats.WarpOptions{SlopePenalty: -1})
	assert.ErrorIs(t, err, stats.ErrPenalty)
	_, err = stats.DTW([]int{1}, []int{1}, stats.WarpOptions{SlopePenalty: math.NaN()})
	assert.ErrorIs(t, err, stats.ErrPenalty)
}

// TestDTWPath aligns a series with a stretched copy of itself.
func TestDTWPath(t *testing.T) {
	w, err := stats.DTW([]float64{1, 2, 3}, []float64{1, 2, 2, 3}, stats.WarpOptions{Path: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, w.Distance)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, w.Path)

	same, err := stats.DTW([]int{0, 1, 2}, []int{0, 1, 2}, stats.WarpOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, same.Distance)
	assert.Nil(t, same.Path)
}

// TestDTWCosts checks the distance, the penalty and the band.
func TestDTWCosts(t *testing.T) {
	w, err := stats.DTW([]float64{0, 0, 0}, []float64{1, 1}, stats.WarpOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3.0, w.Distance)

	a, b := []float64{1, 2, 3}, []float64{1, 1, 2, 3}
	free, _ := stats.DTW(a, b, stats.WarpOptions{})
	taxed, _ := stats.DTW(a, b, stats.WarpOptions{SlopePenalty: 1})
	assert.Equal(t, 0.0, free.Distance)
	assert.Equal(t, 1.0, taxed.Distance)

	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := []float64{0, 0, 0, 1, 2, 3, 4, 5, 6, 7}
	open, _ := stats.DTW(x, y, stats.WarpOptions{})
	banded, err := stats.DTW(x, y, stats.WarpOptions{Window: 1})
	require.NoError(t, err)
	assert.False(t, math.IsInf(banded.Distance, 0), "band widens to the length difference")
	assert.GreaterOrEqual(t, banded.Distance, open.Distance)

	// Rolling rows and the full table agree.
	withPath, _ := stats.DTW(x, y, stats.WarpOptions{Window: 3, Path: true})
	without, _ := stats.DTW(x, y, stats.WarpOptions{Window: 3})
	assert.Equal(t, without.Distance, withPath.Distance)
	assert.Equal(t, [2]int{0, 0}, withPath.Path[0])
	assert.Equal(t, [2]int{len(x) - 1, len(y) - 1}, withPath.Path[len(withPath.Path)-1])
}
