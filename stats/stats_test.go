package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvkit/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var data = []float64{2, 4, 4, 4, 5, 5, 7, 9}

// TestCentral covers mean, median and mode.
func TestCentral(t *testing.T) {
	m, err := stats.Mean(data)
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)

	med, err := stats.Median([]int{5, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, med)
	med, err = stats.Median(data)
	require.NoError(t, err)
	assert.Equal(t, 4.5, med)

	modes, err := stats.Mode([]int{3, 1, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, modes)

	_, err = stats.Mean([]int{})
	assert.ErrorIs(t, err, stats.ErrEmpty)
	_, err = stats.Median([]float64(nil))
	assert.ErrorIs(t, err, stats.ErrEmpty)
	_, err = stats.Mode([]uint8{})
	assert.ErrorIs(t, err, stats.ErrEmpty)

	assert.Equal(t, 0.0, stats.Sum([]int{}))
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, stats.Frequencies([]string{"a", "b", "a"}))
}

// TestSpread covers variance, standard deviation and range.
func TestSpread(t *testing.T) {
	v, err := stats.Variance(data, stats.Population)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
	sd, err := stats.StdDev(data, stats.Population)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sd)

	v, err = stats.Variance(data, stats.Sample)
	require.NoError(t, err)
	assert.InDelta(t, 32.0/7, v, 1e-12)

	_, err = stats.Variance([]int{1}, stats.Sample)
	assert.ErrorIs(t, err, stats.ErrTooFew)
	v, err = stats.Variance([]int{1}, stats.Population)
	require.NoError(t, err)
	assert.Zero(t, v)

	lo, hi, err := stats.Range([]int{3, -2, 8, 0})
	require.NoError(t, err)
	assert.Equal(t, -2, lo)
	assert.Equal(t, 8, hi)
	_, _, err = stats.Range([]int{})
	assert.ErrorIs(t, err, stats.ErrEmpty)
}

// TestPercentile uses the inclusive interpolation method.
func TestPercentile(t *testing.T) {
	xs := []int{15, 20, 35, 40, 50}
	cases := map[float64]float64{0: 15, 25: 20, 40: 29, 50: 35, 90: 46, 100: 50}
	for p, want := range cases {
		got, err := stats.Percentile(xs, p)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "p=%v", p)
	}
	for _, p := range []float64{-1, 100.5, math.NaN()} {
		_, err := stats.Percentile(xs, p)
		assert.ErrorIs(t, err, stats.ErrPercentile)
	}

	q1, q2, q3, err := stats.Quartiles([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5, 7}, []float64{q1, q2, q3})

	// Input order is preserved.
	assert.Equal(t, []int{15, 20, 35, 40, 50}, xs)
}

// TestHistogram bins values into equal-width buckets.
func TestHistogram(t *testing.T) {
	bins, err := stats.Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)
	require.NoError(t, err)
	require.Len(t, bins, 5)
	counts := make([]int, len(bins))
	for i, b := range bins {
		counts[i] = b.Count
	}
	assert.Equal(t, []int{2, 2, 2, 2, 3}, counts)
	assert.Equal(t, 0.0, bins[0].Lo)
	assert.Equal(t, 10.0, bins[4].Hi)

	same, err := stats.Histogram([]int{7, 7, 7}, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.5, same[0].Lo)
	assert.Equal(t, 7.5, same[1].Hi)
	assert.Equal(t, 3, same[0].Count+same[1].Count)

	withNaN, err := stats.Histogram([]float64{1, math.NaN(), 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, withNaN[0].Count)

	_, err = stats.Histogram([]int{1}, 0)
	assert.ErrorIs(t, err, stats.ErrBadBins)
	_, err = stats.Histogram([]float64{math.NaN()}, 3)
	assert.ErrorIs(t, err, stats.ErrEmpty)

	withInf, err := stats.Histogram([]float64{1, 2, math.Inf(1), math.Inf(-1)}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, withInf[0].Count)
	assert.Equal(t, 1, withInf[1].Count)
	assert.Equal(t, 2.0, withInf[1].Hi)
	_, err = stats.Histogram([]float64{math.Inf(1)}, 1)
	assert.ErrorIs(t, err, stats.ErrEmpty)
}

// TestZScores standardises and handles constant input.
func TestZScores(t *testing.T) {
	z, err := stats.ZScores(data)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, -0.5, -0.5, -0.5, 0, 0, 1, 2}, z)

	z, err = stats.ZScores([]int{4, 4, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, z)

	_, err = stats.ZScores([]int{})
	assert.ErrorIs(t, err, stats.ErrEmpty)
}

// TestCorrelation covers Pearson r and covariance edge cases.
func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	r, err := stats.Correlation(x, []float64{2, 4, 6, 8, 10})
	require.NoError(t, err)
	assert.InDelta(t, 1, r, 1e-12)
	r, err = stats.Correlation(x, []float64{5, 4, 3, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1, r, 1e-12)
	r, err = stats.Correlation(x, []float64{3, 3, 3, 3, 3})
	require.NoError(t, err)
	assert.Zero(t, r)

	c, err := stats.Covariance(x, []float64{2, 4, 6, 8, 10})
	require.NoError(t, err)
	assert.InDelta(t, 5, c, 1e-12)

	_, err = stats.Correlation(x, x[:3])
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)
	_, err = stats.Covariance([]int{1}, []int{1})
	assert.ErrorIs(t, err, stats.ErrTooFew)
}

// TestCorrelationMatrix is symmetric with a unit diagonal for varying columns.
func TestCorrelationMatrix(t *testing.T) {
	cols := [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{4, 3, 2, 1},
		{5, 5, 5, 5},
	}
	corr, means, stds, err := stats.CorrelationMatrix(cols)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 5, 2.5, 5}, means)
	assert.InDelta(t, 0, stds[3], 1e-12)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1, corr[i][i], 1e-12)
	}
	assert.InDelta(t, 1, corr[0][1], 1e-12)
	assert.InDelta(t, -1, corr[0][2], 1e-12)
	assert.Equal(t, corr[0][2], corr[2][0])
	assert.Zero(t, corr[3][3])
	assert.Zero(t, corr[0][3])

	_, _, _, err = stats.CorrelationMatrix(nil)
	assert.ErrorIs(t, err, stats.ErrEmpty)
	_, _, _, err = stats.CorrelationMatrix([][]float64{{1, 2}, {1}})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)
	_, _, _, err = stats.CorrelationMatrix([][]float64{{1}})
	assert.ErrorIs(t, err, stats.ErrTooFew)
}
