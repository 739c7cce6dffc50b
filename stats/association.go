// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
)

// Covariance returns the sample covariance of two equally long series.
func Covariance[T Number](x, y []T) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return 0, ErrTooFew
	}
	mx, my := Sum(x)/float64(len(x)), Sum(y)/float64(len(y))
	var s float64
	for i := range x {
		s += (float64(x[i]) - mx) * (float64(y[i]) - my)
	}
	return s / float64(len(x)-1), nil
}

// Correlation returns Pearson's r in [-1, 1]. If either series is
// constant, the result is 0.
func Correlation[T Number](x, y []T) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return 0, ErrTooFew
	}
	mx, my := Sum(x)/float64(len(x)), Sum(y)/float64(len(y))
	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := float64(x[i])-mx, float64(y[i])-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, nil
	}
	r := sxy / math.Sqrt(sxx*syy)
	return math.Max(-1, math.Min(1, r)), nil
}

// CorrelationMatrix returns the c×c Pearson correlation matrix of c
// equally long columns, along with the column means and sample standard
// deviations.
//
// Implementation:
//   - Stage 1: validate shape (c >= 1, every column of length r >= 2).
//   - Stage 2: centre each column and compute its sample deviation.
//   - Stage 3: z-score the columns; a constant column becomes all zeros.
//   - Stage 4: Corr[i][j] = Σ z_i·z_j / (r-1), filling both triangles.
//
// Complexity: O(r·c²) time, O(r·c + c²) space.
func CorrelationMatrix(cols [][]float64) (corr [][]float64, means, stds []float64, err error) {
	// Stage 1 (Validate).
	c := len(cols)
	if c == 0 {
		return nil, nil, nil, ErrEmpty
	}
	r := len(cols[0])
	for j, col := range cols {
		if len(col) != r {
			return nil, nil, nil, fmt.Errorf("%w: column %d has %d values, want %d", ErrLengthMismatch, j, len(col), r)
		}
	}
	if r < 2 {
		return nil, nil, nil, ErrTooFew
	}

	// Stage 2 (Centre + std).
	means = make([]float64, c)
	stds = make([]float64, c)
	z := make([][]float64, c)
	inv := 1 / float64(r-1)
	for j, col := range cols {
		means[j] = Sum(col) / float64(r)
		z[j] = make([]float64, r)
		var ss float64
		for i, v := range col {
			d := v - means[j]
			z[j][i] = d
			ss += d * d
		}
		stds[j] = math.Sqrt(ss * inv)
	}

	// Stage 3 (Z-score): degenerate std == 0 zeroes the column.
	for j := range z {
		scale := 0.0
		if stds[j] > 0 {
			scale = 1 / stds[j]
		}
		for i := range z[j] {
			z[j][i] *= scale
		}
	}

	// Stage 4 (Corr): symmetric, fixed i→j order.
	corr = make([][]float64, c)
	for i := range corr {
		corr[i] = make([]float64, c)
	}
	for i := 0; i < c; i++ {
		for j := i; j < c; j++ {
			var s float64
			for k := 0; k < r; k++ {
				s += z[i][k] * z[j][k]
			}
			s *= inv
			corr[i][j], corr[j][i] = s, s
		}
	}
	return corr, means, stds, nil
}
