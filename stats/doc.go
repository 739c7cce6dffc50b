// Package stats provides descriptive statistics over numeric slices.
//
// What:
//
//   - Central tendency: Mean, Median, Mode.
//   - Spread: Variance and StdDev (Population or Sample), Range,
//     Percentile (linear interpolation between closest ranks, the
//     "inclusive" method used by spreadsheets), Quartiles.
//   - Distribution: Histogram (equal-width bins), Frequencies.
//   - Standardisation and association: ZScores, Covariance, Correlation
//     (Pearson), CorrelationMatrix.
//   - Alignment: DTW (dynamic time warping) with an optional Sakoe-Chiba
//     band, slope penalty and alignment path.
//
// All functions are generic over integer and float element types and
// return float64 results. Inputs are never modified.
//
// Degenerate data: a zero standard deviation yields zero z-scores and a
// zero correlation rather than NaN.
//
// Complexity: O(n) except Median, Percentile and Quartiles (O(n log n)
// for the sorted copy), CorrelationMatrix (O(n·c²)) and DTW (O(n·m) time;
// O(m) memory unless the path is requested).
package stats
