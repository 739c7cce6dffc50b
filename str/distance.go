package str

// Levenshtein returns the edit distance between a and b, counted in
// runes, with unit cost for insertion, deletion and substitution.
//
// Two-row dynamic programming:
//
//	D[i][j] = min(D[i-1][j]+1, D[i][j-1]+1, D[i-1][j-1]+cost(i,j))
//
// Only the previous and current rows are kept.
//
// Complexity: O(n·m) time, O(min(n,m)) memory.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	m := len(rb)
	if m == 0 {
		return len(ra)
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// Similarity returns how alike a and b are as a percentage in [0,100],
// derived from Levenshtein distance over the longer rune length.
// Two empty strings are 100% similar.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 100
	}
	return (1 - float64(Levenshtein(a, b))/float64(longest)) * 100
}
