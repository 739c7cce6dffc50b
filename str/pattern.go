package str

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// PatternTimeout bounds a single match so hostile input cannot trigger
// catastrophic backtracking.
const PatternTimeout = 250 * time.Millisecond

func compile(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPattern, err)
	}
	re.MatchTimeout = PatternTimeout
	return re, nil
}

// Match reports whether pattern matches s and returns the captured
// groups of the first match (index 0 is the whole match).
// Patterns follow .NET/PCRE syntax, including lookarounds.
func Match(pattern, s string) ([]string, bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, false, err
	}
	m, err := re.FindStringMatch(s)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrPattern, err)
	}
	if m == nil {
		return nil, false, nil
	}
	return groupStrings(m), true, nil
}

// MatchAll returns the groups of every non-overlapping match.
func MatchAll(pattern, s string) ([][]string, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	var out [][]string
	m, err := re.FindStringMatch(s)
	for m != nil && err == nil {
		out = append(out, groupStrings(m))
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPattern, err)
	}
	return out, nil
}

// ReplacePattern replaces every match of pattern with repl, where repl
// may reference groups as $1 or ${name}.
func ReplacePattern(pattern, s, repl string) (string, error) {
	re, err := compile(pattern)
	if err != nil {
		return "", err
	}
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPattern, err)
	}
	return out, nil
}

func groupStrings(m *regexp2.Match) []string {
	groups := m.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.String()
	}
	return out
}
