// core/seqstat/seqstat.go
package seqstat

import (
	"errors"
	"math"
)

// ErrEmptySequence is returned by GCContent for a zero-length sequence.
var ErrEmptySequence = errors.New("empty sequence")

// GCContent returns the G+C percentage of seq, rounded to one decimal
// place (value in [0,100]). The empty sequence is an error; callers
// that accept empty input must guard.
func GCContent(seq string) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	pct := 100 * float64(gc) / float64(len(seq))
	return math.Round(pct*10) / 10, nil
}

// LongestCommonSubstring returns the longest contiguous run of symbols
// shared verbatim by a and b, taken from a. Ties are broken by first
// occurrence: the running maximum is only replaced on strict
// improvement, so a later equal-length match never wins. Empty result
// when the inputs share no symbol.
func LongestCommonSubstring(a, b string) string {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return ""
	}
	// L[j] holds the current row of the classic (m+1)x(n+1) table;
	// each cell only depends on the previous row, so two rows suffice.
	prev := make([]int, n+1)
	cur := make([]int, n+1)

	longest, end := 0, 0
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > longest {
					longest = cur[j]
					end = i
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return a[end-longest : end]
}

// Report bundles the statistics seqstat emits for a sequence pair.
type Report struct {
	Len1, Len2 int
	GC1, GC2   float64
	LCS        string
}

// Stats computes the full report for two non-empty sequences.
func Stats(a, b string) (Report, error) {
	gc1, err := GCContent(a)
	if err != nil {
		return Report{}, err
	}
	gc2, err := GCContent(b)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Len1: len(a),
		Len2: len(b),
		GC1:  gc1,
		GC2:  gc2,
		LCS:  LongestCommonSubstring(a, b),
	}, nil
}
