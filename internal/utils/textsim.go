package utils

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SimilarityRatio returns a similarity measure in [0, 1] between two strings:
// twice the number of matching characters divided by the combined length.
// Identical strings score 1, fully disjoint strings score 0. Comparison is
// case-sensitive; callers normalize case first.
func SimilarityRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)

	matched := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	return 2.0 * float64(matched) / float64(total)
}
