// Package textutils provides string similarity scoring and description
// normalization shared by the classification and validation engines.
package textutils

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Similarity computes a normalized similarity score between two strings in
// [0, 100]. It is symmetric, returns 100 for identical inputs, and degrades
// monotonically as characters are added, removed, or substituted.
func Similarity(a, b string) float64 {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	ratio := levenshtein.RatioForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return ratio * 100
}
