// Package textutil provides Unicode normalization helpers used before any
// lexicon or corpus matching. All matching in this repo operates on NFKC,
// lower-cased text so that full-width variants and case differences never
// defeat a trigger phrase.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC normalization, trims whitespace and collapses
// internal runs of whitespace to single spaces.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// Fold returns the canonical matching form: NFKC-normalized and lower-cased.
func Fold(s string) string {
	return strings.ToLower(Normalize(s))
}

// HasHan reports whether the text contains at least one Han rune.
func HasHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// RuneLen counts runes, not bytes.
func RuneLen(s string) int {
	return len([]rune(s))
}
