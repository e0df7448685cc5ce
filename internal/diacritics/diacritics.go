// Package diacritics folds accented text down to its unaccented base letters
// so that filters can compare "café" and "cafe" as equal.
//
// Folding runs compatibility decomposition (NFKD) and drops the resulting
// combining marks, which covers precomposed Latin letters, circled and
// fullwidth forms. Letters that carry their mark in the glyph itself (ø, ł,
// đ, æ, ...) have no decomposition; those are resolved through a static
// table that is built once at package initialisation and never mutated.
package diacritics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Strip removes diacritical marks from s, preserving letter case.
func Strip(s string) string {
	if isASCII(s) {
		return s
	}
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if base, ok := letters[r]; ok {
			b.WriteString(base)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fold lower-cases s and strips its diacritics. Two strings that fold to
// the same value are considered equal by the widget filter.
func Fold(s string) string {
	return strings.ToLower(Strip(s))
}

// Contains reports whether the folded form of text contains the folded form
// of query. An empty query matches everything.
func Contains(text, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(Fold(text), Fold(query))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
