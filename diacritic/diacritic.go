// Package diacritic replaces accented Latin letters with ASCII equivalents.
//
// ReplaceExtendedASCII uses a fixed table and maps one rune to one rune, so
// the result always has the same number of runes as the input:
//
//	diacritic.ReplaceExtendedASCII("São Paulo")   // "Sao Paulo"
//	diacritic.ReplaceExtendedASCII("Łódź")        // "Lodz"
//
// Letters without a single-letter ASCII equivalent (ß, æ, œ, þ) and every
// non-Latin script pass through unchanged.
//
// Fold is the broader, table-free variant. It decomposes the input and drops
// every combining mark, so it also handles Vietnamese or Greek tonos, but it
// does not guarantee ASCII and may shorten input that already carries
// separate combining marks.
package diacritic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ReplaceExtendedASCII returns s with every accented Latin letter in the
// table replaced by its ASCII letter. All other runes are copied unchanged.
func ReplaceExtendedASCII(s string) string {
	if isASCII(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(Replace(r))
	}
	return b.String()
}

// Replace returns the ASCII replacement for r, or r itself when r is not
// in the table.
func Replace(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	if base, ok := table[r]; ok {
		return base
	}
	return r
}

// Has reports whether r has a table replacement.
func Has(r rune) bool {
	_, ok := table[r]
	return ok
}

// Fold strips combining marks via NFD, remove(Mn), NFC.
func Fold(s string) string {
	if isASCII(s) {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
