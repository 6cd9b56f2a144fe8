package truncate

import (
	"strings"
	"unicode/utf8"
)

// Prefix returns the first n runes of s. n is clamped to [0, rune count],
// so Prefix never splits a multi-byte rune and never panics.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// EndsWith reports whether s ends with target.
func EndsWith(s, target string) bool {
	return strings.HasSuffix(s, target)
}

// EndsWithAt reports whether the first position runes of s end with target.
// The string is searched as if it were position runes long; a position past
// the end is clamped to the rune count of s, and a negative one to zero.
//
//	EndsWithAt("abc", "ab", 2) // true
//	EndsWithAt("abc", "bc", 2) // false
func EndsWithAt(s, target string, position int) bool {
	if position >= utf8.RuneCountInString(s) {
		return EndsWith(s, target)
	}
	return strings.HasSuffix(Prefix(s, position), target)
}
