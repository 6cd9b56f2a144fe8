// Package truncate provides rune-safe prefix, suffix, and truncation helpers.
//
// Every position and length in this package counts runes, not bytes, and is
// clamped to the string, so no call can split a multi-byte character or
// index out of range.
//
// # Suffix Matching
//
// EndsWith checks the whole string. EndsWithAt checks the string as if it
// ended after the given number of runes:
//
//	truncate.EndsWith("abc", "c")        // true
//	truncate.EndsWithAt("abc", "ab", 2)  // true
//	truncate.EndsWithAt("abc", "bc", 2)  // false
//	truncate.EndsWithAt("abc", "c", 99)  // true (clamped to 3)
//
// A position of 0 is a real position (the empty prefix), so
// EndsWithAt(s, "", 0) is true and EndsWithAt("abc", "c", 0) is false.
//
// # Truncation
//
//	truncate.Prefix("héllo", 2)     // "hé"
//	truncate.ToLength(text, 500)    // at most 500 runes, "..." when cut
//	truncate.ToLines(text, 50)      // first 50 lines, "\n..." when cut
//	truncate.Smart(text, 500)       // prefer sentence, then word boundaries
package truncate
