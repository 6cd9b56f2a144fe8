package truncate

import (
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/textkit/charclass"
)

// Ellipsis is appended by ToLength and Smart when they cut text.
const Ellipsis = "..."

// ToLines truncates text to a maximum number of lines.
func ToLines(text string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}

	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}

	return strings.Join(lines[:maxLines], "\n") + "\n" + Ellipsis
}

// ToLength truncates text to at most maxLen runes, ellipsis included.
// For maxLen below the ellipsis length the text is cut without one.
func ToLength(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	keep := maxLen - len(Ellipsis)
	if keep <= 0 {
		return Prefix(text, maxLen)
	}
	return Prefix(text, keep) + Ellipsis
}

// Smart truncates text to at most maxLen runes, preferring to cut after a
// sentence end and then before a special rune (a word break) in the second
// half of the allowed length. It falls back to ToLength.
func Smart(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	breakPoint := maxLen - len(Ellipsis)
	if breakPoint <= 0 {
		return ToLength(text, maxLen)
	}

	for i := breakPoint; i > maxLen/2; i-- {
		if isSentenceEnd(runes[i]) {
			return string(runes[:i+1])
		}
	}

	for i := breakPoint; i > maxLen/2; i-- {
		if charclass.Of(runes[i]) == charclass.Special && charclass.IsAlphanumeric(runes[i-1]) {
			return string(runes[:i]) + Ellipsis
		}
	}

	return string(runes[:breakPoint]) + Ellipsis
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
