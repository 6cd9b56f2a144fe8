// Package casing converts text to camelCase and kebab-case.
//
// Both converters drop every special rune (anything that is not a Unicode
// letter or number) and use it only as a word boundary. A run of special
// runes counts as a single boundary, and leading special runes never
// produce a separator.
//
//	casing.CamelCase("Rio de Janeiro")         // "rioDeJaneiro"
//	casing.CamelCase("____Rio____de___JANEIRO") // "rioDeJaneiro"
//	casing.KebabCase("fooBar")                 // "foo-bar"
//	casing.KebabCase("__fOo_-BaR__")           // "f-oo-ba-r"
//
// CamelCase only starts a new word after special runes, so existing case
// inside a word is flattened ("fooBar" becomes "foobar"). KebabCase also
// breaks on a lowercase-to-uppercase transition.
//
// Neither converter strips accents. Compose with the diacritic package for
// ASCII output:
//
//	casing.KebabCase(diacritic.ReplaceExtendedASCII("São Paulo")) // "sao-paulo"
package casing

import (
	"strings"
	"unicode"
)

// CamelCase lowercases every rune and uppercases the first rune of each
// word after the first.
func CamelCase(s string) string {
	var (
		b   strings.Builder
		seg Segmenter
	)
	b.Grow(len(s))

	for _, r := range s {
		d := seg.Next(r)
		if d.Drop() {
			continue
		}
		if d.Boundary == SpecialBoundary {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// KebabCase lowercases every rune and joins words with '-'.
func KebabCase(s string) string {
	var (
		b   strings.Builder
		seg Segmenter
	)
	b.Grow(len(s) + len(s)/2)

	for _, r := range s {
		d := seg.Next(r)
		if d.Drop() {
			continue
		}
		if d.Boundary != NoBoundary {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Words splits s on the boundaries KebabCase uses and returns the words with
// their original case. It returns nil when s has no alphanumeric runes.
func Words(s string) []string {
	var (
		words []string
		cur   strings.Builder
		seg   Segmenter
	)

	for _, r := range s {
		d := seg.Next(r)
		if d.Drop() {
			continue
		}
		if d.Boundary != NoBoundary && cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}
