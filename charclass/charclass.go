// Package charclass classifies Unicode scalar values for word segmentation.
//
// Every rune falls into exactly one Class. Alphanumeric runes are those with
// the Unicode Alphabetic or Numeric property; everything else (punctuation,
// whitespace, symbols, control characters) is Special.
//
//	charclass.Of('A')  // Upper
//	charclass.Of('ã')  // Lower
//	charclass.Of('7')  // Other
//	charclass.Of('-')  // Special
package charclass

import "unicode"

// Class is the word-segmentation class of a rune.
type Class int

const (
	// Special is any rune that is not alphanumeric.
	Special Class = iota

	// Upper is an alphanumeric rune with the Unicode Uppercase property.
	Upper

	// Lower is an alphanumeric rune with the Unicode Lowercase property.
	Lower

	// Other is an alphanumeric rune with no case: digits, other numerics,
	// and caseless letters such as CJK ideographs.
	Other
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Special:
		return "special"
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// IsAlphanumeric reports whether the class is anything but Special.
func (c Class) IsAlphanumeric() bool {
	return c != Special
}

// Of returns the class of r.
func Of(r rune) Class {
	if !IsAlphanumeric(r) {
		return Special
	}
	switch {
	case IsUpper(r):
		return Upper
	case IsLower(r):
		return Lower
	default:
		return Other
	}
}

// IsAlphanumeric reports whether r has the Unicode Alphabetic or Numeric
// property.
func IsAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.Is(unicode.Other_Alphabetic, r)
}

// IsUpper reports whether r has the Unicode Uppercase property
// (Lu plus Other_Uppercase).
func IsUpper(r rune) bool {
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}

// IsLower reports whether r has the Unicode Lowercase property
// (Ll plus Other_Lowercase).
func IsLower(r rune) bool {
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}
