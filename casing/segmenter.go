package casing

import "github.com/randalmurphal/textkit/charclass"

// Boundary is the kind of word break found before a rune.
type Boundary int

const (
	// NoBoundary means the rune continues the current word.
	NoBoundary Boundary = iota

	// SpecialBoundary means one or more special runes separated this rune
	// from the previous alphanumeric rune.
	SpecialBoundary

	// CaseBoundary means a lowercase rune was directly followed by this
	// uppercase rune.
	CaseBoundary
)

// Decision is the segmenter's verdict for a single rune.
type Decision struct {
	Class    charclass.Class
	Boundary Boundary
}

// Drop reports whether the rune must be left out of the output.
func (d Decision) Drop() bool {
	return d.Class == charclass.Special
}

// Segmenter walks a string one rune at a time and reports word boundaries.
// The zero value is ready to use. A Segmenter holds the state of a single
// pass and must not be shared between goroutines.
type Segmenter struct {
	lastWasSpecial bool
	lastWasLower   bool
	emitted        bool
}

// Next classifies r and returns the boundary preceding it.
//
// Special runes only set the pending special flag; they never touch the
// lowercase flag. Boundaries are never reported before the first emitted
// rune, so leading special runes produce nothing.
func (s *Segmenter) Next(r rune) Decision {
	class := charclass.Of(r)
	if class == charclass.Special {
		s.lastWasSpecial = true
		return Decision{Class: class}
	}

	boundary := NoBoundary
	switch {
	case s.lastWasSpecial:
		if s.emitted {
			boundary = SpecialBoundary
		}
		s.lastWasSpecial = false
	case s.lastWasLower && class == charclass.Upper && s.emitted:
		boundary = CaseBoundary
	}

	s.lastWasLower = class == charclass.Lower
	s.emitted = true
	return Decision{Class: class, Boundary: boundary}
}

// Reset clears the segmenter for a new pass.
func (s *Segmenter) Reset() {
	*s = Segmenter{}
}
