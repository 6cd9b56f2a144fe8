package template

import (
	"regexp"
	"strconv"
)

var (
	// namedPattern matches "{ key }": exactly one space on each side and a
	// key with no braces or whitespace.
	namedPattern = regexp.MustCompile(`\{ ([^{}\s]+) \}`)

	// positionalPattern matches "{N}" with N a positive decimal integer
	// written without leading zeros.
	positionalPattern = regexp.MustCompile(`\{([1-9][0-9]*)\}`)
)

// segment is one piece of a compiled pattern. For placeholders, text holds
// the literal placeholder so it can be written back when unresolved.
type segment struct {
	text        string
	key         string
	index       int
	placeholder bool
}

// parseNamed splits pattern into literal and "{ key }" segments.
func parseNamed(pattern string) []segment {
	return split(pattern, namedPattern, func(raw, sub string) (segment, bool) {
		return segment{text: raw, key: sub, placeholder: true}, true
	})
}

// parsePositional splits pattern into literal and "{N}" segments. Indexes
// too large for an int stay literal.
func parsePositional(pattern string) []segment {
	return split(pattern, positionalPattern, func(raw, sub string) (segment, bool) {
		n, err := strconv.Atoi(sub)
		if err != nil {
			return segment{}, false
		}
		return segment{text: raw, index: n, placeholder: true}, true
	})
}

// split walks the matches of re in pattern. Adjacent literal text is merged
// into a single segment.
func split(pattern string, re *regexp.Regexp, placeholder func(raw, sub string) (segment, bool)) []segment {
	var (
		segments []segment
		literal  int
	)
	for _, m := range re.FindAllStringSubmatchIndex(pattern, -1) {
		seg, ok := placeholder(pattern[m[0]:m[1]], pattern[m[2]:m[3]])
		if !ok {
			continue
		}
		if m[0] > literal {
			segments = append(segments, segment{text: pattern[literal:m[0]]})
		}
		segments = append(segments, seg)
		literal = m[1]
	}
	if literal < len(pattern) {
		segments = append(segments, segment{text: pattern[literal:]})
	}
	return segments
}
