package template

import (
	"fmt"
	"strings"
)

// Positional is a compiled pattern with "{N}" placeholders, where N is a
// 1-based index into the values passed to Execute.
// A Positional is immutable and safe for concurrent use.
type Positional struct {
	pattern  string
	segments []segment
}

// CompilePositional parses pattern once. "{0}" and indexes with leading
// zeros are not placeholders and stay literal.
func CompilePositional(pattern string) *Positional {
	return &Positional{
		pattern:  pattern,
		segments: parsePositional(pattern),
	}
}

// Pattern returns the source pattern.
func (p *Positional) Pattern() string {
	return p.pattern
}

// Execute replaces every "{N}" with values[N-1]. A placeholder whose index
// is past the end of values is written back unchanged. The same index
// always receives the same value.
func (p *Positional) Execute(values []string) string {
	var b strings.Builder
	b.Grow(len(p.pattern))
	for _, seg := range p.segments {
		if seg.placeholder && seg.index <= len(values) {
			b.WriteString(values[seg.index-1])
			continue
		}
		b.WriteString(seg.text)
	}
	return b.String()
}

// ExecuteStrict is Execute, but fails with ErrVariable when the pattern
// references an index past the end of values.
func (p *Positional) ExecuteStrict(values []string) (string, error) {
	if highest := p.MaxIndex(); highest > len(values) {
		return "", fmt.Errorf("%w: {%d} with %d values", ErrVariable, highest, len(values))
	}
	return p.Execute(values), nil
}

// Func returns Execute as a plain function value.
func (p *Positional) Func() func([]string) string {
	return p.Execute
}

// Indexes returns the referenced indexes in order of first appearance,
// without duplicates.
func (p *Positional) Indexes() []int {
	seen := make(map[int]bool)
	var indexes []int
	for _, seg := range p.segments {
		if seg.placeholder && !seen[seg.index] {
			seen[seg.index] = true
			indexes = append(indexes, seg.index)
		}
	}
	return indexes
}

// MaxIndex returns the largest referenced index, or 0 when the pattern has
// no placeholders. Execute needs at least MaxIndex values to resolve every
// placeholder.
func (p *Positional) MaxIndex() int {
	highest := 0
	for _, seg := range p.segments {
		if seg.placeholder && seg.index > highest {
			highest = seg.index
		}
	}
	return highest
}
