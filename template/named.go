package template

import (
	"fmt"
	"strings"
)

// Template is a compiled pattern with "{ key }" placeholders.
// A Template is immutable and safe for concurrent use.
type Template struct {
	pattern  string
	segments []segment
}

// Compile parses pattern once. Compilation never fails; text that does not
// match the "{ key }" form is kept as a literal.
func Compile(pattern string) *Template {
	return &Template{
		pattern:  pattern,
		segments: parseNamed(pattern),
	}
}

// Pattern returns the source pattern.
func (t *Template) Pattern() string {
	return t.pattern
}

// Execute substitutes every placeholder whose key is in vars. Placeholders
// with no value are written back unchanged. Substituted values are not
// scanned for placeholders. vars is only read.
func (t *Template) Execute(vars map[string]string) string {
	var b strings.Builder
	b.Grow(len(t.pattern))
	for _, seg := range t.segments {
		if seg.placeholder {
			if v, ok := vars[seg.key]; ok {
				b.WriteString(v)
				continue
			}
		}
		b.WriteString(seg.text)
	}
	return b.String()
}

// ExecuteStrict is Execute, but fails with ErrVariable naming the first
// placeholder that has no value.
func (t *Template) ExecuteStrict(vars map[string]string) (string, error) {
	if missing := t.Missing(vars); len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrVariable, missing[0])
	}
	return t.Execute(vars), nil
}

// Func returns Execute as a plain function value.
func (t *Template) Func() func(map[string]string) string {
	return t.Execute
}

// Keys returns the placeholder keys in order of first appearance, without
// duplicates.
func (t *Template) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, seg := range t.segments {
		if seg.placeholder && !seen[seg.key] {
			seen[seg.key] = true
			keys = append(keys, seg.key)
		}
	}
	return keys
}

// Missing returns the keys that vars does not provide, in order of first
// appearance.
func (t *Template) Missing(vars map[string]string) []string {
	var missing []string
	for _, key := range t.Keys() {
		if _, ok := vars[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
