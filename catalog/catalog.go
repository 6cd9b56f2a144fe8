package catalog

import (
	"fmt"
	"sort"

	"github.com/randalmurphal/textkit/template"
)

// File is the on-disk layout of a catalog.
type File struct {
	Templates map[string]Entry `yaml:"templates" toml:"templates" json:"templates" jsonschema:"description=Templates keyed by name"`
}

// Entry describes one template in a catalog file.
type Entry struct {
	Pattern     string `yaml:"pattern" toml:"pattern" json:"pattern" jsonschema:"minLength=1,description=Pattern with { key } or {N} placeholders"`
	Positional  bool   `yaml:"positional,omitempty" toml:"positional,omitempty" json:"positional,omitempty" jsonschema:"description=Use {N} placeholders instead of { key }"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
}

// Catalog is a set of compiled templates addressed by name.
// A Catalog never changes after New returns and is safe for concurrent use.
type Catalog struct {
	entries    map[string]Entry
	named      map[string]*template.Template
	positional map[string]*template.Positional
}

// New compiles every entry of f.
func New(f File) (*Catalog, error) {
	c := &Catalog{
		entries:    make(map[string]Entry, len(f.Templates)),
		named:      make(map[string]*template.Template),
		positional: make(map[string]*template.Positional),
	}
	for name, entry := range f.Templates {
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrName)
		}
		if entry.Pattern == "" {
			return nil, fmt.Errorf("template %q: %w", name, template.ErrEmpty)
		}
		c.entries[name] = entry
		if entry.Positional {
			c.positional[name] = template.CompilePositional(entry.Pattern)
		} else {
			c.named[name] = template.Compile(entry.Pattern)
		}
	}
	return c, nil
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Names returns the template names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the entry for name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Template returns the compiled named template for name.
func (c *Catalog) Template(name string) (*template.Template, bool) {
	t, ok := c.named[name]
	return t, ok
}

// Positional returns the compiled positional template for name.
func (c *Catalog) Positional(name string) (*template.Positional, bool) {
	p, ok := c.positional[name]
	return p, ok
}

// Render executes the named template called name with vars.
// Missing variables stay as literal placeholders.
func (c *Catalog) Render(name string, vars map[string]string) (string, error) {
	t, err := c.namedTemplate(name)
	if err != nil {
		return "", err
	}
	return t.Execute(vars), nil
}

// RenderStrict is Render, but fails with template.ErrVariable when a
// placeholder has no value.
func (c *Catalog) RenderStrict(name string, vars map[string]string) (string, error) {
	t, err := c.namedTemplate(name)
	if err != nil {
		return "", err
	}
	out, err := t.ExecuteStrict(vars)
	if err != nil {
		return "", fmt.Errorf("render %q: %w", name, err)
	}
	return out, nil
}

// RenderPositional executes the positional template called name with values.
func (c *Catalog) RenderPositional(name string, values []string) (string, error) {
	p, ok := c.positional[name]
	if !ok {
		if _, exists := c.entries[name]; exists {
			return "", fmt.Errorf("%w: %q is a named template", ErrKind, name)
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return p.Execute(values), nil
}

func (c *Catalog) namedTemplate(name string) (*template.Template, error) {
	t, ok := c.named[name]
	if !ok {
		if _, exists := c.entries[name]; exists {
			return nil, fmt.Errorf("%w: %q is a positional template", ErrKind, name)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return t, nil
}
