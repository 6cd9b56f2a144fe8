package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrUnknownTemplate is returned when no template has the requested name.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrKind is returned when a named template is rendered with positional
	// values or the other way around.
	ErrKind = errors.New("template kind mismatch")

	// ErrFormat is returned when a catalog file has an unsupported extension
	// or format.
	ErrFormat = errors.New("unsupported catalog format")

	// ErrName is returned for an empty template name.
	ErrName = errors.New("invalid template name")
)
