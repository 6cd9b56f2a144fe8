package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrEmpty is returned when a pattern is required but empty.
	ErrEmpty = errors.New("template is empty")

	// ErrVariable is returned by strict execution when a placeholder has
	// no value.
	ErrVariable = errors.New("template variable missing")
)
