package element

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed input trees.
var (
	// ErrMissingType reports an element whose type tag is empty.
	ErrMissingType = errors.New("element: missing type")
	// ErrEmptyPath reports a path element with no path data.
	ErrEmptyPath = errors.New("element: empty path data")
)

// UnsupportedError reports an element type the emitter does not implement.
type UnsupportedError struct {
	Type string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("element: unimplemented element type %q", e.Type)
}

// ValidationError reports an attribute that failed a required-field,
// type or numeric-range check. Field names the offending attribute,
// Expected describes the constraint and Received the value that broke it.
type ValidationError struct {
	Elem     string
	Field    string
	Expected string
	Received interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("element: %s.%s: expected %s, got %v", e.Elem, e.Field, e.Expected, e.Received)
}

// ColorError reports a color value that is neither a supported name nor a
// six-digit hex string. Invalid colors fail validation rather than
// degrading silently to black.
type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("element: unresolvable color %q", e.Value)
}
