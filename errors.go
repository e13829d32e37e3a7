package vecpdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for common generation failure conditions.
var (
	ErrNilDocument = errors.New("vecpdf: nil document")
)

// GenError represents an error that occurred during a specific generation
// operation. It wraps an underlying error and includes the operation name
// for context.
type GenError struct {
	Op  string // operation name, e.g. "RenderDocument", "ContentStream"
	Err error  // underlying error
}

func (e *GenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vecpdf.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("vecpdf.%s: unknown error", e.Op)
}

func (e *GenError) Unwrap() error {
	return e.Err
}

// newGenError creates a new GenError wrapping the given error with
// operation context.
func newGenError(op string, err error) *GenError {
	return &GenError{Op: op, Err: err}
}
