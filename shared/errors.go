package shared

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrWriteFailure = errors.New("write failure")
	ErrUsage        = errors.New("usage error")
)

const (
	MsgUnseparatedWord = "start of word should be separated by something"
	MsgInvalidChar     = "error: invalid character: `%s'"
)

// StructuralError reports malformed bit text. The position of the offending
// character is kept by the parser state, not by the error.
type StructuralError struct {
	Message string
}

func NewStructuralError(format string, args ...any) *StructuralError {
	return &StructuralError{Message: fmt.Sprintf(format, args...)}
}

func (err *StructuralError) Error() string {
	return err.Message
}

// SystemError reports an environment failure (open, read, write), blamed on
// Label when one is known.
type SystemError struct {
	Label string
	Err   error
}

func (err *SystemError) Error() string {
	if err.Label == "" {
		return err.Description()
	}
	return fmt.Sprintf("%v: %v", err.Label, err.Description())
}

// Description returns the platform description of the underlying failure,
// without the path the os package prepends.
func (err *SystemError) Description() string {
	if errors.Is(err.Err, ErrWriteFailure) {
		return ErrWriteFailure.Error()
	}
	var pathErr *fs.PathError
	if errors.As(err.Err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Err.Error()
}

func (err *SystemError) Unwrap() error {
	return err.Err
}

// WriteFailure wraps err as a write failure blamed on label.
func WriteFailure(label string, err error) *SystemError {
	return &SystemError{Label: label, Err: fmt.Errorf("%w: %w", ErrWriteFailure, err)}
}

// ExitCode maps a run error to the process exit status. Structural errors and
// system errors must stay distinguishable, callers branch on them.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var structural *StructuralError
	if errors.As(err, &structural) {
		return ExitCroak
	}
	return ExitDeath
}
