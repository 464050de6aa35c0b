package script

import (
	"errors"
	"fmt"
)

// Sentinel errors for error classification.
var (
	// ErrCompile indicates a syntax error in a script.
	ErrCompile = errors.New("compile error")

	// ErrRuntime indicates a failure while a script was running, a panic
	// included.
	ErrRuntime = errors.New("runtime error")

	// ErrNoScript indicates a lookup of a script id that is not in the document.
	ErrNoScript = errors.New("no such script")
)

// ErrorKind tells compile failures from runtime failures.
type ErrorKind int

const (
	CompileError ErrorKind = iota
	RuntimeError
)

func (k ErrorKind) String() string {
	if k == CompileError {
		return "CompileError"
	}
	return "RuntimeError"
}

// Error is the failure of one script.
type Error struct {
	Kind ErrorKind

	// Script is the label of the failing script.
	Script string

	// Line is the 1-based line in the script source. Zero indicates the
	// line is unknown.
	Line int

	// Message is the interpreter's description of the failure.
	Message string

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d of %s: %s", e.Kind, e.Line, e.Script, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches ErrCompile or ErrRuntime according to the kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case CompileError:
		return target == ErrCompile
	default:
		return target == ErrRuntime
	}
}
