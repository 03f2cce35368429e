// Package errz defines the structured diagnostics produced by the printing
// engine. Rendering either fully succeeds or aborts with one of these
// errors; layout decisions such as a single-line attempt overflowing the
// column budget are ordinary control flow and never surface here.
package errz

import "fmt"

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrUnhandledNode indicates a node shape no renderer has a case for.
	// The renderer set is supposed to be exhaustive over the grammar, so
	// this is a programming error, not a user-facing condition.
	ErrUnhandledNode ErrorKind = iota
	// ErrStyle indicates an invalid style definition.
	ErrStyle
	// ErrConfig indicates an invalid printer configuration.
	ErrConfig
	// ErrDecode indicates a malformed AST interchange document.
	ErrDecode
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnhandledNode:
		return "unhandled node"
	case ErrStyle:
		return "style error"
	case ErrConfig:
		return "config error"
	case ErrDecode:
		return "decode error"
	default:
		return "error"
	}
}

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// RenderError is a rich error type with a category and an optional source
// location for actionable diagnostics.
type RenderError struct {
	Message  string
	Kind     ErrorKind
	Location SourceLocation
	Cause    error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Location.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind.String(), e.Message, e.Location.String())
}

// Unwrap returns the underlying cause of the error.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// IsFatal returns whether the error is considered fatal (unrecoverable).
// Every render error aborts the render; a partial or garbage output is
// never produced.
func (e *RenderError) IsFatal() bool {
	return true
}

// New creates a RenderError with the given kind and formatted message.
func New(kind ErrorKind, format string, args ...any) *RenderError {
	return &RenderError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithLocation returns a copy of the error annotated with a source location.
func (e *RenderError) WithLocation(loc SourceLocation) *RenderError {
	clone := *e
	clone.Location = loc
	return &clone
}
