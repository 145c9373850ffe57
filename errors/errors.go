package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseClassify Phase = "classify" // resolving a value to a buffer source
	PhaseCopy     Phase = "copy"     // reading bytes out of a buffer
	PhaseAllocate Phase = "allocate" // obtaining the destination sequence
	PhaseConfig   Phase = "config"   // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindDetached     Kind = "detached"
	KindAllocation   Kind = "allocation"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindUnsupported  Kind = "unsupported"
	KindInvalidInput Kind = "invalid_input"
	KindMisaligned   Kind = "misaligned"
	KindNilPointer   Kind = "nil_pointer"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Source string // buffer source variant, when known
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Source != "" {
		b.WriteString(" (")
		b.WriteString(e.Source)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. An empty Phase in the
// target matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return (t.Phase == "" || e.Phase == t.Phase) && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Source sets the buffer source variant name
func (b *Builder) Source(name string) *Builder {
	b.err.Source = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Sentinels for errors.Is checks where the phase does not matter.
var (
	ErrDetached    = &Error{Kind: KindDetached}
	ErrAllocation  = &Error{Kind: KindAllocation}
	ErrOutOfBounds = &Error{Kind: KindOutOfBounds}
	ErrUnsupported = &Error{Kind: KindUnsupported}
)

// Convenience constructors for common error patterns

// Detached creates a detached-buffer error
func Detached(phase Phase, source string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDetached,
		Source: source,
		Detail: "backing buffer is detached",
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, limit uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (limit %d)", size, limit),
		Value:  size,
	}
}

// OutOfBounds creates an out of bounds error for a byte window
func OutOfBounds(phase Phase, source string, offset, length, bufLen uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Source: source,
		Detail: fmt.Sprintf("window [%d, %d+%d) exceeds buffer length %d", offset, offset, length, bufLen),
		Value:  offset,
	}
}

// Misaligned creates an alignment error for typed views
func Misaligned(phase Phase, what string, value uint32, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMisaligned,
		Detail: fmt.Sprintf("%s %d is not a multiple of %d", what, value, align),
		Value:  value,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: what + " is nil",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
