package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which operation produced the error
type Phase string

const (
	PhaseConstruct Phase = "construct" // handle construction
	PhaseRegister  Phase = "register"  // handle registration
	PhaseLookup    Phase = "lookup"    // handle lookup
	PhaseClaim     Phase = "claim"     // resource claiming
	PhaseRelease   Phase = "release"   // resource release
	PhaseConfig    Phase = "config"    // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindNilBuffer      Kind = "nil_buffer"
	KindDuplicate      Kind = "duplicate"
	KindNotFound       Kind = "not_found"
	KindAlreadyClaimed Kind = "already_claimed"
	KindNotClaimed     Kind = "not_claimed"
	KindInvalidConfig  Kind = "invalid_config"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteString(" resource ")
		b.WriteString(fmt.Sprintf("%q", e.Resource))
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

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// NilBuffer creates a construction error for a missing buffer reference.
// The buffer argument names the missing side ("command" or "feedback").
func NilBuffer(buffer string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindNilBuffer,
		Detail: fmt.Sprintf("%s buffer is nil; provide both command and feedback buffers during construction", buffer),
	}
}

// Duplicate creates a registration error for a name that already has a handle
func Duplicate(name string) *Error {
	return &Error{
		Phase:    PhaseRegister,
		Kind:     KindDuplicate,
		Resource: name,
		Detail:   "a handle is already registered under this name",
	}
}

// NotFound creates a lookup error for an unregistered name
func NotFound(name string) *Error {
	return &Error{
		Phase:    PhaseLookup,
		Kind:     KindNotFound,
		Resource: name,
		Detail:   "no handle registered under this name",
	}
}

// AlreadyClaimed creates a claim error for a resource owned by someone else
func AlreadyClaimed(name string) *Error {
	return &Error{
		Phase:    PhaseClaim,
		Kind:     KindAlreadyClaimed,
		Resource: name,
		Detail:   "resource is already claimed",
	}
}

// NotClaimed creates a release error for a resource that has no owner
func NotClaimed(name string) *Error {
	return &Error{
		Phase:    PhaseRelease,
		Kind:     KindNotClaimed,
		Resource: name,
		Detail:   "resource is not claimed",
	}
}

// InvalidConfig creates a configuration error
func InvalidConfig(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidConfig,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
