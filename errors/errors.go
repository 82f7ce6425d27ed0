package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the UI pipeline the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // description/asset name resolution
	PhaseParse   Phase = "parse"   // XML description parsing
	PhaseBuild   Phase = "build"   // widget tree construction
	PhaseLayout  Phase = "layout"  // geometry computation
	PhaseAssets  Phase = "assets"  // resource table access
	PhaseShell   Phase = "shell"   // editor shell lifecycle
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidData     Kind = "invalid_data"
	KindInvalidInput    Kind = "invalid_input"
	KindUnsupported     Kind = "unsupported"
	KindVersionMismatch Kind = "version_mismatch"
	KindDecode          Kind = "decode"
	KindNotInitialized  Kind = "not_initialized"
	KindClosed          Kind = "closed"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string   // resource name being resolved, if any
	Detail   string
	Path     []string // element path within a description, e.g. UI.Container.Label
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Resource != "" {
		b.WriteString(" in ")
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

// Is reports whether target matches this error by phase and kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
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

// Path sets the element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Resource sets the resource name
func (b *Builder) Resource(name string) *Builder {
	b.err.Resource = name
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

// Convenience constructors for common error patterns

// NotFound creates a not-found error for a named resource
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindNotFound,
		Resource: name,
		Detail:   fmt.Sprintf("%s not found", what),
	}
}

// ParseFailed creates a description parsing error
func ParseFailed(name string, cause error) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindInvalidData,
		Resource: name,
		Detail:   "parse description",
		Cause:    cause,
	}
}

// InvalidData creates an invalid data error at an element path
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
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

// Unsupported creates an unsupported element/attribute error
func Unsupported(phase Phase, path []string, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Path:   path,
		Detail: what,
	}
}

// VersionMismatch creates a schema version error
func VersionMismatch(got, supported string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindVersionMismatch,
		Detail: fmt.Sprintf("description version %s not supported (library supports %s)", got, supported),
	}
}

// DecodeFailed creates an asset decoding error
func DecodeFailed(name string, cause error) *Error {
	return &Error{
		Phase:    PhaseAssets,
		Kind:     KindDecode,
		Resource: name,
		Detail:   "decode image",
		Cause:    cause,
	}
}

// NotInitialized creates a not-initialized error for a missing component
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Closed creates an error for operations on a closed object
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
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
