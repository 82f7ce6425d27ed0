// Package errors provides structured error types for the ui-loader library.
//
// Errors are categorized by Phase (where in the UI pipeline the error
// occurred) and Kind (error category). The Error type includes rich context:
// the element path inside a description, the resource name being resolved,
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidData).
//		Path("UI", "Container", "Image").
//		Resource("my_plugin_ui.xml").
//		Detail("attribute %q is not a color", "background").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseResolve, "description", "my_plugin_ui.xml")
//	err := errors.VersionMismatch("2.0.0", "1.x")
//
// All errors implement the standard error interface and support errors.Is/As;
// two *Error values match under errors.Is when Phase and Kind agree.
package errors
