// Package errors provides structured error types for the code generator.
//
// Errors are categorized by Phase (which lowering stage raised them) and Kind
// (the error category). Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseLower, errors.KindNotImplemented).
//		Path("contract", "do-thing").
//		Detail("buff type is not supported").
//		Build()
//
// Or use the convenience constructors for common patterns:
//
//	err := errors.NotImplemented(errors.PhaseLower, path, "tuple type")
//	err := errors.NotFound(errors.PhaseAssemble, "function", "add-int")
//
// All errors implement the standard error interface and support errors.Is.
package errors
