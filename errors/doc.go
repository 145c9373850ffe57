// Package errors provides structured error types for the webidl-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the buffer source variant, a detail message and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCopy, errors.KindOutOfBounds).
//		Source("typed-view").
//		Detail("window exceeds buffer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Detached(errors.PhaseCopy, "data-view")
//	err := errors.AllocationFailed(errors.PhaseAllocate, 1<<20, 1<<16)
//
// All errors implement the standard error interface and support errors.Is/As.
// The package-level sentinels (ErrDetached, ErrAllocation, ...) match any phase.
package errors
