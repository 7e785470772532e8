// Package errors provides structured error types for the atom-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: element path, found/expected type names,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
//		Path("tuple", "1").
//		Got("atom#Float").
//		Want("atom#Int").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BufferOverflow(errors.PhaseWrite, cursor, n, capacity)
//	err := errors.OutOfBounds(errors.PhaseRead, path, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
// errors.Is matches on Phase and Kind; IsKind matches on Kind alone.
package errors
