// Package errors provides structured error types for the traject library.
//
// Errors are categorized by Phase (which operation failed) and Kind (error
// category). Handle construction with a missing buffer reports
// (PhaseConstruct, KindNilBuffer); claiming an already-owned resource reports
// (PhaseClaim, KindAlreadyClaimed).
//
// Use the convenience constructors for common patterns:
//
//	err := errors.NilBuffer("feedback")
//	err := errors.AlreadyClaimed("shoulder_pan")
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree,
// so callers can test for a category without tracking sentinel values:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseClaim, Kind: errors.KindAlreadyClaimed}) {
//	    // group claim collided with an existing owner
//	}
package errors
