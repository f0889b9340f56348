package schema

import (
	"golang.org/x/xerrors"
)

// AnalysisError is a user-facing validation failure, formatted per
// spec.md §7 ("Analyzer failures are user-facing messages formatted
// `[context]: description`") and §4.3 ("Every error carries a context
// prefix `[<qualified identifier>]: <message>`").
type AnalysisError struct {
	Context string
	Message string
	cause   error
}

func (e *AnalysisError) Error() string {
	if e.cause != nil {
		return "[" + e.Context + "]: " + e.cause.Error()
	}
	return "[" + e.Context + "]: " + e.Message
}

// Unwrap exposes an underlying cause, when one exists, so callers can
// use errors.Is/errors.As (or xerrors.Is/xerrors.As) through an
// AnalysisError the way they would through any other wrapped error.
func (e *AnalysisError) Unwrap() error { return e.cause }

func newError(context, message string) *AnalysisError {
	return &AnalysisError{Context: context, Message: message}
}

func wrapError(context, message string, cause error) *AnalysisError {
	return &AnalysisError{
		Context: context,
		Message: message,
		cause:   xerrors.Errorf("%s: %w", message, cause),
	}
}

// Warning is a non-fatal diagnostic: something worth a reader's
// attention that does not by itself invalidate the schema. The analyzer
// emits one kind: an enum member written without an explicit value,
// which is auto-assigned the previous value plus one.
type Warning struct {
	Context string
	Message string
}

func (w *Warning) String() string {
	return "[" + w.Context + "]: " + w.Message
}
