package analyzer

import "fmt"

// Kind is the machine-readable error category surfaced to callers.
type Kind string

const (
	KindInvalidInput         Kind = "invalid_input"
	KindExtraction           Kind = "extraction"
	KindEmbeddingUnavailable Kind = "embedding_unavailable"
	KindInternal             Kind = "internal"
)

// Error is the single structured error type a caller of Analyze sees.
// A run either yields a complete report or one of these, never both.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func invalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func extractionErr(msg string, err error) *Error {
	return &Error{Kind: KindExtraction, Message: msg, Err: err}
}

func internalErr(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf extracts the category from any error returned by this package,
// defaulting to the internal kind for foreign errors.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}
