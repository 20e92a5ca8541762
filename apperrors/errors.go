package apperrors

import "errors"

// Kind classifies a business failure so controllers can map it to an HTTP status.
type Kind string

const (
	KindNotFound        Kind = "NotFoundError"
	KindConflict        Kind = "ConflictError"
	KindPaymentRequired Kind = "PaymentRequiredError"
)

// Error is a classified business failure. Storage and other system errors are
// never wrapped in this type; they propagate as plain errors.
type Error struct {
	Kind    Kind   `json:"name"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports that a referenced record does not exist.
func NotFound() *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: "No result for this search!",
	}
}

// Conflict reports a business-rule rejection with a human-readable reason.
func Conflict(reason string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: reason,
	}
}

// PaymentRequired reports that the user's ticket is missing or not yet paid.
func PaymentRequired() *Error {
	return &Error{
		Kind:    KindPaymentRequired,
		Message: "Payment required for proceeding!",
	}
}

// IsKind reports whether err is a business failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
