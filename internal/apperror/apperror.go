package apperror

import "fmt"

// Kind classifies an application failure for HTTP status mapping.
type Kind int

const (
	// KindValidation covers malformed input and business-rule violations.
	KindValidation Kind = iota
	// KindNotFound means a referenced entity does not exist.
	KindNotFound
	// KindStorage is an unexpected persistence failure. Its detail is
	// logged server-side and never returned to clients.
	KindStorage
)

// Error is a typed application failure raised at the first violated
// precondition of an operation.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, set for storage failures.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a validation failure.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Validationf builds a validation failure with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a not-found failure.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Storage wraps an unexpected persistence failure.
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}
