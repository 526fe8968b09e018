package apperror

import "fmt"

// AppError is the error shape the HTTP layer knows how to render: a stable
// machine-readable code, a message safe to show the caller, and the status to
// answer with. An internal cause may ride along; it reaches logs through
// Error() but never the response body.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
