package errs

import (
	"net/http"
)

func codeFor(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// New creates an HTTPError for any status, using the status text as code.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    codeFor(status),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil; errors carries
// optional per-field details.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	err := New(http.StatusBadRequest, message)
	if code != nil {
		err.Code = *code
	}
	err.Errors = errors
	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	err := New(http.StatusNotFound, message)
	if code != nil {
		err.Code = *code
	}
	return err
}

// NewTooManyRequestsError creates a 429 HTTPError.
func NewTooManyRequestsError() *HTTPError {
	return New(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is always the generic status text; the real cause only
// goes to the logs.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
