package errs

import "strings"

// FieldError represents a field-level input error.
//
//	{ "field": "id", "error": "must be a positive integer" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Response is the body written for every failed request.
type Response struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors,omitempty"`
}

// HTTPError is the main custom error type for API responses.
//
// Message is what the client sees. Code is for logs and metrics.
type HTTPError struct {
	Code    string
	Message string
	Status  int
	Errors  []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// Response renders the client-facing body.
func (e *HTTPError) Response() Response {
	return Response{Error: e.Message, Errors: e.Errors}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
