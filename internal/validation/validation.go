package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/products-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// Validatable is implemented by request payload types that know how to
// validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a validation issue that cannot be expressed
// with validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// MalformedBodyMessage is the client message for a JSON body that does not
// parse.
const MalformedBodyMessage = "Malformed JSON body"

var pathBinder = &echo.DefaultBinder{}

// BindAndValidate binds path parameters and the request body into payload
// and validates it.
//
// Body binding is lenient: a body that is empty, not declared as JSON, or
// a JSON array leaves payload untouched. Only JSON that does not parse,
// or a bare JSON scalar, is rejected with a 400.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := pathBinder.BindPathParams(c, payload); err != nil {
		return bindError(err)
	}

	if err := bindBody(c.Request(), payload); err != nil {
		return err
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

func bindBody(r *http.Request, payload any) error {
	if r.Body == nil || !isJSON(r.Header.Get(echo.HeaderContentType)) {
		return nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError(MalformedBodyMessage, nil, nil)
	}

	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return nil
	}
	if !json.Valid(data) {
		return errs.NewBadRequestError(MalformedBodyMessage, nil, nil)
	}

	switch data[0] {
	case '{':
		if err := json.Unmarshal(data, payload); err != nil {
			return errs.NewBadRequestError(MalformedBodyMessage, nil, nil)
		}
		return nil
	case '[':
		return nil
	default:
		return errs.NewBadRequestError(MalformedBodyMessage, nil, nil)
	}
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == echo.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json")
}

func bindError(err error) error {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return errs.NewBadRequestError("Invalid request body", nil, nil)
	}

	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok && m != "" {
		message = m
	} else if he.Message != nil {
		message = fmt.Sprint(he.Message)
	}

	if he.Code == http.StatusBadRequest || he.Code == 0 {
		return errs.NewBadRequestError(message, nil, nil)
	}
	return errs.New(he.Code, message)
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		for _, ce := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Error: err.Error()}}
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		case "numeric":
			msg = "must be numeric"

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
