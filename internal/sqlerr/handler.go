package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/deppfellow/products-api/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// Classify extracts the structured database error from err, if any.
//
// Returns nil when err does not originate from Postgres.
func Classify(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}
	return nil
}

// LogFields adds the classification of err to a log event.
//
// Driver errors get their SQLSTATE details; network and timeout failures
// are tagged so they stand apart from query bugs.
func LogFields(event *zerolog.Event, err error) *zerolog.Event {
	if sqlErr := Classify(err); sqlErr != nil {
		event = event.
			Str("sql_code", string(sqlErr.Code)).
			Str("sql_state", sqlErr.DatabaseCode).
			Str("sql_severity", string(sqlErr.Severity)).
			Str("sql_error_code", generateErrorCode(sqlErr.TableName, sqlErr.Code))
		if sqlErr.TableName != "" {
			event = event.Str("sql_table", sqlErr.TableName)
		}
		if sqlErr.ColumnName != "" {
			event = event.Str("sql_column", humanizeText(sqlErr.ColumnName))
		}
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			event = event.Str("sql_constraint_column", column)
		}
		return event
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		event = event.Str("sql_code", "timeout")
	case errors.Is(err, context.Canceled):
		event = event.Str("sql_code", "canceled")
	case errors.As(err, &netErr):
		event = event.Str("sql_code", string(ConnectionFailure))
	}
	return event
}

// HandleError converts a low-level storage error into an application error.
//
//   - *errs.HTTPError passes through unchanged.
//   - Anything else, Postgres errors included, becomes a generic 500.
//
// The original error must be logged by the caller before it is discarded.
func HandleError(err error) error {
	if err == nil {
		return nil
	}
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return errs.NewInternalServerError()
}

// generateErrorCode builds a <DOMAIN>_<ACTION> code such as
// PRODUCT_REQUIRED from the table and violation type.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepresentation:
		action = "INVALID"
	case NumericValueOutOfRange, StringDataRightTruncation:
		action = "OUT_OF_RANGE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// humanizeText converts "first_name" into "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var constraintKeyRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation infers the column from a constraint
// named unique_<table>_<column> or <table>_<column>_key.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := constraintKeyRe.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}
