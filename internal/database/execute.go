package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// StorageError is any failure coming out of the storage layer:
// acquire timeout, lost connection, bad statement, constraint
// violation, or a value Postgres could not coerce.
type StorageError struct {
	Statement string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Execute runs one statement with positionally bound args and collects
// every returned row into T by column name.
//
// Collecting closes the rows, which hands the connection back to the
// pool whether the statement succeeded or not. The returned slice is
// never nil on success.
func Execute[T any](ctx context.Context, q Querier, sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, &StorageError{Statement: sql, Err: err}
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, &StorageError{Statement: sql, Err: err}
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}
