package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mhalvorsen/taskdesk/internal/store"
)

// PostgreSQL error codes
const (
	// stringTruncationCode is the PostgreSQL error code for values that
	// exceed a varchar column's declared length.
	stringTruncationCode = "22001"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve the driver's cause text, which
// the API layer surfaces to clients in server-error responses.
// This function should be used in all database operations to ensure
// consistent error handling.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	// Driver and pool failures before a statement could run.
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("%w: %v", store.ErrConnection, err)
	}

	// Handle PostgreSQL-specific errors
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 (connection exception) and class 28 (invalid
		// authorization) mean the store was unreachable or rejected the
		// credentials, not that a statement failed.
		if class := errClass(pgErr.Code); class == "08" || class == "28" {
			return fmt.Errorf("%w: %v", store.ErrConnection, err)
		}

		switch pgErr.Code {
		case stringTruncationCode:
			return fmt.Errorf(
				"%w: value too long for column: %v",
				store.ErrInvalidEntity,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		}
		// Any other reported Postgres error means the statement reached the
		// server, so it is an execution failure rather than a dial failure.
		return fmt.Errorf("%w: %v", store.ErrStatement, err)
	}

	// Everything else (dial errors, closed pools) never produced a
	// server-side error code.
	return fmt.Errorf("%w: %v", store.ErrConnection, err)
}

// errClass returns the two-character SQLSTATE class of a Postgres error code.
func errClass(code string) string {
	if len(code) < 2 {
		return code
	}
	return code[:2]
}
