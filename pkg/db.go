package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgUniqueViolation = "23505"

// PgErrorCode returns the SQLSTATE code of a wrapped postgres error, or "".
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolationError reports whether err comes from a unique constraint,
// e.g. an email that is already registered.
func IsUniqueViolationError(err error) bool {
	return PgErrorCode(err) == pgUniqueViolation
}
