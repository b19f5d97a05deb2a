package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/newsboard/newsboard-api/internal/store"
)

// PostgreSQL error codes
const (
	// invalidTextRepresentationCode is raised when a value cannot be parsed
	// as the column's type (e.g. "abc" for an INT).
	invalidTextRepresentationCode = "22P02"

	// numericValueOutOfRangeCode is raised when a number overflows its column type.
	numericValueOutOfRangeCode = "22003"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// invalidRowCountInLimitCode and invalidRowCountInOffsetCode are raised
	// for negative LIMIT and OFFSET values.
	invalidRowCountInLimitCode  = "2201W"
	invalidRowCountInOffsetCode = "2201X"
)

// MapError maps a database error to the matching store error. The original
// error stays in the chain so callers can still inspect the *pgconn.PgError.
// Errors without a mapping are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepresentationCode, numericValueOutOfRangeCode, notNullViolationCode,
			invalidRowCountInLimitCode, invalidRowCountInOffsetCode:
			return fmt.Errorf("%w: %w", store.ErrInvalidInput, err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %w",
				store.ErrInvalidReference,
				pgErr.ConstraintName,
				err,
			)
		case uniqueViolationCode:
			return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
		}
	}

	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// CheckRowsAffected returns notFound when a DELETE or UPDATE touched no rows.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
