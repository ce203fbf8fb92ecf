// Package postgres implements the store interfaces over PostgreSQL, accessed
// through database/sql with the pgx driver.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/andreluoliveira82/car-api/internal/store"
)

// PostgreSQL error codes.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// uniqueConstraintErrors maps unique-index constraint names from the schema
// to the sentinel errors callers match on. Races past the application-level
// existence checks land here and surface as conflicts instead of 500s.
var uniqueConstraintErrors = map[string]error{
	"users_username_key": store.ErrUsernameExists,
	"users_email_key":    store.ErrEmailExists,
	"brands_name_key":    store.ErrBrandNameExists,
	"cars_plate_key":     store.ErrPlateExists,
}

// mapError translates database errors into store sentinel errors, wrapping
// the original for debugging. notFound is the entity-specific error used for
// sql.ErrNoRows.
func mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", notFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			if sentinel, ok := uniqueConstraintErrors[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%w: %v", sentinel, err)
			}
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w (%s): %v", store.ErrReferenced, pgErr.ConstraintName, err)
		}
	}

	return err
}

// checkRowsAffected returns notFound when an UPDATE or DELETE touched no
// rows, which is how the absence of the target record manifests.
func checkRowsAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
