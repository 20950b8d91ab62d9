package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"campaignadmin/internal/interfaces"
)

// invalidTextRepresentation is raised when a parameter cannot be cast, e.g. a
// malformed uuid.
const invalidTextRepresentation = "22P02"

// checkViolation is raised by table CHECK constraints, e.g. an end date
// moved before the stored start date.
const checkViolation = "23514"

// storeError translates driver errors into the shared taxonomy.
func storeError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, interfaces.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case invalidTextRepresentation, checkViolation:
			return interfaces.InvalidArgument("%s: %s", op, pqErr.Message)
		}
	}

	return interfaces.Unavailable(op, err)
}
