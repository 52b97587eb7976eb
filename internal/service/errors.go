package service

import (
	"errors"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"

	"github.com/jackc/pgx/v5"
)

// notFoundIfNoRows maps a pgx "no rows" result to a typed NotFound
// carrying the reference that failed to resolve.
func notFoundIfNoRows(err error, resource, field string, value any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource, field, value)
	}
	return err
}
