package record

import (
	"context"
)

type Repository interface {
	// Append adds rec to the end of the user's list for its category and
	// persists the store synchronously.
	Append(ctx context.Context, rec *Record) error
	// List returns the user's records for a category in insertion order.
	// An empty slice, not an error, when there are none.
	List(ctx context.Context, username string, category Category) ([]Record, error)
}
