// Package store holds the record store adapter contract shared by every
// entity, the field codecs that translate between UI-shaped values and backend
// records, and the remote implementation that talks the record protocol.
package store

import (
	"context"
	"errors"
	"fmt"

	"farmdash/pkg/recordstore"
)

var (
	// ErrNotFound means the requested identity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation means a write was rejected, fully or partially.
	ErrValidation = errors.New("validation failed")
	// ErrTransport means the backend call itself could not complete.
	ErrTransport = errors.New("transport failure")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Adapter is the CRUD gateway for one entity type. T is the entity, F the
// form used to write it.
type Adapter[T, F any] interface {
	// List returns every record. Depending on configuration, read failures
	// come back as an empty list rather than an error.
	List(ctx context.Context) ([]T, error)
	// Query is List with server-side filtering, ordering and paging.
	Query(ctx context.Context, p recordstore.FetchParams) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, form F) (T, error)
	// Update overwrites the whole record; every field must be supplied.
	Update(ctx context.Context, id int, form F) (T, error)
	Delete(ctx context.Context, id int) (bool, error)
}
