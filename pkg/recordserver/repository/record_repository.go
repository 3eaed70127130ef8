package repository

import (
	"context"
	"errors"

	"farmdash/entities"
)

// ErrNotFound is returned when no row has the requested table and id.
var ErrNotFound = errors.New("record not found")

type RecordRepository interface {
	// List returns every record of table ordered by id.
	List(ctx context.Context, table string) ([]entities.StoredRecord, error)
	FindByID(ctx context.Context, table string, id int) (*entities.StoredRecord, error)
	// Create stores fields under the next free id of table.
	Create(ctx context.Context, table string, fields map[string]any) (*entities.StoredRecord, error)
	// Update replaces every field of an existing record.
	Update(ctx context.Context, table string, id int, fields map[string]any) (*entities.StoredRecord, error)
	Delete(ctx context.Context, table string, id int) error
	// Seed inserts records with their own ids when table is empty. It reports
	// how many rows were written.
	Seed(ctx context.Context, table string, records []entities.StoredRecord) (int, error)
	Count(ctx context.Context, table string) (int64, error)
}
