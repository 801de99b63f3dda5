package events

import (
	"context"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// Repository describes the journal operations used by the store.
type Repository interface {
	// Append inserts records in order and sets their Seq.
	Append(ctx context.Context, records ...*models.EventRecord) error

	// GetAll returns every record in seq order.
	GetAll(ctx context.Context) ([]models.EventRecord, error)

	// GetAfter returns records with seq greater than seq, in seq order.
	GetAfter(ctx context.Context, seq int64) ([]models.EventRecord, error)
}
