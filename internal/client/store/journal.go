package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// Journal is the durable log behind a Store.
type Journal interface {
	// Load returns every record in commit order.
	Load(ctx context.Context) ([]models.EventRecord, error)

	// Append records a batch atomically and assigns Seq to each record.
	Append(ctx context.Context, records []*models.EventRecord) error
}

// MemoryJournal keeps records in process memory. It is used by tests and by
// ephemeral runs that need no persistence.
type MemoryJournal struct {
	mu      sync.Mutex
	records []models.EventRecord
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (j *MemoryJournal) Load(ctx context.Context) ([]models.EventRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]models.EventRecord, len(j.records))
	copy(out, j.records)
	return out, nil
}

func (j *MemoryJournal) Append(ctx context.Context, records []*models.EventRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, rec := range records {
		rec.Seq = int64(len(j.records) + 1)
		j.records = append(j.records, *rec)
	}
	return nil
}
