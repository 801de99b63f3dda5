package events

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Append inserts each record and stores the assigned seq back into it.
// Run it inside dbx.WithTx to make a batch atomic.
func (r *SQLiteRepository) Append(ctx context.Context, records ...*models.EventRecord) error {
	query := `INSERT INTO events (name, payload, committed_at) VALUES (?, ?, ?)`
	for _, rec := range records {
		res, err := r.db.ExecContext(ctx, query, rec.Name, rec.Payload, rec.CommittedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to append event %s: %w", rec.Name, err)
		}
		seq, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get event seq: %w", err)
		}
		rec.Seq = seq
	}
	return nil
}

// GetAll returns the whole journal.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.EventRecord, error) {
	return r.GetAfter(ctx, 0)
}

// GetAfter returns the journal tail following seq.
func (r *SQLiteRepository) GetAfter(ctx context.Context, seq int64) ([]models.EventRecord, error) {
	query := `SELECT seq, name, payload, committed_at FROM events WHERE seq > ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, seq)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	var result []models.EventRecord
	for rows.Next() {
		var item models.EventRecord
		if err := rows.Scan(&item.Seq, &item.Name, &item.Payload, &item.CommittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}
	return result, nil
}
