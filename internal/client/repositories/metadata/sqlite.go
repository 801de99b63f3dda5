package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/dbx"
)

// SQLiteRepository implements Repository over the metadata table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) StoreID(ctx context.Context) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, keyStoreID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read store id: %w", err)
	}
	return id, nil
}

// BindStoreID never overwrites an existing binding; the first writer wins.
func (r *SQLiteRepository) BindStoreID(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", errors.New("store id must not be empty")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO metadata (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`,
		keyStoreID, id)
	if err != nil {
		return "", fmt.Errorf("failed to bind store id %q: %w", id, err)
	}

	return r.StoreID(ctx)
}
