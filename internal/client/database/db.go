// Package database opens the local journal database, applies the embedded
// goose migrations and exposes the repositories as a store.Journal.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/client/migrations"
	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/events"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/dbx"
	"github.com/dmitrijs2005/gophtodo/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	DB       *sql.DB
	Events   events.Repository
	Metadata metadata.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// InitDatabase opens dsn with the pure-Go SQLite driver, migrates it and binds
// it to storeID. A database created for another store id is rejected with
// common.ErrStoreMismatch.
func InitDatabase(ctx context.Context, dsn string, storeID string) (*Repositories, error) {
	if path, ok := filex.SQLiteFilePath(dsn); ok {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("prepare database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection also keeps ":memory:" shared.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	repos := &Repositories{
		DB:       db,
		Events:   events.NewSQLiteRepository(db),
		Metadata: metadata.NewSQLiteRepository(db),
	}

	if err := repos.bindStore(ctx, storeID); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repos, nil
}

func (r *Repositories) bindStore(ctx context.Context, storeID string) error {
	bound, err := r.Metadata.BindStoreID(ctx, storeID)
	if err != nil {
		return err
	}
	if bound != storeID {
		return fmt.Errorf("%w: have %q, want %q", common.ErrStoreMismatch, bound, storeID)
	}
	return nil
}

// Load implements store.Journal.
func (r *Repositories) Load(ctx context.Context) ([]models.EventRecord, error) {
	return r.Events.GetAll(ctx)
}

// Append implements store.Journal; the batch is written in one transaction.
func (r *Repositories) Append(ctx context.Context, records []*models.EventRecord) error {
	return dbx.WithTx(ctx, r.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return events.NewSQLiteRepository(tx).Append(ctx, records...)
	})
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
