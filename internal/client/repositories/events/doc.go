// Package events persists committed domain events in the local SQLite journal.
//
// The journal is append-only: rows are never updated or deleted, and seq is
// assigned by SQLite on insert. Replaying GetAll in seq order through the
// store's reducer rebuilds the todo list and UI state.
//
// Typical Usage
//
//	repo := events.NewSQLiteRepository(db)
//	_ = repo.Append(ctx, rec1, rec2)
//	all, _ := repo.GetAll(ctx)
//	tail, _ := repo.GetAfter(ctx, lastSeq)
package events
