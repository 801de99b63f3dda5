// Package metadata records which todo list a journal database belongs to.
package metadata

import (
	"context"
)

const keyStoreID = "store_id"

type Repository interface {
	// StoreID returns "" when the database has not been bound yet.
	StoreID(ctx context.Context) (string, error)

	// BindStoreID stores id unless the database is already bound, and returns
	// the id the database is bound to afterwards.
	BindStoreID(ctx context.Context, id string) (string, error)
}
