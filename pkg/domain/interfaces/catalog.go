package interfaces

import (
	"context"

	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

type CatalogRepository interface {
	Versioned

	// List retrieves all entries in catalog order
	List(ctx context.Context) ([]*model.CatalogEntry, error)

	// Get retrieves an entry by ID
	Get(ctx context.Context, id types.EntryID) (*model.CatalogEntry, error)

	// Put replaces an existing entry in place, or inserts a new one keeping
	// the catalog ordered by level
	Put(ctx context.Context, entry *model.CatalogEntry) (*model.CatalogEntry, error)

	// Delete deletes an entry by ID
	Delete(ctx context.Context, id types.EntryID) error

	// Replace discards the whole catalog and stores entries as given
	Replace(ctx context.Context, entries []*model.CatalogEntry) error
}
