package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

type catalogRepository struct {
	mu      sync.RWMutex
	entries []*model.CatalogEntry
	index   map[types.EntryID]int
	version uint64
}

func newCatalogRepository() *catalogRepository {
	return &catalogRepository{
		index: make(map[types.EntryID]int),
	}
}

func (r *catalogRepository) reindex() {
	r.index = make(map[types.EntryID]int, len(r.entries))
	for i, e := range r.entries {
		r.index[e.ID] = i
	}
}

func (r *catalogRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *catalogRepository) List(ctx context.Context) ([]*model.CatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*model.CatalogEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e.Copy())
	}
	return entries, nil
}

func (r *catalogRepository) Get(ctx context.Context, id types.EntryID) (*model.CatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "catalog entry not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return r.entries[i].Copy(), nil
}

func (r *catalogRepository) Put(ctx context.Context, entry *model.CatalogEntry) (*model.CatalogEntry, error) {
	if entry.ID == "" {
		return nil, goerr.New("catalog entry ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := entry.Copy()
	if i, exists := r.index[entry.ID]; exists {
		r.entries[i] = stored
	} else {
		r.entries = append(r.entries, stored)
		sort.SliceStable(r.entries, func(i, j int) bool {
			return r.entries[i].Level < r.entries[j].Level
		})
		r.reindex()
	}
	r.version++

	return stored.Copy(), nil
}

func (r *catalogRepository) Delete(ctx context.Context, id types.EntryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[id]
	if !exists {
		return goerr.Wrap(ErrNotFound, "catalog entry not found", goerr.V("id", id))
	}

	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	r.reindex()
	r.version++
	return nil
}

func (r *catalogRepository) Replace(ctx context.Context, entries []*model.CatalogEntry) error {
	seen := make(map[types.EntryID]bool, len(entries))
	copied := make([]*model.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return goerr.New("catalog entry ID is required", goerr.V("name", e.Name))
		}
		if seen[e.ID] {
			return goerr.New("duplicate catalog entry ID", goerr.V("id", e.ID))
		}
		seen[e.ID] = true
		copied = append(copied, e.Copy())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = copied
	r.reindex()
	r.version++
	return nil
}
