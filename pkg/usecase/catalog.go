package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/domain/interfaces"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
	"github.com/secmon-lab/roadmap/pkg/utils/logging"
)

type CatalogUseCase struct {
	repo interfaces.Repository
}

func NewCatalogUseCase(repo interfaces.Repository) *CatalogUseCase {
	return &CatalogUseCase{
		repo: repo,
	}
}

func (uc *CatalogUseCase) ListEntries(ctx context.Context) ([]*model.CatalogEntry, error) {
	entries, err := uc.repo.Catalog().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list catalog entries")
	}
	return entries, nil
}

func (uc *CatalogUseCase) GetEntry(ctx context.Context, id types.EntryID) (*model.CatalogEntry, error) {
	return getEntry(ctx, uc.repo.Catalog(), id)
}

// getEntry maps a missing entry to ErrEntryNotFound. Other repository
// failures are returned as they are.
func getEntry(ctx context.Context, repo interfaces.CatalogRepository, id types.EntryID) (*model.CatalogEntry, error) {
	entry, err := repo.Get(ctx, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		return nil, goerr.Wrap(ErrEntryNotFound, "catalog entry not found", goerr.V(EntryIDKey, id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get catalog entry", goerr.V(EntryIDKey, id))
	}
	return entry, nil
}

// SaveEntry creates the entry when its ID is empty or unknown, and replaces
// the stored entry otherwise. New entries get a fresh ID and practices start
// without actions. Updates keep the stored actions when none are given.
func (uc *CatalogUseCase) SaveEntry(ctx context.Context, entry *model.CatalogEntry) (*model.CatalogEntry, error) {
	if entry == nil {
		return nil, goerr.Wrap(ErrInvalidEntry, "catalog entry is required")
	}
	if err := entry.Validate(); err != nil {
		return nil, goerr.Wrap(errors.Join(ErrInvalidEntry, err), "invalid catalog entry",
			goerr.V(EntryIDKey, entry.ID))
	}

	toSave := entry.Copy()

	var existing *model.CatalogEntry
	if toSave.ID != "" {
		e, err := getEntry(ctx, uc.repo.Catalog(), toSave.ID)
		switch {
		case err == nil:
			existing = e
		case !errors.Is(err, ErrEntryNotFound):
			return nil, err
		}
	}

	if existing == nil {
		toSave.ID = types.NewEntryID()
		toSave.Actions = nil
	} else if toSave.Actions == nil {
		toSave.Actions = existing.Actions
	}

	saved, err := uc.repo.Catalog().Put(ctx, toSave)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save catalog entry", goerr.V(EntryIDKey, toSave.ID))
	}

	logging.From(ctx).Info("catalog entry saved",
		"id", saved.ID,
		"kind", saved.Kind,
		"created", existing == nil,
	)
	return saved, nil
}

// DeleteEntry removes an entry together with its actions. The deletion only
// happens when confirmed is true.
func (uc *CatalogUseCase) DeleteEntry(ctx context.Context, id types.EntryID, confirmed bool) error {
	if _, err := getEntry(ctx, uc.repo.Catalog(), id); err != nil {
		return err
	}
	if !confirmed {
		return goerr.Wrap(ErrConfirmationRequired, "deleting a catalog entry must be confirmed",
			goerr.V(EntryIDKey, id))
	}

	if err := uc.repo.Catalog().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete catalog entry", goerr.V(EntryIDKey, id))
	}

	logging.From(ctx).Info("catalog entry deleted", "id", id)
	return nil
}

// SetPriority changes the ordering of a practice inside its level zone
func (uc *CatalogUseCase) SetPriority(ctx context.Context, id types.EntryID, priority int) (*model.CatalogEntry, error) {
	if priority < 1 {
		return nil, goerr.Wrap(ErrInvalidEntry, "priority must be positive",
			goerr.V(EntryIDKey, id), goerr.V("priority", priority))
	}

	entry, err := uc.getPractice(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Priority = priority
	saved, err := uc.repo.Catalog().Put(ctx, entry)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update priority", goerr.V(EntryIDKey, id))
	}
	return saved, nil
}

// Diagnosis is the list of practices countries are assessed against, each
// with the progress of its action plan
type Diagnosis struct {
	Practices   []model.PracticeProgress `json:"practices"`
	TotalWeight float64                  `json:"total_weight"`
	// OpenActions counts the actions not completed yet, across all practices
	OpenActions int `json:"open_actions"`
}

// DiagnosisPractices returns the practices ordered by level, then priority
func (uc *CatalogUseCase) DiagnosisPractices(ctx context.Context) (*Diagnosis, error) {
	entries, err := uc.repo.Catalog().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list catalog entries")
	}

	d := &Diagnosis{
		Practices: []model.PracticeProgress{},
	}
	for _, e := range entries {
		if !e.IsPractice() {
			continue
		}
		d.Practices = append(d.Practices, model.WithProgress(e))
		d.TotalWeight += e.ScoringWeight()
		for _, a := range e.Actions {
			if !a.Status.Done() {
				d.OpenActions++
			}
		}
	}

	sort.SliceStable(d.Practices, func(i, j int) bool {
		a, b := d.Practices[i], d.Practices[j]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		return a.Priority < b.Priority
	})

	return d, nil
}

func (uc *CatalogUseCase) getPractice(ctx context.Context, id types.EntryID) (*model.CatalogEntry, error) {
	entry, err := getEntry(ctx, uc.repo.Catalog(), id)
	if err != nil {
		return nil, err
	}
	if !entry.IsPractice() {
		return nil, goerr.Wrap(ErrNotPractice, "only practices accept this operation",
			goerr.V(EntryIDKey, id), goerr.V("kind", entry.Kind))
	}
	return entry, nil
}
