package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

// AddAction attaches a new action to a practice. The status defaults to
// pending.
func (uc *CatalogUseCase) AddAction(ctx context.Context, entryID types.EntryID, action model.Action) (*model.Action, error) {
	entry, err := uc.getPractice(ctx, entryID)
	if err != nil {
		return nil, err
	}

	action.ID = types.NewActionID()
	if action.Status == "" {
		action.Status = types.ActionStatusPending
	}
	if err := action.Validate(); err != nil {
		return nil, goerr.Wrap(errors.Join(ErrInvalidAction, err), "invalid action",
			goerr.V(EntryIDKey, entryID))
	}

	entry.Actions = append(entry.Actions, action)
	if _, err := uc.repo.Catalog().Put(ctx, entry); err != nil {
		return nil, goerr.Wrap(err, "failed to add action",
			goerr.V(EntryIDKey, entryID), goerr.V(ActionIDKey, action.ID))
	}

	return &action, nil
}

// UpdateAction replaces the action with the same ID on a practice
func (uc *CatalogUseCase) UpdateAction(ctx context.Context, entryID types.EntryID, action model.Action) (*model.Action, error) {
	entry, err := uc.getPractice(ctx, entryID)
	if err != nil {
		return nil, err
	}

	i := findAction(entry.Actions, action.ID)
	if i < 0 {
		return nil, goerr.Wrap(ErrActionNotFound, "action not found",
			goerr.V(EntryIDKey, entryID), goerr.V(ActionIDKey, action.ID))
	}
	if err := action.Validate(); err != nil {
		return nil, goerr.Wrap(errors.Join(ErrInvalidAction, err), "invalid action",
			goerr.V(EntryIDKey, entryID), goerr.V(ActionIDKey, action.ID))
	}

	entry.Actions[i] = action
	if _, err := uc.repo.Catalog().Put(ctx, entry); err != nil {
		return nil, goerr.Wrap(err, "failed to update action",
			goerr.V(EntryIDKey, entryID), goerr.V(ActionIDKey, action.ID))
	}

	return &action, nil
}

// DeleteAction removes an action from a practice
func (uc *CatalogUseCase) DeleteAction(ctx context.Context, entryID types.EntryID, actionID types.ActionID) error {
	entry, err := uc.getPractice(ctx, entryID)
	if err != nil {
		return err
	}

	i := findAction(entry.Actions, actionID)
	if i < 0 {
		return goerr.Wrap(ErrActionNotFound, "action not found",
			goerr.V(EntryIDKey, entryID), goerr.V(ActionIDKey, actionID))
	}

	entry.Actions = append(entry.Actions[:i], entry.Actions[i+1:]...)
	if _, err := uc.repo.Catalog().Put(ctx, entry); err != nil {
		return goerr.Wrap(err, "failed to delete action",
			goerr.V(EntryIDKey, entryID), goerr.V(ActionIDKey, actionID))
	}
	return nil
}

func findAction(actions []model.Action, id types.ActionID) int {
	for i := range actions {
		if actions[i].ID == id {
			return i
		}
	}
	return -1
}
