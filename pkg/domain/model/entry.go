package model

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

// CatalogEntry is a practice or a risk of the maturity roadmap. Risks share
// the same shape but are never scored.
type CatalogEntry struct {
	ID        types.EntryID   `json:"id" toml:"id"`
	Kind      types.EntryKind `json:"kind" toml:"kind"`
	Name      string          `json:"name" toml:"name"`
	ShortName string          `json:"short_name,omitempty" toml:"short_name,omitempty"`
	// Level is continuous; its floor is the maturity tier.
	Level       float64 `json:"level" toml:"level"`
	Weight      float64 `json:"weight,omitempty" toml:"weight,omitempty"`
	Priority    int     `json:"priority,omitempty" toml:"priority,omitempty"`
	Description string  `json:"description" toml:"description"`

	AssociatedRisk string           `json:"associated_risk,omitempty" toml:"associated_risk,omitempty"`
	Mitigation     string           `json:"mitigation,omitempty" toml:"mitigation,omitempty"`
	Implementation string           `json:"implementation,omitempty" toml:"implementation,omitempty"`
	Goal           string           `json:"goal,omitempty" toml:"goal,omitempty"`
	PlannedDate    string           `json:"planned_date,omitempty" toml:"planned_date,omitempty"`
	AreasInvolved  int              `json:"areas_involved,omitempty" toml:"areas_involved,omitempty"`
	Investment     types.Investment `json:"investment,omitempty" toml:"investment,omitempty"`
	Responsible    string           `json:"responsible,omitempty" toml:"responsible,omitempty"`
	Actions        []Action         `json:"actions,omitempty" toml:"actions,omitempty"`

	X float64 `json:"x,omitempty" toml:"x,omitempty"`
	Y float64 `json:"y,omitempty" toml:"y,omitempty"`
}

// IsPractice reports whether the entry is a practice
func (e *CatalogEntry) IsPractice() bool {
	return e.Kind == types.EntryKindPractice
}

// IsRisk reports whether the entry is a risk
func (e *CatalogEntry) IsRisk() bool {
	return e.Kind == types.EntryKindRisk
}

// Tier returns the integer maturity level the entry is bucketed into
func (e *CatalogEntry) Tier() types.Level {
	return types.LevelOf(e.Level)
}

// ScoringWeight returns the weight used for scoring. Risks, non-positive and
// non-finite weights all count as 0.
func (e *CatalogEntry) ScoringWeight() float64 {
	if !e.IsPractice() {
		return 0
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight <= 0 {
		return 0
	}
	return e.Weight
}

// DisplayName returns the short name when present, otherwise the full name
func (e *CatalogEntry) DisplayName() string {
	if e.ShortName != "" {
		return e.ShortName
	}
	return e.Name
}

// Copy returns a deep copy of the entry
func (e *CatalogEntry) Copy() *CatalogEntry {
	c := *e
	if e.Actions != nil {
		c.Actions = make([]Action, len(e.Actions))
		copy(c.Actions, e.Actions)
	}
	return &c
}

// Validate checks the entry fields. ID is not checked here because new
// entries get their ID assigned on save.
func (e *CatalogEntry) Validate() error {
	if err := e.Kind.Validate(); err != nil {
		return goerr.Wrap(err, "invalid entry kind", goerr.V(EntryIDKey, e.ID))
	}
	if e.Name == "" {
		return goerr.Wrap(ErrMissingName, "entry name is required", goerr.V(EntryIDKey, e.ID))
	}
	if math.IsNaN(e.Level) || e.Level < float64(types.MinLevel) || e.Level > float64(types.MaxLevel) {
		return goerr.Wrap(ErrLevelOutOfRange, "entry level must be between 1 and 5",
			goerr.V(EntryIDKey, e.ID), goerr.V(LevelKey, e.Level))
	}
	if !e.Investment.IsValid() {
		return goerr.Wrap(ErrInvalidInvestment, "unknown investment bracket",
			goerr.V(EntryIDKey, e.ID), goerr.V("investment", e.Investment))
	}
	for i := range e.Actions {
		if err := e.Actions[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid action",
				goerr.V(EntryIDKey, e.ID), goerr.V(ActionIDKey, e.Actions[i].ID))
		}
	}
	return nil
}
