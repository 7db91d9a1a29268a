package model

import (
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

// Action represents a planned task that moves a country towards a practice
type Action struct {
	ID          types.ActionID     `json:"id" toml:"id"`
	Description string             `json:"description" toml:"description"`
	Status      types.ActionStatus `json:"status" toml:"status"`
	Country     types.CountryCode  `json:"country" toml:"country"`
	Responsible string             `json:"responsible,omitempty" toml:"responsible,omitempty"`
	Year        string             `json:"year,omitempty" toml:"year,omitempty"`
}

// Validate checks the action fields that can be checked without context
func (a *Action) Validate() error {
	if a.Description == "" {
		return ErrMissingDescription
	}
	if !a.Status.IsValid() {
		return ErrInvalidActionStatus
	}
	if err := a.Country.Validate(); err != nil {
		return err
	}
	return nil
}
