package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrMissingName         = goerr.New("name is required")
	ErrMissingDescription  = goerr.New("description is required")
	ErrLevelOutOfRange     = goerr.New("level out of range")
	ErrInvalidInvestment   = goerr.New("invalid investment")
	ErrInvalidActionStatus = goerr.New("invalid action status")
	ErrCountryNotFound     = goerr.New("country not found")
)

// Context keys for error values
const (
	EntryIDKey  = "entry_id"
	ActionIDKey = "action_id"
	CountryKey  = "country"
	LevelKey    = "level"
)
