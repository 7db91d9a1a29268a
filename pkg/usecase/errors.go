package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrEntryNotFound  = errors.New("catalog entry not found")
	ErrActionNotFound = errors.New("action not found")
	ErrUnknownCountry = errors.New("unknown country")

	// Input errors
	ErrInvalidEntry  = errors.New("invalid catalog entry")
	ErrInvalidAction = errors.New("invalid action")
	ErrNotPractice   = errors.New("entry is not a practice")

	// Guarded operations
	ErrConfirmationRequired = errors.New("confirmation required")
)

// Context keys for error values
const (
	EntryIDKey  = "entry_id"
	ActionIDKey = "action_id"
	CountryKey  = "country"
)
