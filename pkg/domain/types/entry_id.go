package types

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// EntryID identifies a practice or risk in the catalog. Seed entries use
// short numeric IDs; entries created at runtime get a UUID.
type EntryID string

// ActionID identifies an action attached to a practice
type ActionID string

var idPattern = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*$`)

// NewEntryID returns a fresh random EntryID
func NewEntryID() EntryID {
	return EntryID(uuid.NewString())
}

// NewActionID returns a fresh random ActionID
func NewActionID() ActionID {
	return ActionID(uuid.NewString())
}

// Validate checks if the EntryID is valid
func (id EntryID) Validate() error {
	if id == "" {
		return goerr.New("entry ID cannot be empty")
	}
	if !idPattern.MatchString(string(id)) {
		return goerr.New("entry ID must be alphanumeric with hyphens", goerr.V("id", id))
	}
	return nil
}

func (id EntryID) String() string {
	return string(id)
}

// Validate checks if the ActionID is valid
func (id ActionID) Validate() error {
	if id == "" {
		return goerr.New("action ID cannot be empty")
	}
	if !idPattern.MatchString(string(id)) {
		return goerr.New("action ID must be alphanumeric with hyphens", goerr.V("id", id))
	}
	return nil
}

func (id ActionID) String() string {
	return string(id)
}
