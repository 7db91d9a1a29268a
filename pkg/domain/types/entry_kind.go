package types

import "github.com/m-mizutani/goerr/v2"

// EntryKind distinguishes scored practices from display-only risks
type EntryKind string

const (
	EntryKindPractice EntryKind = "practice"
	EntryKindRisk     EntryKind = "risk"
)

// Validate checks if the EntryKind is one of the known kinds
func (k EntryKind) Validate() error {
	switch k {
	case EntryKindPractice, EntryKindRisk:
		return nil
	default:
		return goerr.New("unknown entry kind", goerr.V("kind", k))
	}
}

func (k EntryKind) String() string {
	return string(k)
}
