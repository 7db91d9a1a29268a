package model

import "github.com/secmon-lab/roadmap/pkg/domain/types"

// IncompleteLevel is a level at or below the effective level that is not
// fully satisfied
type IncompleteLevel struct {
	Level      types.Level `json:"level"`
	Percentage int         `json:"percentage"`
}

// CountryMaturityScore is the derived maturity of one country
type CountryMaturityScore struct {
	Score            float64           `json:"score"`
	IncompleteLevels []IncompleteLevel `json:"incomplete_levels"`

	EffectiveLevel types.Level `json:"effective_level"`
	// Percentages holds the completion of levels 1..5 at index 0..4.
	Percentages [5]float64 `json:"percentages"`
}

// Copy returns a copy that shares no slice with s
func (s CountryMaturityScore) Copy() CountryMaturityScore {
	s.IncompleteLevels = append([]IncompleteLevel{}, s.IncompleteLevels...)
	return s
}

// Answers maps a practice to whether the country has implemented it
type Answers map[types.EntryID]bool

// Get returns the answer for a practice; a missing answer is false
func (a Answers) Get(id types.EntryID) bool {
	if a == nil {
		return false
	}
	return a[id]
}

// AnswerSheet maps a country to its answers
type AnswerSheet map[types.CountryCode]Answers

// Of returns the answers of a country, never nil
func (s AnswerSheet) Of(code types.CountryCode) Answers {
	if a, ok := s[code]; ok && a != nil {
		return a
	}
	return Answers{}
}
