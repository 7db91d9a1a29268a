package model

import (
	"math"

	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

// ActionProgress is the completion of the actions planned for a practice,
// overall and per country. Percentages are rounded half up; a practice or
// country without actions is at 0.
type ActionProgress struct {
	Progress        int                       `json:"progress"`
	CountryProgress map[types.CountryCode]int `json:"country_progress"`
	// Countries lists the countries with at least one action, in the order
	// they first appear.
	Countries []types.CountryCode `json:"countries"`
}

// PracticeProgress is a practice together with the progress of its actions
type PracticeProgress struct {
	*CatalogEntry
	ActionProgress
}

// ProgressOf computes the action progress of the entry
func ProgressOf(e *CatalogEntry) ActionProgress {
	type tally struct{ total, completed int }

	p := ActionProgress{
		CountryProgress: map[types.CountryCode]int{},
		Countries:       []types.CountryCode{},
	}

	var all tally
	perCountry := make(map[types.CountryCode]*tally)
	for _, a := range e.Actions {
		t, ok := perCountry[a.Country]
		if !ok {
			t = &tally{}
			perCountry[a.Country] = t
			p.Countries = append(p.Countries, a.Country)
		}
		t.total++
		all.total++
		if a.Status.Done() {
			t.completed++
			all.completed++
		}
	}

	p.Progress = percentOf(all.completed, all.total)
	for code, t := range perCountry {
		p.CountryProgress[code] = percentOf(t.completed, t.total)
	}
	return p
}

// WithProgress pairs a copy of the entry with its action progress
func WithProgress(e *CatalogEntry) PracticeProgress {
	return PracticeProgress{
		CatalogEntry:   e.Copy(),
		ActionProgress: ProgressOf(e),
	}
}

// Copy returns a deep copy of the row
func (p PracticeProgress) Copy() PracticeProgress {
	c := PracticeProgress{
		ActionProgress: ActionProgress{
			Progress:        p.Progress,
			CountryProgress: make(map[types.CountryCode]int, len(p.CountryProgress)),
			Countries:       append([]types.CountryCode{}, p.Countries...),
		},
	}
	if p.CatalogEntry != nil {
		c.CatalogEntry = p.CatalogEntry.Copy()
	}
	for code, v := range p.CountryProgress {
		c.CountryProgress[code] = v
	}
	return c
}

func percentOf(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(100*float64(completed)/float64(total) + 0.5))
}
