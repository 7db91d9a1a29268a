// Package scoring computes the maturity score of a country from its answers.
//
// Each level's completion is the answered share of its practices' weight.
// The highest level at (almost) 100% decides the score; without one, the
// level with the best completion does.
package scoring

import (
	"math"

	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

const (
	// CompleteThreshold is the percentage from which a level counts as done.
	// It absorbs floating point error in the weight sums.
	CompleteThreshold = 99.9

	MinScore = 1.0
	MaxScore = 5.0
)

// Percentages returns the completion percentage of levels 1..5 at index 0..4
func Percentages(buckets [5]LevelBucket, answers model.Answers) [5]float64 {
	var pct [5]float64
	for i, b := range buckets {
		if b.TotalWeight <= 0 {
			continue
		}
		var earned float64
		for _, p := range b.Practices {
			if answers.Get(p.ID) {
				earned += p.ScoringWeight()
			}
		}
		pct[i] = 100 * earned / b.TotalWeight
	}
	return pct
}

// Compute returns the maturity score of one country
func Compute(entries []*model.CatalogEntry, sheet model.AnswerSheet, country types.CountryCode) model.CountryMaturityScore {
	return fromPercentages(Percentages(Buckets(entries), sheet.Of(country)))
}

// ComputeAll returns the maturity score of every given country. Countries
// without answers are scored as if they answered nothing.
func ComputeAll(entries []*model.CatalogEntry, sheet model.AnswerSheet, countries []types.CountryCode) map[types.CountryCode]model.CountryMaturityScore {
	buckets := Buckets(entries)
	scores := make(map[types.CountryCode]model.CountryMaturityScore, len(countries))
	for _, code := range countries {
		scores[code] = fromPercentages(Percentages(buckets, sheet.Of(code)))
	}
	return scores
}

func fromPercentages(pct [5]float64) model.CountryMaturityScore {
	at := func(l types.Level) float64 { return pct[l-1] }

	score := MinScore
	effective := types.MinLevel

	var highestCompleted types.Level
	for l := types.MaxLevel; l >= types.MinLevel; l-- {
		if at(l) >= CompleteThreshold {
			highestCompleted = l
			break
		}
	}

	if highestCompleted > 0 {
		score = math.Min(float64(highestCompleted+1), MaxScore)
		effective = highestCompleted
	} else {
		// Ascending scan with >= so that ties go to the higher level,
		// including the all-zero case.
		maxPct := -1.0
		var maxLevel types.Level
		for l := types.MinLevel; l <= types.MaxLevel; l++ {
			if at(l) >= maxPct {
				maxPct = at(l)
				maxLevel = l
			}
		}
		if maxLevel > 0 {
			score = float64(maxLevel) + maxPct/100
			effective = maxLevel
		}
	}

	score = math.Max(math.Min(score, MaxScore), MinScore)

	incomplete := make([]model.IncompleteLevel, 0, types.MaxLevel)
	reported := make(map[types.Level]bool, types.MaxLevel)
	for l := types.MinLevel; l <= effective; l++ {
		if at(l) < CompleteThreshold {
			incomplete = append(incomplete, model.IncompleteLevel{Level: l, Percentage: roundPercent(at(l))})
			reported[l] = true
		}
	}
	if highestCompleted > 0 {
		for l := types.MinLevel; l < highestCompleted; l++ {
			if at(l) < CompleteThreshold && !reported[l] {
				incomplete = append(incomplete, model.IncompleteLevel{Level: l, Percentage: roundPercent(at(l))})
				reported[l] = true
			}
		}
	}

	return model.CountryMaturityScore{
		Score:            score,
		IncompleteLevels: incomplete,
		EffectiveLevel:   effective,
		Percentages:      pct,
	}
}

// roundPercent rounds half up; percentages are never negative.
func roundPercent(p float64) int {
	return int(math.Floor(p + 0.5))
}
