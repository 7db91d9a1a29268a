package types

import "math"

// Level is an integer maturity tier
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 5
)

// AllLevels returns every maturity level in ascending order
func AllLevels() []Level {
	return []Level{1, 2, 3, 4, 5}
}

// LevelOf buckets a continuous level by truncating it. The result may fall
// outside 1..5 for malformed input; callers check Valid.
func LevelOf(level float64) Level {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return 0
	}
	return Level(math.Floor(level))
}

// Valid reports whether the level is within MinLevel..MaxLevel
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}
