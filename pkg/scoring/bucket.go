package scoring

import (
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

// LevelBucket groups the weighted practices of one maturity level
type LevelBucket struct {
	Level       types.Level
	Practices   []*model.CatalogEntry
	TotalWeight float64
}

// Buckets partitions weighted practices by floor(level) into levels 1..5.
// Risks, practices with no positive weight and practices outside 1..5 are
// left out. The result always has five buckets, index 0 being level 1.
func Buckets(entries []*model.CatalogEntry) [5]LevelBucket {
	var buckets [5]LevelBucket
	for i := range buckets {
		buckets[i].Level = types.Level(i + 1)
	}

	for _, e := range entries {
		w := e.ScoringWeight()
		if w <= 0 {
			continue
		}
		lv := e.Tier()
		if !lv.Valid() {
			continue
		}
		b := &buckets[lv-1]
		b.Practices = append(b.Practices, e)
		b.TotalWeight += w
	}
	return buckets
}
