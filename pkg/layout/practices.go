package layout

import (
	"sort"

	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

// RiskOffset is the horizontal shift of a risk from the practice that
// mitigates it
const RiskOffset = 15

// Zone is the horizontal span reserved for the practices of one level
type Zone struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Width returns End - Start
func (z Zone) Width() float64 {
	return z.End - z.Start
}

var levelZones = map[types.Level]Zone{
	1: {Start: 50, End: 250},
	2: {Start: 280, End: 500},
	3: {Start: 530, End: 750},
	4: {Start: 780, End: 1000},
	5: {Start: 1030, End: 1250},
}

// LevelZone returns the zone of a level
func LevelZone(level types.Level) (Zone, bool) {
	z, ok := levelZones[level]
	return z, ok
}

// PositionEntries assigns X to practices and to the risks they mitigate.
//
// Practices of a level are ordered by priority and each gets the centre of
// an equal slice of the level's zone. A risk named by a practice's
// AssociatedRisk is placed RiskOffset to the right of that practice; when
// several practices name the same risk the last one placed wins. Other
// risks keep their static X.
//
// The result lists practices level by level, then risks in catalog order.
// Practices whose level has no zone follow the positioned ones unchanged.
// Entries are copied; the input is not modified.
func PositionEntries(entries []*model.CatalogEntry) []*model.CatalogEntry {
	byLevel := make(map[types.Level][]*model.CatalogEntry)
	var levels []types.Level
	var risks []*model.CatalogEntry

	for _, e := range entries {
		switch {
		case e.IsPractice():
			lv := e.Tier()
			if _, ok := byLevel[lv]; !ok {
				levels = append(levels, lv)
			}
			byLevel[lv] = append(byLevel[lv], e.Copy())
		case e.IsRisk():
			risks = append(risks, e.Copy())
		}
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	result := make([]*model.CatalogEntry, 0, len(entries))
	var unzoned []*model.CatalogEntry
	riskX := make(map[string]float64)

	for _, lv := range levels {
		practices := byLevel[lv]
		zone, ok := LevelZone(lv)
		if !ok {
			unzoned = append(unzoned, practices...)
			continue
		}

		sort.SliceStable(practices, func(i, j int) bool {
			return practices[i].Priority < practices[j].Priority
		})

		segment := zone.Width() / float64(len(practices))
		for i, p := range practices {
			p.X = zone.Start + segment*float64(i) + segment/2
			if p.AssociatedRisk != "" {
				riskX[p.AssociatedRisk] = p.X
			}
		}
		result = append(result, practices...)
	}
	result = append(result, unzoned...)

	for _, r := range risks {
		if x, ok := riskX[r.Name]; ok {
			r.X = x + RiskOffset
		}
	}
	return append(result, risks...)
}
