package layout

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
	"github.com/secmon-lab/roadmap/pkg/scoring"
)

// MarkerOptions controls how country flags are placed above the curve
type MarkerOptions struct {
	// FlagWidth is the horizontal distance below which two flags collide
	FlagWidth float64
	// VerticalSpacing is how far a colliding flag is pushed down
	VerticalSpacing float64
	// BaseYOffset is added to the curve's y for every flag
	BaseYOffset float64
}

// DefaultMarkerOptions returns the options used by the dashboard
func DefaultMarkerOptions() MarkerOptions {
	return MarkerOptions{
		FlagWidth:       40,
		VerticalSpacing: 50,
		BaseYOffset:     -100,
	}
}

// Marker is the position of a country's flag
type Marker struct {
	Country model.Country              `json:"country"`
	X       float64                    `json:"x"`
	Y       float64                    `json:"y"`
	Score   model.CountryMaturityScore `json:"score"`
	// Caption lists the incomplete levels, e.g. "85% N2 40% N3"
	Caption string `json:"caption,omitempty"`
}

// PlaceMarkers positions one marker per country on the curve and pushes
// down markers that collide horizontally.
//
// Markers are sorted by x, then every pair (i, j) with i < j closer than
// FlagWidth moves j to VerticalSpacing below i. This is a single pass: three
// or more clustered markers can still overlap. Countries without a score are
// placed as score 1.
func PlaceMarkers(scores map[types.CountryCode]model.CountryMaturityScore, countries []model.Country, opts MarkerOptions) []Marker {
	markers := make([]Marker, 0, len(countries))
	for _, c := range countries {
		s, ok := scores[c.Code]
		if !ok {
			s = model.CountryMaturityScore{
				Score:            scoring.MinScore,
				IncompleteLevels: []model.IncompleteLevel{},
				EffectiveLevel:   types.MinLevel,
			}
		}
		p := PointOnCurve(s.Score)
		markers = append(markers, Marker{
			Country: c,
			X:       p.X,
			Y:       p.Y + opts.BaseYOffset,
			Score:   s,
			Caption: Caption(s.IncompleteLevels),
		})
	}

	sort.SliceStable(markers, func(i, j int) bool { return markers[i].X < markers[j].X })

	for i := 0; i < len(markers); i++ {
		for j := i + 1; j < len(markers); j++ {
			if math.Abs(markers[i].X-markers[j].X) < opts.FlagWidth {
				markers[j].Y = markers[i].Y + opts.VerticalSpacing
			}
		}
	}
	return markers
}

// Caption formats incomplete levels as "85% N2 40% N3"
func Caption(levels []model.IncompleteLevel) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprintf("%d%% N%d", l.Percentage, l.Level)
	}
	return strings.Join(parts, " ")
}
