package layout_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
	"github.com/secmon-lab/roadmap/pkg/layout"
)

func scoreOf(s float64, incomplete ...model.IncompleteLevel) model.CountryMaturityScore {
	if incomplete == nil {
		incomplete = []model.IncompleteLevel{}
	}
	return model.CountryMaturityScore{Score: s, IncompleteLevels: incomplete}
}

func TestPlaceMarkers_SortedByX(t *testing.T) {
	countries := []model.Country{
		{Code: "BR", Name: "Brasil"},
		{Code: "AR", Name: "Argentina"},
		{Code: "CL", Name: "Chile"},
	}
	scores := map[types.CountryCode]model.CountryMaturityScore{
		"BR": scoreOf(4),
		"AR": scoreOf(1),
		"CL": scoreOf(2.5),
	}

	markers := layout.PlaceMarkers(scores, countries, layout.DefaultMarkerOptions())
	gt.Array(t, markers).Length(3).Required()
	gt.Value(t, markers[0].Country.Code).Equal("AR")
	gt.Value(t, markers[1].Country.Code).Equal("CL")
	gt.Value(t, markers[2].Country.Code).Equal("BR")

	// far apart: only the base offset applies
	for _, m := range markers {
		p := layout.PointOnCurve(m.Score.Score)
		gt.Value(t, m.X).Equal(p.X)
		gt.Value(t, m.Y).Equal(p.Y - 100)
	}
}

func TestPlaceMarkers_Deconflict(t *testing.T) {
	opts := layout.DefaultMarkerOptions()
	countries := []model.Country{
		{Code: "BR", Name: "Brasil"},
		{Code: "AR", Name: "Argentina"},
	}
	scores := map[types.CountryCode]model.CountryMaturityScore{
		"BR": scoreOf(3.0),
		"AR": scoreOf(3.01),
	}

	markers := layout.PlaceMarkers(scores, countries, opts)
	gt.Array(t, markers).Length(2).Required()
	gt.Bool(t, markers[1].X-markers[0].X < opts.FlagWidth).True()
	gt.Value(t, markers[1].Y-markers[0].Y).Equal(opts.VerticalSpacing)
}

func TestPlaceMarkers_IdenticalScoresStack(t *testing.T) {
	opts := layout.DefaultMarkerOptions()
	countries := []model.Country{
		{Code: "BR"}, {Code: "AR"}, {Code: "CL"},
	}

	// no scores at all: everyone sits at score 1
	markers := layout.PlaceMarkers(nil, countries, opts)
	gt.Array(t, markers).Length(3).Required()

	// stable sort keeps the country order for equal x
	gt.Value(t, markers[0].Country.Code).Equal("BR")
	gt.Value(t, markers[1].Country.Code).Equal("AR")
	gt.Value(t, markers[2].Country.Code).Equal("CL")

	base := layout.P0.Y + opts.BaseYOffset
	gt.Value(t, markers[0].Y).Equal(base)
	gt.Value(t, markers[1].Y).Equal(base + opts.VerticalSpacing)
	gt.Value(t, markers[2].Y).Equal(base + 2*opts.VerticalSpacing)
	gt.Value(t, markers[0].Score.Score).Equal(1.0)
}

func TestPlaceMarkers_SinglePassLeavesChainedOverlap(t *testing.T) {
	// A and C are beyond FlagWidth of each other but both collide with B.
	// B is pushed below A, then C below B, and the pair (A, C) is left alone.
	opts := layout.MarkerOptions{FlagWidth: 40, VerticalSpacing: 50, BaseYOffset: 0}
	a := layout.PointOnCurve(3.0)
	b := layout.PointOnCurve(3.07)
	c := layout.PointOnCurve(3.14)
	gt.Bool(t, b.X-a.X < 40).True()
	gt.Bool(t, c.X-b.X < 40).True()
	gt.Bool(t, c.X-a.X >= 40).True()

	markers := layout.PlaceMarkers(map[types.CountryCode]model.CountryMaturityScore{
		"AA": scoreOf(3.0),
		"BB": scoreOf(3.07),
		"CC": scoreOf(3.14),
	}, []model.Country{{Code: "AA"}, {Code: "BB"}, {Code: "CC"}}, opts)

	gt.Value(t, markers[0].Country.Code).Equal("AA")
	gt.Value(t, markers[1].Country.Code).Equal("BB")
	gt.Value(t, markers[2].Country.Code).Equal("CC")
	gt.Value(t, markers[0].Y).Equal(a.Y)
	gt.Value(t, markers[1].Y).Equal(a.Y + 50)
	gt.Value(t, markers[2].Y).Equal(a.Y + 100)
}

func TestPlaceMarkers_Caption(t *testing.T) {
	markers := layout.PlaceMarkers(map[types.CountryCode]model.CountryMaturityScore{
		"BR": scoreOf(4, model.IncompleteLevel{Level: 2, Percentage: 85}, model.IncompleteLevel{Level: 3, Percentage: 40}),
		"AR": scoreOf(3),
	}, []model.Country{{Code: "BR"}, {Code: "AR"}}, layout.DefaultMarkerOptions())

	gt.Value(t, markers[1].Country.Code).Equal("BR")
	gt.Value(t, markers[1].Caption).Equal("85% N2 40% N3")
	gt.Value(t, markers[0].Caption).Equal("")
}

func TestCaption(t *testing.T) {
	tests := []struct {
		name   string
		levels []model.IncompleteLevel
		want   string
	}{
		{name: "none", levels: nil, want: ""},
		{name: "single", levels: []model.IncompleteLevel{{Level: 1, Percentage: 33}}, want: "33% N1"},
		{
			name:   "several",
			levels: []model.IncompleteLevel{{Level: 1, Percentage: 0}, {Level: 2, Percentage: 100}},
			want:   "0% N1 100% N2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, layout.Caption(tt.levels)).Equal(tt.want)
		})
	}
}
