package layout_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roadmap/pkg/layout"
)

func TestPointOnCurve_Endpoints(t *testing.T) {
	gt.Value(t, layout.PointOnCurve(1)).Equal(layout.Point{X: 20, Y: 600})
	gt.Value(t, layout.PointOnCurve(5)).Equal(layout.Point{X: 1260, Y: 160})
}

func TestPointOnCurve_Clamped(t *testing.T) {
	gt.Value(t, layout.PointOnCurve(0)).Equal(layout.P0)
	gt.Value(t, layout.PointOnCurve(-3)).Equal(layout.P0)
	gt.Value(t, layout.PointOnCurve(7.5)).Equal(layout.P3)
	gt.Value(t, layout.PointOnCurve(math.NaN())).Equal(layout.P0)
}

func TestPointOnCurve_Midpoint(t *testing.T) {
	// t = 0.5: (P0 + 3P1 + 3P2 + P3) / 8
	p := layout.PointOnCurve(3)
	gt.Bool(t, math.Abs(p.X-(20+3*350+3*850+1260)/8.0) < 1e-9).True()
	gt.Bool(t, math.Abs(p.Y-(600+3*370+3*230+160)/8.0) < 1e-9).True()
}

func TestPointOnCurve_Monotonic(t *testing.T) {
	prev := layout.PointOnCurve(1)
	for s := 1.05; s <= 5; s += 0.05 {
		p := layout.PointOnCurve(s)
		if p.X <= prev.X || p.Y >= prev.Y {
			t.Fatalf("curve is not monotonic at score %v: prev=%v cur=%v", s, prev, p)
		}
		prev = p
	}
}

func TestCurve(t *testing.T) {
	points := layout.Curve(5)
	gt.Array(t, points).Length(5).Required()
	gt.Value(t, points[0]).Equal(layout.P0)
	gt.Value(t, points[4]).Equal(layout.P3)
	gt.Value(t, points[2]).Equal(layout.PointOnCurve(3))

	gt.Array(t, layout.Curve(0)).Length(2)
}

func TestLevelDividers(t *testing.T) {
	gt.Value(t, layout.LevelDividers()).Equal([]float64{256, 512, 768, 1024})
}
