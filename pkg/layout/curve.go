// Package layout places catalog entries and country markers on the roadmap
// canvas (1280x720 user units). All functions are pure.
package layout

import (
	"math"

	"github.com/secmon-lab/roadmap/pkg/scoring"
)

// Point is a position on the canvas
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Control points of the value curve. P0 is the start of level 1 and P3 the
// end of level 5.
var (
	P0 = Point{X: 20, Y: 600}
	P1 = Point{X: 350, Y: 370}
	P2 = Point{X: 850, Y: 230}
	P3 = Point{X: 1260, Y: 160}
)

// PointOnCurve maps a maturity score in [1,5] onto the value curve. Scores
// outside the range are clamped to the curve ends.
func PointOnCurve(score float64) Point {
	t := (score - scoring.MinScore) / (scoring.MaxScore - scoring.MinScore)
	if t < 0 || math.IsNaN(t) {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return bezier(t)
}

func bezier(t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*P0.X + b1*P1.X + b2*P2.X + b3*P3.X,
		Y: b0*P0.Y + b1*P1.Y + b2*P2.Y + b3*P3.Y,
	}
}

// Curve samples the value curve at n evenly spaced parameters, both ends
// included. n below 2 is raised to 2.
func Curve(n int) []Point {
	if n < 2 {
		n = 2
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = bezier(float64(i) / float64(n-1))
	}
	return points
}

// LevelDividers returns the x positions of the dashed lines separating the
// five level columns
func LevelDividers() []float64 {
	return []float64{256, 512, 768, 1024}
}
