package systems

import (
	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/chase/components"
)

// Distance functions

// Distance returns the Euclidean distance between two points.
func Distance(a, b components.Position) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// lerpToward returns the point dividing the segment from -> to in the ratio m:n,
// measured from `from`. With m = step and n = dist - step this is exactly one
// step along the line.
func lerpToward(from, to components.Position, m, n float64) components.Position {
	return components.Position{
		X: (m*to.X + n*from.X) / (m + n),
		Y: (m*to.Y + n*from.Y) / (m + n),
	}
}
