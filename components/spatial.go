// Package components holds the ECS component types for the chase.
package components

import "math"

// Position represents an entity's location on the plane.
type Position struct {
	X, Y float64
}

// Rounded returns the position rounded to 3 decimal places for reporting.
func (p Position) Rounded() Position {
	return Position{X: Round3(p.X), Y: Round3(p.Y)}
}

// Pair returns the rounded coordinates as a two-element array for export.
func (p Position) Pair() [2]float64 {
	r := p.Rounded()
	return [2]float64{r.X, r.Y}
}

// String formats the rounded position as "(x, y)".
func (p Position) String() string {
	r := p.Rounded()
	return "(" + formatCoord(r.X) + ", " + formatCoord(r.Y) + ")"
}

// Stride is the fixed distance an entity covers per round.
type Stride struct {
	Distance float64
}

// Round3 rounds v to 3 decimal places, half away from zero.
func Round3(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
