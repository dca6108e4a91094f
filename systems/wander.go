package systems

import "github.com/pthm-cable/chase/components"

// Directions lists the four axis-aligned unit steps a sheep can take,
// indexed by the value drawn from Source.Intn(4).
var Directions = [4]components.Position{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// Wander moves a living sheep exactly one stride along a random axis.
// Callers must skip dead sheep.
func Wander(rng Source, pos *components.Position, stride components.Stride) {
	dir := Directions[rng.Intn(len(Directions))]
	pos.X += dir.X * stride.Distance
	pos.Y += dir.Y * stride.Distance
}

// Spawn returns a position drawn uniformly from [-limit, limit] on both axes.
func Spawn(rng Source, limit float64) components.Position {
	x := Uniform(rng, -limit, limit)
	y := Uniform(rng, -limit, limit)
	return components.Position{X: x, Y: y}
}
