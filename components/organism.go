package components

import "strconv"

// Sheep marks a prey entity.
type Sheep struct {
	Alive bool
}

// Wolf marks the pursuer entity.
type Wolf struct {
	Eaten int // sheep eaten so far, never decreases
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
