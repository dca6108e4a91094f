package systems

import (
	"math"
	"strconv"

	"github.com/pthm-cable/chase/components"
)

// Outcome is the result of one wolf action: either a capture of the sheep at
// a flock index, or no capture.
type Outcome struct {
	index    int
	captured bool
}

// NoCapture is the outcome of a round in which the wolf only moved.
var NoCapture = Outcome{}

// Captured returns the outcome for eating the sheep at index i.
func Captured(i int) Outcome {
	return Outcome{index: i, captured: true}
}

// Index returns the captured sheep index and whether a capture happened.
func (o Outcome) Index() (int, bool) {
	return o.index, o.captured
}

// IsCapture reports whether the outcome is a capture.
func (o Outcome) IsCapture() bool {
	return o.captured
}

// String returns the captured index, or "-" when nothing was eaten.
func (o Outcome) String() string {
	if !o.captured {
		return "-"
	}
	return strconv.Itoa(o.index)
}

// Target is the view of one sheep that the wolf hunts over.
type Target struct {
	Pos   components.Position
	Alive bool
}

// Nearest returns the index of and distance to the closest living target.
// Dead targets count as infinitely far away; ties go to the lowest index.
// Panics if no target is alive.
func Nearest(from components.Position, herd []Target) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for i, t := range herd {
		if !t.Alive {
			continue
		}
		d := Distance(from, t.Pos)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		panic("systems: Nearest called without a living sheep")
	}
	return best, bestDist
}

// Hunt runs one wolf action. If the nearest sheep is within one stride
// (inclusive) it is eaten and Captured is returned; otherwise the wolf moves
// one stride toward it and NoCapture is returned. Hunt does not mark the
// sheep dead; the caller owns that state.
func Hunt(pos *components.Position, stride components.Stride, wolf *components.Wolf, herd []Target) Outcome {
	idx, dist := Nearest(*pos, herd)

	// Capture check first: dist == 0 must never reach the interpolation
	if stride.Distance >= dist {
		wolf.Eaten++
		return Captured(idx)
	}

	*pos = lerpToward(*pos, herd[idx].Pos, stride.Distance, dist-stride.Distance)
	return NoCapture
}
