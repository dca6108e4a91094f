package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/chase/components"
)

func TestWanderDirections(t *testing.T) {
	tests := []struct {
		name string
		draw int
		want components.Position
	}{
		{"east", 0, components.Position{X: 1.5, Y: 2}},
		{"north", 1, components.Position{X: 1, Y: 2.5}},
		{"west", 2, components.Position{X: 0.5, Y: 2}},
		{"south", 3, components.Position{X: 1, Y: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := components.Position{X: 1, Y: 2}
			Wander(&scriptedSource{ints: []int{tt.draw}}, &pos, components.Stride{Distance: 0.5})
			if pos != tt.want {
				t.Errorf("pos = %+v, want %+v", pos, tt.want)
			}
		})
	}
}

func TestWanderAxisAlignedStep(t *testing.T) {
	rng := NewSource(7)
	stride := components.Stride{Distance: 0.37}
	pos := components.Position{X: -3.2, Y: 4.1}

	for i := 0; i < 500; i++ {
		before := pos
		Wander(rng, &pos, stride)

		dx := math.Abs(pos.X - before.X)
		dy := math.Abs(pos.Y - before.Y)
		movedX := math.Abs(dx-stride.Distance) < 1e-9 && dy == 0
		movedY := math.Abs(dy-stride.Distance) < 1e-9 && dx == 0
		if !movedX && !movedY {
			t.Fatalf("step %d: %+v -> %+v is not a single axis-aligned stride", i, before, pos)
		}
	}
}

func TestWanderUsesAllDirections(t *testing.T) {
	rng := NewSource(3)
	seen := map[components.Position]bool{}
	for i := 0; i < 200; i++ {
		pos := components.Position{}
		Wander(rng, &pos, components.Stride{Distance: 1})
		seen[pos] = true
	}
	if len(seen) != 4 {
		t.Errorf("saw %d distinct directions, want 4", len(seen))
	}
}

func TestSpawnWithinLimit(t *testing.T) {
	rng := NewSource(11)
	const limit = 10.0
	for i := 0; i < 1000; i++ {
		p := Spawn(rng, limit)
		if p.X < -limit || p.X > limit || p.Y < -limit || p.Y > limit {
			t.Fatalf("spawn %d out of bounds: %+v", i, p)
		}
	}
}

func TestSpawnScripted(t *testing.T) {
	rng := &scriptedSource{floats: []float64{0, 0.5, 0.75}}
	p := Spawn(rng, 4)
	if p != (components.Position{X: -4, Y: 0}) {
		t.Errorf("first spawn = %+v, want (-4, 0)", p)
	}
	p = Spawn(rng, 4)
	if p != (components.Position{X: 2, Y: 2}) {
		t.Errorf("second spawn = %+v, want (2, 2)", p)
	}
}
