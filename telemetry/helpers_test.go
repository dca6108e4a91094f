package telemetry

import "github.com/pthm-cable/chase/components"

type P = components.Position

func pos(x, y float64) P {
	return P{X: x, Y: y}
}
