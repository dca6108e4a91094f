package game

import (
	"github.com/pthm-cable/chase/components"
	"github.com/pthm-cable/chase/telemetry"
)

// Record adds the round to a telemetry collector.
func (r RoundResult) Record(c *telemetry.Collector) {
	sheep := make([]components.Position, len(r.Sheep))
	for i, s := range r.Sheep {
		sheep[i] = s.Pos
	}
	c.Record(r.Round, r.Wolf, sheep, r.Alive, r.Outcome.IsCapture())
}

// TableRow formats the round for the console table.
func (r RoundResult) TableRow() telemetry.TableRow {
	return telemetry.TableRow{
		Round: r.Round,
		Wolf:  r.Wolf.String(),
		Alive: r.Alive,
		Eaten: r.Outcome.String(),
	}
}

// Collect records every round played so far into a new collector.
func (g *Game) Collect() *telemetry.Collector {
	c := telemetry.NewCollector(g.FlockSize())
	for _, r := range g.results {
		r.Record(c)
	}
	return c
}
