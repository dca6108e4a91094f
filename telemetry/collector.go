package telemetry

import "github.com/pthm-cable/chase/components"

// Collector accumulates per-round records for export and the run summary.
type Collector struct {
	flockSize int

	alive         []AliveRecord
	positions     []PositionsRecord
	captureRounds []int
}

// NewCollector creates a collector for a flock of the given initial size.
func NewCollector(flockSize int) *Collector {
	return &Collector{flockSize: flockSize}
}

// Record adds one round.
func (c *Collector) Record(round int, wolf components.Position, sheep []components.Position, alive int, captured bool) {
	c.alive = append(c.alive, AliveRecord{Round: round, Alive: alive})
	c.positions = append(c.positions, NewPositionsRecord(round, wolf, sheep))
	if captured {
		c.captureRounds = append(c.captureRounds, round)
	}
}

// Alive returns the alive-count rows recorded so far.
func (c *Collector) Alive() []AliveRecord {
	return c.alive
}

// Positions returns the position records recorded so far.
func (c *Collector) Positions() []PositionsRecord {
	return c.positions
}

// CaptureRounds returns the rounds in which a sheep was eaten.
func (c *Collector) CaptureRounds() []int {
	return c.captureRounds
}

// Summary computes the run summary from everything recorded.
func (c *Collector) Summary() Summary {
	counts := make([]int, len(c.alive))
	for i, r := range c.alive {
		counts[i] = r.Alive
	}
	return Summarize(c.flockSize, counts, c.captureRounds)
}
