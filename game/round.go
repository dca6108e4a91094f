package game

import (
	"log/slog"

	"github.com/pthm-cable/chase/components"
	"github.com/pthm-cable/chase/systems"
)

// SheepState is one sheep as recorded at the end of a round.
type SheepState struct {
	Pos   components.Position
	Alive bool
}

// RoundResult records the outcome of one round. It is never modified after
// the round that produced it.
type RoundResult struct {
	Round   int
	Wolf    components.Position
	Outcome systems.Outcome
	Alive   int          // living sheep after the round
	Sheep   []SheepState // every sheep in flock order, dead ones at their last position
}

// LogValue implements slog.LogValuer for structured logging.
func (r RoundResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("round", r.Round),
		slog.String("wolf", r.Wolf.String()),
		slog.String("eaten", r.Outcome.String()),
		slog.Int("alive", r.Alive),
	)
}

// runRound moves every living sheep, then lets the wolf act.
func (g *Game) runRound(round int) RoundResult {
	g.moveFlock()
	outcome := g.hunt()

	res := RoundResult{
		Round:   round,
		Wolf:    g.WolfPosition(),
		Outcome: outcome,
		Alive:   g.Alive(),
		Sheep:   g.Flock(),
	}
	g.tracer.RoundEnded(res)
	return res
}

// moveFlock wanders every living sheep one stride.
func (g *Game) moveFlock() {
	for i, e := range g.flock {
		if !g.sheepMap.Get(e).Alive {
			continue
		}
		pos := g.posMap.Get(e)
		before := *pos
		systems.Wander(g.rng, pos, *g.strideMap.Get(e))
		g.tracer.SheepMoved(i, before, *pos)
	}
}

// hunt runs the wolf action over the whole flock and applies a capture.
func (g *Game) hunt() systems.Outcome {
	for i, e := range g.flock {
		g.herd[i] = systems.Target{Pos: *g.posMap.Get(e), Alive: g.sheepMap.Get(e).Alive}
	}

	pos := g.posMap.Get(g.wolf)
	before := *pos
	outcome := systems.Hunt(pos, *g.strideMap.Get(g.wolf), g.wolfMap.Get(g.wolf), g.herd)

	if idx, ok := outcome.Index(); ok {
		g.sheepMap.Get(g.flock[idx]).Alive = false
		g.tracer.SheepEaten(idx)
	} else {
		g.tracer.WolfMoved(before, *pos)
	}
	return outcome
}
