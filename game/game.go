// Package game runs the wolf and sheep chase: it owns the ECS world, plays
// rounds and records their results.
package game

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/chase/components"
	"github.com/pthm-cable/chase/systems"
)

// ErrInvalidOptions is wrapped by NewGame when an option is out of range.
var ErrInvalidOptions = errors.New("invalid options")

// State is the driver state.
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Options configures a chase.
type Options struct {
	InitPosLimit  float64 // sheep spawn in [-limit, limit] on both axes
	SheepMoveDist float64
	WolfMoveDist  float64
	SheepCount    int
	Rounds        int   // round limit, rounds run 1..Rounds
	Seed          int64 // used when Source is nil

	Source    systems.Source                  // optional, overrides Seed
	Placement func(i int) components.Position // optional, overrides random sheep placement
	Tracer    Tracer                          // optional, defaults to NopTracer
	Pause     func(RoundResult)               // optional, called after every round
}

func (o Options) validate() error {
	switch {
	case o.InitPosLimit <= 0:
		return fmt.Errorf("%w: init position limit must be positive, got %v", ErrInvalidOptions, o.InitPosLimit)
	case o.SheepMoveDist <= 0:
		return fmt.Errorf("%w: sheep move distance must be positive, got %v", ErrInvalidOptions, o.SheepMoveDist)
	case o.WolfMoveDist <= 0:
		return fmt.Errorf("%w: wolf move distance must be positive, got %v", ErrInvalidOptions, o.WolfMoveDist)
	case o.SheepCount < 0:
		return fmt.Errorf("%w: sheep count must not be negative, got %d", ErrInvalidOptions, o.SheepCount)
	case o.Rounds < 0:
		return fmt.Errorf("%w: round limit must not be negative, got %d", ErrInvalidOptions, o.Rounds)
	}
	return nil
}

// Game holds the complete chase state.
type Game struct {
	world  *ecs.World
	rng    systems.Source
	tracer Tracer
	pause  func(RoundResult)

	// Entity mappers
	sheepMapper *ecs.Map3[components.Position, components.Stride, components.Sheep]
	wolfMapper  *ecs.Map3[components.Position, components.Stride, components.Wolf]
	sheepFilter *ecs.Filter1[components.Sheep]

	// Individual component mappers for lookups
	posMap    *ecs.Map1[components.Position]
	strideMap *ecs.Map1[components.Stride]
	sheepMap  *ecs.Map1[components.Sheep]
	wolfMap   *ecs.Map1[components.Wolf]

	// Flock order is the sheep identity used in results and logs
	flock []ecs.Entity
	wolf  ecs.Entity

	// Scratch buffer reused by every hunt
	herd []systems.Target

	// State
	state       State
	round       int
	roundLimit  int
	results     []RoundResult
	aliveSeries []int
}

// NewGame builds the flock and the wolf. The game starts Running unless there
// is nothing to play (no sheep or no rounds), in which case it is already
// Terminated.
func NewGame(opts Options) (*Game, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	world := ecs.NewWorld()

	g := &Game{
		world:       world,
		rng:         opts.Source,
		tracer:      opts.Tracer,
		pause:       opts.Pause,
		roundLimit:  opts.Rounds,
		sheepMapper: ecs.NewMap3[components.Position, components.Stride, components.Sheep](world),
		wolfMapper:  ecs.NewMap3[components.Position, components.Stride, components.Wolf](world),
		sheepFilter: ecs.NewFilter1[components.Sheep](world),
		posMap:      ecs.NewMap1[components.Position](world),
		strideMap:   ecs.NewMap1[components.Stride](world),
		sheepMap:    ecs.NewMap1[components.Sheep](world),
		wolfMap:     ecs.NewMap1[components.Wolf](world),
	}
	if g.rng == nil {
		g.rng = systems.NewSource(opts.Seed)
	}
	if g.tracer == nil {
		g.tracer = NopTracer{}
	}

	g.spawnFlock(opts)
	g.spawnWolf(opts.WolfMoveDist)

	if g.roundLimit == 0 || g.Alive() == 0 {
		g.state = StateTerminated
	}

	return g, nil
}

// spawnFlock creates the sheep in index order.
func (g *Game) spawnFlock(opts Options) {
	g.flock = make([]ecs.Entity, 0, opts.SheepCount)
	g.herd = make([]systems.Target, opts.SheepCount)

	for i := 0; i < opts.SheepCount; i++ {
		var pos components.Position
		if opts.Placement != nil {
			pos = opts.Placement(i)
		} else {
			pos = systems.Spawn(g.rng, opts.InitPosLimit)
		}
		stride := components.Stride{Distance: opts.SheepMoveDist}
		sheep := components.Sheep{Alive: true}

		e := g.sheepMapper.NewEntity(&pos, &stride, &sheep)
		g.flock = append(g.flock, e)
		g.tracer.SheepPlaced(i, pos)
	}
}

// spawnWolf creates the wolf at the origin.
func (g *Game) spawnWolf(moveDist float64) {
	pos := components.Position{}
	stride := components.Stride{Distance: moveDist}
	wolf := components.Wolf{}

	g.wolf = g.wolfMapper.NewEntity(&pos, &stride, &wolf)
	g.tracer.WolfPlaced(pos)
}

// Step plays the next round. It returns false, without doing anything, once
// the game is Terminated.
func (g *Game) Step() (RoundResult, bool) {
	if g.state == StateTerminated {
		return RoundResult{}, false
	}

	g.round++
	res := g.runRound(g.round)

	g.results = append(g.results, res)
	g.aliveSeries = append(g.aliveSeries, res.Alive)

	if g.round >= g.roundLimit || res.Alive == 0 {
		g.state = StateTerminated
	}

	if g.pause != nil {
		g.pause(res)
	}

	return res, true
}

// Run steps until the game is Terminated and returns every round result.
func (g *Game) Run() []RoundResult {
	for {
		if _, ok := g.Step(); !ok {
			return g.results
		}
	}
}

// State returns the driver state.
func (g *Game) State() State {
	return g.state
}

// Round returns the number of rounds played so far.
func (g *Game) Round() int {
	return g.round
}

// RoundLimit returns the configured round limit.
func (g *Game) RoundLimit() int {
	return g.roundLimit
}

// Results returns the ordered round results. Callers must not modify them.
func (g *Game) Results() []RoundResult {
	return g.results
}

// AliveSeries returns the alive sheep count after each round.
func (g *Game) AliveSeries() []int {
	return g.aliveSeries
}

// FlockSize returns the initial number of sheep.
func (g *Game) FlockSize() int {
	return len(g.flock)
}

// Alive counts the living sheep.
func (g *Game) Alive() int {
	n := 0
	query := g.sheepFilter.Query()
	for query.Next() {
		if query.Get().Alive {
			n++
		}
	}
	return n
}

// Eaten returns the number of sheep the wolf has eaten.
func (g *Game) Eaten() int {
	return g.wolfMap.Get(g.wolf).Eaten
}

// WolfPosition returns the wolf's current position.
func (g *Game) WolfPosition() components.Position {
	return *g.posMap.Get(g.wolf)
}

// Flock returns the current state of every sheep in flock order.
func (g *Game) Flock() []SheepState {
	out := make([]SheepState, len(g.flock))
	for i, e := range g.flock {
		out[i] = SheepState{Pos: *g.posMap.Get(e), Alive: g.sheepMap.Get(e).Alive}
	}
	return out
}
