package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/chase/config"
	"github.com/pthm-cable/chase/game"
)

// FitnessEvaluator runs headless chases and scores how close they finish
// to a target round.
type FitnessEvaluator struct {
	params     *ParamVector
	target     float64
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	bestFitness float64
	lastMean    float64 // mean finishing round from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, target float64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		target:      target,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// LastMean returns the mean finishing round from the most recent evaluation.
func (fe *FitnessEvaluator) LastMean() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMean
}

// BestFitness returns the lowest fitness seen so far.
func (fe *FitnessEvaluator) BestFitness() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestFitness
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Fitness is the mean squared distance between the round a chase ends and
// the target. A chase that reaches the round limit with sheep left counts as
// ending one round past the limit.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	finished := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			finished[idx] = float64(runChase(cfg, s))
		}(i, seed)
	}
	wg.Wait()

	var sq float64
	for _, f := range finished {
		d := f - fe.target
		sq += d * d
	}
	fitness := sq / float64(len(finished))

	fe.mu.Lock()
	fe.bestFitness = min(fe.bestFitness, fitness)
	fe.lastMean = stat.Mean(finished, nil)
	fe.mu.Unlock()

	return fitness
}

// runChase plays one headless chase and returns the round it finished on.
func runChase(cfg *config.Config, seed int64) int {
	g, err := game.NewGame(game.Options{
		InitPosLimit:  cfg.Terrain.InitPosLimit,
		SheepMoveDist: cfg.Movement.SheepMoveDist,
		WolfMoveDist:  cfg.Movement.WolfMoveDist,
		SheepCount:    cfg.Simulation.Sheep,
		Rounds:        cfg.Simulation.Rounds,
		Seed:          seed,
	})
	if err != nil {
		// Out-of-range vectors are clamped, so this is a broken base config.
		return cfg.Simulation.Rounds + 1
	}
	g.Run()
	if g.Alive() > 0 {
		return g.Round() + 1
	}
	return g.Round()
}

func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
