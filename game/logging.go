package game

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/chase/components"
)

// Tracer observes the chase at fixed points. Implementations must not modify
// the game.
type Tracer interface {
	SheepPlaced(i int, pos components.Position)
	WolfPlaced(pos components.Position)
	SheepMoved(i int, from, to components.Position)
	WolfMoved(from, to components.Position)
	SheepEaten(i int)
	RoundEnded(res RoundResult)
}

// NopTracer discards every event.
type NopTracer struct{}

func (NopTracer) SheepPlaced(int, components.Position) {}
func (NopTracer) WolfPlaced(components.Position) {}
func (NopTracer) SheepMoved(int, components.Position, components.Position) {}
func (NopTracer) WolfMoved(components.Position, components.Position) {}
func (NopTracer) SheepEaten(int) {}
func (NopTracer) RoundEnded(RoundResult) {}

// LogTracer writes chase events to a slog.Logger. Placement, moves and
// captures log at Info; round summaries at Debug.
type LogTracer struct {
	logger *slog.Logger
}

// NewLogTracer returns a tracer logging to logger, or to slog.Default() if nil.
func NewLogTracer(logger *slog.Logger) *LogTracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTracer{logger: logger}
}

func (t *LogTracer) SheepPlaced(i int, pos components.Position) {
	t.logger.Info("sheep placed", "sheep", i, "pos", pos.String())
}

func (t *LogTracer) WolfPlaced(pos components.Position) {
	t.logger.Info("wolf placed", "pos", pos.String())
}

func (t *LogTracer) SheepMoved(i int, from, to components.Position) {
	// Called for every sheep every round
	if !t.logger.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	t.logger.Info("sheep moved", "sheep", i, "from", from.String(), "to", to.String())
}

func (t *LogTracer) WolfMoved(from, to components.Position) {
	t.logger.Info("wolf moved", "from", from.String(), "to", to.String())
}

func (t *LogTracer) SheepEaten(i int) {
	t.logger.Info("wolf ate sheep", "sheep", i)
}

func (t *LogTracer) RoundEnded(res RoundResult) {
	t.logger.Debug("round ended", "result", res)
}
