// Chase viewer - interactive visualization of the wolf and sheep chase.
//
// Usage: go run ./cmd/chaseview [-config chase.yaml] [-seed N]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chase/components"
	"github.com/pthm-cable/chase/config"
	"github.com/pthm-cable/chase/game"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	fieldSize    = 680
	panelX       = fieldSize + 30
	panelWidth   = windowWidth - panelX - 20
)

// viewport maps chase coordinates onto the square field on screen.
type viewport struct {
	half float64 // world units from center to edge
}

func (v viewport) toScreen(p components.Position) rl.Vector2 {
	scale := float64(fieldSize) / (2 * v.half)
	return rl.Vector2{
		X: float32(20 + (p.X+v.half)*scale),
		Y: float32(20 + (v.half-p.Y)*scale),
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}

	newGame := func() *game.Game {
		g, err := game.NewGame(game.Options{
			InitPosLimit:  cfg.Terrain.InitPosLimit,
			SheepMoveDist: cfg.Movement.SheepMoveDist,
			WolfMoveDist:  cfg.Movement.WolfMoveDist,
			SheepCount:    cfg.Simulation.Sheep,
			Rounds:        cfg.Simulation.Rounds,
			Seed:          cfg.Simulation.Seed,
		})
		if err != nil {
			slog.Error("failed to create chase", "error", err)
			os.Exit(1)
		}
		slog.Info("chase ready", "seed", cfg.Simulation.Seed)
		return g
	}
	g := newGame()

	rl.InitWindow(windowWidth, windowHeight, "Wolf and Sheep")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// Leave room for sheep wandering past the spawn square
	view := viewport{half: cfg.Terrain.InitPosLimit * 1.5}

	playing := false
	var roundsPerSec float32 = 4
	var sinceStep float32

	for !rl.WindowShouldClose() {
		if playing {
			sinceStep += rl.GetFrameTime()
			if sinceStep >= 1/roundsPerSec {
				sinceStep = 0
				if _, ok := g.Step(); !ok {
					playing = false
				}
			}
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			g.Step()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawField(g, view)

		// Control panel
		y := float32(20)
		rl.DrawText("Wolf and Sheep", panelX, int32(y), 20, rl.DarkGray)
		y += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 120, Height: 30}, toggleText(playing, "Pause", "Play")) {
			playing = !playing && g.State() == game.StateRunning
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: y, Width: 120, Height: 30}, "Step") {
			g.Step()
		}
		y += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 120, Height: 30}, "Reset") {
			g = newGame()
			playing = false
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: y, Width: 120, Height: 30}, "New Seed") {
			cfg.Simulation.Seed = time.Now().UnixNano()
			g = newGame()
			playing = false
		}
		y += 50

		rl.DrawText("Rounds per second", panelX, int32(y), 14, rl.Gray)
		y += 18
		roundsPerSec = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: y, Width: float32(panelWidth - 60), Height: 20},
			"1", "30",
			roundsPerSec, 1, 30,
		)
		rl.DrawText(fmt.Sprintf("%.0f", roundsPerSec), int32(panelX+panelWidth-50), int32(y+2), 16, rl.DarkGray)
		y += 45

		drawStats(g, y)

		rl.DrawText("Space: step one round", panelX, windowHeight-30, 12, rl.LightGray)
		rl.EndDrawing()
	}
}

// drawField draws the plane, the wolf's trail, the flock and the wolf.
func drawField(g *game.Game, view viewport) {
	rl.DrawRectangle(20, 20, fieldSize, fieldSize, rl.Color{R: 200, G: 230, B: 190, A: 255})
	rl.DrawRectangleLines(20, 20, fieldSize, fieldSize, rl.DarkGray)

	origin := view.toScreen(components.Position{})
	rl.DrawLineV(rl.Vector2{X: 20, Y: origin.Y}, rl.Vector2{X: 20 + fieldSize, Y: origin.Y}, rl.Fade(rl.DarkGray, 0.3))
	rl.DrawLineV(rl.Vector2{X: origin.X, Y: 20}, rl.Vector2{X: origin.X, Y: 20 + fieldSize}, rl.Fade(rl.DarkGray, 0.3))

	// Wolf trail starts at the origin
	prev := origin
	for _, r := range g.Results() {
		p := view.toScreen(r.Wolf)
		rl.DrawLineV(prev, p, rl.Fade(rl.DarkGray, 0.4))
		prev = p
	}

	for _, s := range g.Flock() {
		p := view.toScreen(s.Pos)
		if s.Alive {
			rl.DrawCircleV(p, 5, rl.White)
			rl.DrawCircleLines(int32(p.X), int32(p.Y), 5, rl.Gray)
		} else {
			rl.DrawCircleV(p, 3, rl.Fade(rl.Maroon, 0.5))
		}
	}

	rl.DrawCircleV(view.toScreen(g.WolfPosition()), 7, rl.DarkGray)
}

// drawStats draws the round counters under the controls.
func drawStats(g *game.Game, y float32) {
	lines := []string{
		fmt.Sprintf("Round: %d / %d", g.Round(), g.RoundLimit()),
		fmt.Sprintf("Alive sheep: %d / %d", g.Alive(), g.FlockSize()),
		fmt.Sprintf("Eaten: %d", g.Eaten()),
		fmt.Sprintf("Wolf: %s", g.WolfPosition()),
		fmt.Sprintf("State: %s", g.State()),
	}
	if results := g.Results(); len(results) > 0 {
		lines = append(lines, fmt.Sprintf("Last eaten: %s", results[len(results)-1].Outcome))
	}
	for _, line := range lines {
		rl.DrawText(line, panelX, int32(y), 16, rl.DarkGray)
		y += 22
	}
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
