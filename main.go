package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/chase/config"
	"github.com/pthm-cable/chase/game"
	"github.com/pthm-cable/chase/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	dir := flag.String("dir", "", "Output directory for pos.json, alive.csv and chase.log")
	logLevel := flag.String("log", "", "Log level written to <dir>/chase.log: DEBUG, INFO, WARNING, ERROR, CRITICAL")
	rounds := flag.Int("rounds", 0, "Number of rounds (overrides config)")
	sheep := flag.Int("sheep", 0, "Number of sheep (overrides config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	wait := flag.Bool("wait", false, "Wait for Enter after every round")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Only flags given on the command line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Output.Dir = *dir
		case "log":
			cfg.Output.LogLevel = *logLevel
		case "rounds":
			cfg.Simulation.Rounds = *rounds
		case "sheep":
			cfg.Simulation.Sheep = *sheep
		case "seed":
			cfg.Simulation.Seed = *seed
		case "wait":
			cfg.Simulation.Wait = *wait
		}
	})

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("chase failed", "error", err)
		os.Exit(1)
	}
}

// run plays one chase from a validated config and writes its reports.
func run(cfg *config.Config, in io.Reader, out io.Writer) error {
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}

	om, err := telemetry.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, om)
	if err != nil {
		return err
	}
	defer closeLog()
	prev := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(prev)

	slog.Info("starting chase",
		"seed", cfg.Simulation.Seed,
		"rounds", cfg.Simulation.Rounds,
		"sheep", cfg.Simulation.Sheep,
		"wolf_move_dist", cfg.Movement.WolfMoveDist,
		"sheep_move_dist", cfg.Movement.SheepMoveDist,
		"init_pos_limit", cfg.Terrain.InitPosLimit,
	)

	stdin := bufio.NewReader(in)
	g, err := game.NewGame(game.Options{
		InitPosLimit:  cfg.Terrain.InitPosLimit,
		SheepMoveDist: cfg.Movement.SheepMoveDist,
		WolfMoveDist:  cfg.Movement.WolfMoveDist,
		SheepCount:    cfg.Simulation.Sheep,
		Rounds:        cfg.Simulation.Rounds,
		Seed:          cfg.Simulation.Seed,
		Tracer:        game.NewLogTracer(logger),
		Pause: func(res game.RoundResult) {
			if err := telemetry.WriteRoundRow(out, res.TableRow(), res.Round == 1); err != nil {
				slog.Warn("failed to print round", "round", res.Round, "error", err)
			}
			if cfg.Simulation.Wait {
				fmt.Fprint(out, "Press Enter to continue...")
				stdin.ReadString('\n')
			}
		},
	})
	if err != nil {
		return err
	}

	g.Run()

	collector := g.Collect()
	summary := collector.Summary()
	slog.Info("chase finished", "summary", summary)
	fmt.Fprintf(out, "Rounds: %d, eaten: %d, alive: %d\n", summary.Rounds, summary.Eaten, summary.FinalAlive)

	if err := om.WriteAlive(collector.Alive()); err != nil {
		return err
	}
	if err := om.WritePositions(collector.Positions()); err != nil {
		return err
	}
	if err := om.WriteSummary(summary); err != nil {
		return err
	}
	return om.WriteConfig(cfg)
}

// newLogger returns a JSON logger writing to <dir>/chase.log at the configured
// level, or to stderr at WARN when no level is configured.
func newLogger(cfg *config.Config, om *telemetry.OutputManager) (*slog.Logger, func(), error) {
	if cfg.Output.LogLevel == "" {
		h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		return slog.New(h), func() {}, nil
	}

	level, err := config.ParseLogLevel(cfg.Output.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Create(om.Path("chase.log"))
	if err != nil {
		return nil, nil, fmt.Errorf("creating log file: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.Level(level)})
	return slog.New(h), func() { f.Close() }, nil
}
