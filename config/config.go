// Package config provides configuration loading and access for the chase.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all chase configuration parameters.
type Config struct {
	Terrain    TerrainConfig    `yaml:"terrain"`
	Movement   MovementConfig   `yaml:"movement"`
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
}

// TerrainConfig holds the initial placement bounds.
type TerrainConfig struct {
	InitPosLimit float64 `yaml:"init_pos_limit"` // Sheep spawn in [-limit, limit] on both axes
}

// MovementConfig holds per-round step lengths.
type MovementConfig struct {
	WolfMoveDist  float64 `yaml:"wolf_move_dist"`
	SheepMoveDist float64 `yaml:"sheep_move_dist"`
}

// SimulationConfig holds run control parameters.
type SimulationConfig struct {
	Rounds int   `yaml:"rounds"` // Maximum number of rounds
	Sheep  int   `yaml:"sheep"`  // Initial flock size
	Seed   int64 `yaml:"seed"`   // RNG seed (0 = time-based)
	Wait   bool  `yaml:"wait"`   // Block for Enter after every round
}

// OutputConfig holds output locations.
type OutputConfig struct {
	Dir      string `yaml:"dir"`       // Directory for pos.json, alive.csv and chase.log
	LogLevel string `yaml:"log_level"` // Empty = no log file
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Defaults returns the embedded default configuration.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Validate reports every out-of-range field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Terrain.InitPosLimit <= 0 {
		errs = append(errs, fmt.Errorf("terrain.init_pos_limit must be positive, got %v", c.Terrain.InitPosLimit))
	}
	if c.Movement.WolfMoveDist <= 0 {
		errs = append(errs, fmt.Errorf("movement.wolf_move_dist must be positive, got %v", c.Movement.WolfMoveDist))
	}
	if c.Movement.SheepMoveDist <= 0 {
		errs = append(errs, fmt.Errorf("movement.sheep_move_dist must be positive, got %v", c.Movement.SheepMoveDist))
	}
	if c.Simulation.Rounds < 0 {
		errs = append(errs, fmt.Errorf("simulation.rounds must not be negative, got %d", c.Simulation.Rounds))
	}
	if c.Simulation.Sheep < 0 {
		errs = append(errs, fmt.Errorf("simulation.sheep must not be negative, got %d", c.Simulation.Sheep))
	}
	if c.Output.LogLevel != "" {
		if _, err := ParseLogLevel(c.Output.LogLevel); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogLevel mirrors slog levels without importing slog into config consumers.
type LogLevel int

// Supported log levels, numerically equal to their slog counterparts.
const (
	LevelDebug LogLevel = -4
	LevelInfo  LogLevel = 0
	LevelWarn  LogLevel = 4
	LevelError LogLevel = 8
)

// ParseLogLevel accepts DEBUG, INFO, WARNING/WARN, ERROR and CRITICAL (case-insensitive).
// CRITICAL maps to ERROR.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR", "CRITICAL":
		return LevelError, nil
	}
	return 0, fmt.Errorf("output.log_level %q: choose one of DEBUG, INFO, WARNING, ERROR, CRITICAL", s)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
