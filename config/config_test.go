package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Terrain.InitPosLimit != 10.0 {
		t.Errorf("InitPosLimit = %v, want 10", cfg.Terrain.InitPosLimit)
	}
	if cfg.Movement.WolfMoveDist != 1.0 {
		t.Errorf("WolfMoveDist = %v, want 1", cfg.Movement.WolfMoveDist)
	}
	if cfg.Movement.SheepMoveDist != 0.5 {
		t.Errorf("SheepMoveDist = %v, want 0.5", cfg.Movement.SheepMoveDist)
	}
	if cfg.Simulation.Rounds != 50 || cfg.Simulation.Sheep != 15 {
		t.Errorf("Rounds/Sheep = %d/%d, want 50/15", cfg.Simulation.Rounds, cfg.Simulation.Sheep)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chase.yaml")
	data := "movement:\n  wolf_move_dist: 2.5\nsimulation:\n  sheep: 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Movement.WolfMoveDist != 2.5 {
		t.Errorf("WolfMoveDist = %v, want 2.5", cfg.Movement.WolfMoveDist)
	}
	if cfg.Simulation.Sheep != 3 {
		t.Errorf("Sheep = %d, want 3", cfg.Simulation.Sheep)
	}
	// Untouched fields keep their defaults
	if cfg.Movement.SheepMoveDist != 0.5 {
		t.Errorf("SheepMoveDist = %v, want default 0.5", cfg.Movement.SheepMoveDist)
	}
	if cfg.Simulation.Rounds != 50 {
		t.Errorf("Rounds = %d, want default 50", cfg.Simulation.Rounds)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("movement: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(c *Config) {}, ""},
		{"zero sheep and rounds", func(c *Config) { c.Simulation.Sheep = 0; c.Simulation.Rounds = 0 }, ""},
		{"zero limit", func(c *Config) { c.Terrain.InitPosLimit = 0 }, "init_pos_limit"},
		{"negative wolf", func(c *Config) { c.Movement.WolfMoveDist = -1 }, "wolf_move_dist"},
		{"zero sheep step", func(c *Config) { c.Movement.SheepMoveDist = 0 }, "sheep_move_dist"},
		{"negative rounds", func(c *Config) { c.Simulation.Rounds = -1 }, "simulation.rounds"},
		{"negative sheep", func(c *Config) { c.Simulation.Sheep = -3 }, "simulation.sheep"},
		{"bad level", func(c *Config) { c.Output.LogLevel = "LOUD" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Defaults()
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllFields(t *testing.T) {
	cfg, _ := Defaults()
	cfg.Terrain.InitPosLimit = -1
	cfg.Simulation.Sheep = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "init_pos_limit") || !strings.Contains(msg, "simulation.sheep") {
		t.Errorf("error should name both fields, got %q", msg)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"WARNING", LevelWarn},
		{"warn", LevelWarn},
		{"ERROR", LevelError},
		{"CRITICAL", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLogLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseLogLevel("TRACE"); err == nil {
		t.Error("expected error for TRACE")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, _ := Defaults()
	cfg.Simulation.Seed = 1234
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", *loaded, *cfg)
	}
}
