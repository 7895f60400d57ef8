package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		target   any
		expected any
	}{
		{"snake", defaultSnakeYAML, &SnakeConfig{}, DefaultSnakeConfig()},
		{"pong", defaultPongYAML, &PongConfig{}, DefaultPongConfig()},
		{"breakout", defaultBreakoutYAML, &BreakoutConfig{}, DefaultBreakoutConfig()},
		{"invaders", defaultInvadersYAML, &InvadersConfig{}, DefaultInvadersConfig()},
		{"tetris", defaultTetrisYAML, &TetrisConfig{}, DefaultTetrisConfig()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := yaml.Unmarshal(tc.data, tc.target); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			got := reflect.ValueOf(tc.target).Elem().Interface()
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("embedded %s = %+v\nexpected %+v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	data := "board:\n  width: 12\ngravity:\n  lines_per_level: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Gravity.LinesPerLevel != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Board.Height = %d, expected default 20 for unset field", cfg.Board.Height)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSnake() with missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("LoadSnake() with malformed yaml should fail")
	}
}

func TestPresets(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be hard")
	}
	if ParsePreset("bogus") != DifficultyNormal {
		t.Error("unknown preset should parse as normal")
	}
	if DifficultyFixed.Next(1) != DifficultyEasy {
		t.Errorf("fixed.Next(1) = %s, expected easy", DifficultyFixed.Next(1))
	}
	if DifficultyEasy.Next(-1) != DifficultyFixed {
		t.Errorf("easy.Next(-1) = %s, expected fixed", DifficultyEasy.Next(-1))
	}

	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 || cfg.Gameplay.Lives != 2 {
		t.Errorf("hard preset not applied: %+v", cfg)
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("board:\n  width: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.yaml")

	tests := []struct {
		name    string
		gameID  string
		path    string
		wantErr bool
	}{
		{"no path", "snake", "", false},
		{"valid", "snake", good, false},
		{"missing snake", "snake", missing, true},
		{"missing pong", "pong", missing, true},
		{"missing breakout", "breakout", missing, true},
		{"missing invaders", "invaders", missing, true},
		{"missing tetris", "tetris", missing, true},
		{"malformed", "tetris", bad, true},
		{"unknown game", "pacman", missing, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFile(tt.gameID, tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckFile(%q, %q) error = %v, wantErr %v", tt.gameID, tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestSnakeEasyPresetAddsLife(t *testing.T) {
	cfg := DefaultSnakeConfig()
	base := cfg.Gameplay.ExtraLives
	ApplySnakePreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.ExtraLives != base+1 {
		t.Errorf("ExtraLives = %d, expected %d", cfg.Gameplay.ExtraLives, base+1)
	}

	cfg = DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyHard)
	if cfg.Gameplay.ExtraLives != base {
		t.Errorf("hard preset changed ExtraLives to %d", cfg.Gameplay.ExtraLives)
	}
}
