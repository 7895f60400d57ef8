package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() on missing file error = %v", err)
	}
	if s.Preset("tetris") != DifficultyNormal {
		t.Errorf("Preset() default = %s, expected normal", s.Preset("tetris"))
	}

	s.SetPreset("tetris", DifficultyHard)
	s.SetPreset("pong", DifficultyFixed)
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if loaded.Preset("tetris") != DifficultyHard || loaded.Preset("pong") != DifficultyFixed {
		t.Errorf("loaded settings = %+v", loaded.Difficulty)
	}
}

func TestSettingsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  snake: insane\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Preset("snake") != DifficultyNormal {
		t.Errorf("unknown preset should load as normal, got %s", s.Preset("snake"))
	}

	if err := os.WriteFile(path, []byte("difficulty: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = LoadSettings(path)
	if err == nil {
		t.Error("LoadSettings() on malformed file should fail")
	}
	if s == nil || s.Difficulty == nil {
		t.Error("LoadSettings() should still return usable settings")
	}
}

func TestSettingsClone(t *testing.T) {
	s := &Settings{}
	s.SetPreset("snake", DifficultyEasy)
	c := s.Clone()
	c.SetPreset("snake", DifficultyHard)
	if s.Preset("snake") != DifficultyEasy {
		t.Error("Clone() should not share the map")
	}
}
