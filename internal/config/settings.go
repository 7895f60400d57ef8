package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user config and state directories.
const AppName = "classic-arcade"

// Settings are the user choices persisted between runs.
type Settings struct {
	Difficulty map[string]DifficultyPreset `yaml:"difficulty"`
}

// DefaultSettingsPath returns the XDG settings file location, creating parent dirs.
func DefaultSettingsPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join(AppName, "settings.yaml"))
	if err != nil {
		return "", fmt.Errorf("config: settings path: %w", err)
	}
	return p, nil
}

// LoadSettings reads settings from path. A missing file yields empty settings.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{Difficulty: make(map[string]DifficultyPreset)}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return &Settings{Difficulty: make(map[string]DifficultyPreset)},
			fmt.Errorf("config: parse settings %s: %w", path, err)
	}
	if s.Difficulty == nil {
		s.Difficulty = make(map[string]DifficultyPreset)
	}
	for id, p := range s.Difficulty {
		s.Difficulty[id] = ParsePreset(string(p))
	}
	return s, nil
}

// Save writes settings to path.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write settings %s: %w", path, err)
	}
	return nil
}

// Preset returns the difficulty chosen for a game, normal if unset.
func (s *Settings) Preset(gameID string) DifficultyPreset {
	if p, ok := s.Difficulty[gameID]; ok {
		return p
	}
	return DifficultyNormal
}

// SetPreset records the difficulty for a game.
func (s *Settings) SetPreset(gameID string, p DifficultyPreset) {
	if s.Difficulty == nil {
		s.Difficulty = make(map[string]DifficultyPreset)
	}
	s.Difficulty[gameID] = p
}

// Clone returns an independent copy.
func (s *Settings) Clone() *Settings {
	c := &Settings{Difficulty: make(map[string]DifficultyPreset, len(s.Difficulty))}
	for k, v := range s.Difficulty {
		c.Difficulty[k] = v
	}
	return c
}
