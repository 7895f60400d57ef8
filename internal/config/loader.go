package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<name> -> ./configs/<name> -> embedded -> hardcoded.
// Only an explicit customPath can fail; other sources are skipped when unreadable.
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, p := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// userConfigPath returns ~/.arcade/configs/<filename>, or empty if home is unknown.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake.yaml", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong.yaml", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout.yaml", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

// LoadInvaders loads Space Invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load("invaders.yaml", customPath, defaultInvadersYAML, DefaultInvadersConfig)
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris.yaml", customPath, defaultTetrisYAML, DefaultTetrisConfig)
}

// CheckFile loads customPath as the config of gameID and reports read or
// parse failures. Games fall back to defaults on error, so callers with an
// explicit path check it up front. Unknown game IDs are not checked.
func CheckFile(gameID, customPath string) error {
	if customPath == "" {
		return nil
	}
	var err error
	switch gameID {
	case "snake":
		_, err = LoadSnake(customPath)
	case "pong":
		_, err = LoadPong(customPath)
	case "breakout":
		_, err = LoadBreakout(customPath)
	case "invaders":
		_, err = LoadInvaders(customPath)
	case "tetris":
		_, err = LoadTetris(customPath)
	}
	return err
}

// ApplySnakePreset adjusts Snake for a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
	if preset == DifficultyEasy {
		cfg.Gameplay.ExtraLives++
	}
}

// ApplyPongPreset adjusts Pong for a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.CPU.Speed *= 0.7
		cfg.Paddle.Height++
	case DifficultyHard:
		cfg.CPU.Speed *= 1.4
	}
}

// ApplyBreakoutPreset adjusts Breakout for a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 10
		cfg.Physics.BallSpeed = 250
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 400
	}
}

// ApplyInvadersPreset adjusts Space Invaders for a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Fire.MaxEnemyBullets = 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Fire.EnemyMinCooldown /= 2
		cfg.Fire.EnemyMaxCooldown /= 2
	}
}

// ApplyTetrisPreset adjusts Tetris for a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}
