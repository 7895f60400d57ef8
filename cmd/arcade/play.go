package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/platform/tui"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start the specified game directly, without the launcher.

Controls:
  Arrows/WASD  - Move (Up rotates in Tetris; WASD is player two in versus)
  Space        - Fire / launch / hard drop
  P            - Pause
  R            - Restart
  Ctrl+S       - Save a text screenshot
  Esc/Q        - Quit

Difficulty options:
  easy   - Start at the lowest level and speed up
  normal - Start at 30% and speed up
  hard   - Start at 70% and speed up
  fixed  - No progression

Without --difficulty the preset chosen in the launcher settings is used.

Examples:
  arcade play snake
  arcade play tetris --difficulty hard
  arcade play breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if flagDifficulty != "" && !slices.Contains(config.Presets, config.DifficultyPreset(flagDifficulty)) {
		return fmt.Errorf("unknown difficulty %q, expected one of %v", flagDifficulty, config.Presets)
	}
	if err := config.CheckFile(gameID, flagConfig); err != nil {
		return err
	}

	opts := options()
	opts.ConfigPath = flagConfig
	opts.Difficulty = flagDifficulty

	ctx, cleanup, err := newContext(opts, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	w, h := terminalSize()
	return tui.RunGame(ctx, gameID, w, h)
}
