package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher",
	Long: `Start the arcade launcher: a grid of games plus a settings entry.

Controls:
  Arrows/WASD  - Move the selection
  Enter        - Play the selected game or open settings
  Tab          - High scores
  Esc/Q        - Quit

In a game, Esc returns to the launcher.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	ctx, cleanup, err := newContext(options(), nil)
	if err != nil {
		return err
	}
	defer cleanup()

	w, h := terminalSize()
	return tui.Run(ctx, w, h)
}
