// arcade is a terminal arcade: Snake, Pong, Breakout, Space Invaders and
// Tetris behind a grid launcher.
//
// Usage:
//
//	arcade                   - Start the launcher
//	arcade play <game>       - Play one game directly
//	arcade list              - List available games
//	arcade scores <game>     - Show high scores for a game
//	arcade serve             - Serve the launcher over SSH
//
// Global flags:
//
//	--fps <rate>     - Tick rate (default: 60)
//	--seed <value>   - RNG seed for reproducible games
//	--db <path>      - Scores database (default: XDG data dir, "-" disables)
//	--assets <dir>   - Asset directory with games/ and icons/
//	-v, --verbose    - Debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/classic-arcade/internal/app"
	_ "github.com/vovakirdan/classic-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/classic-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/classic-arcade/internal/games/pong"
	_ "github.com/vovakirdan/classic-arcade/internal/games/snake"
	_ "github.com/vovakirdan/classic-arcade/internal/games/tetris"
)

var (
	flagVerbose bool
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagAssets  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Classic arcade games in your terminal",
	Long: `Classic Arcade is a suite of five arcade games for the terminal:
Snake, Pong, Breakout, Space Invaders and Tetris.

Running arcade without a command opens the launcher.

Examples:
  arcade
  arcade play tetris
  arcade play snake --difficulty hard
  arcade scores breakout
  arcade serve --ssh :2222

Launcher layout can be tuned with MENU_BOX_SIZE, MENU_H_SPACING and
MENU_V_SPACING.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random per game)")
	pf.StringVar(&flagDBPath, "db", "", `Scores database path (default XDG data dir, "-" disables scores)`)
	pf.StringVar(&flagAssets, "assets", "assets", "Asset directory")

	rootCmd.AddCommand(menuCmd, playCmd, listCmd, scoresCmd, serveCmd)
}

// options collects the global flags.
func options() app.Options {
	return app.Options{
		Verbose:   flagVerbose,
		FPS:       flagFPS,
		Seed:      flagSeed,
		DBPath:    flagDBPath,
		AssetsDir: flagAssets,
	}
}

// newContext builds the app context with logs going to w, or to the log
// file when w is nil. The returned cleanup closes the store and the file.
func newContext(opts app.Options, w io.Writer) (*app.Context, func(), error) {
	var closers []func() error
	if w == nil {
		f, err := app.OpenLogFile()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
			w = io.Discard
		} else {
			w = f
			closers = append(closers, f.Close)
		}
	}
	logger := app.NewLogger(w, opts.Verbose)

	ctx, err := app.New(opts, logger)
	if err != nil {
		for _, c := range closers {
			c()
		}
		return nil, nil, err
	}
	cleanup := func() {
		if err := ctx.Close(); err != nil {
			logger.Warn("close store", "error", err)
		}
		for _, c := range closers {
			c()
		}
	}
	return ctx, cleanup, nil
}

// terminalSize returns the terminal size, 80x24 when unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
