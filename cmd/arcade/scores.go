package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/registry"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 scores for the specified game.

Examples:
  arcade scores tetris
  arcade scores snake --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	desc, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if flagDBPath == "-" {
		return storage.ErrNoStore
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(ctx, gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Scores for %s cleared.\n", desc.Title)
		return nil
	}

	scores, err := store.TopScores(ctx, gameID, storage.DefaultTopN)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", desc.Title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(ctx, gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d   Plays: %d   Average: %.1f\n", stats.Best, stats.Plays, stats.Average)
	return nil
}
