package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/classic-arcade/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	flagDBPath, flagClear, flagDifficulty, flagConfig = "", false, "", ""
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsEveryGame(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"snake", "pong", "breakout", "invaders", "tetris"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestPlayRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown game", []string{"play", "pacman"}, "unknown game"},
		{"unknown difficulty", []string{"play", "snake", "--difficulty", "insane"}, "unknown difficulty"},
		{"missing config", []string{"play", "breakout", "--config", filepath.Join(t.TempDir(), "nope.yaml")}, "config: read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, expected %q", err, tt.want)
			}
		})
	}
}

func TestScores(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []int{40, 90} {
		if _, err := store.SaveScore(context.Background(), "tetris", s); err != nil {
			t.Fatal(err)
		}
	}
	store.Close()

	out, err := execute(t, "scores", "tetris", "--db", db)
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	for _, want := range []string{"High Scores - Tetris", "90", "Best: 90", "Plays: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "scores", "tetris", "--db", db, "--clear"); err != nil {
		t.Fatalf("scores --clear: %v", err)
	}
	out, err = execute(t, "scores", "tetris", "--db", db)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("scores not cleared:\n%s", out)
	}
}

func TestScoresWithoutStore(t *testing.T) {
	if _, err := execute(t, "scores", "snake", "--db", "-"); err != storage.ErrNoStore {
		t.Errorf("error = %v, expected ErrNoStore", err)
	}
}
