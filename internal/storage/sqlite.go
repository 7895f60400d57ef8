// Package storage keeps high scores in a SQLite database.
// It uses the pure-Go modernc.org/sqlite driver, so no CGO is needed.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/vovakirdan/classic-arcade/internal/config"
)

// DefaultTopN is the number of scores shown by the scoreboard and CLI.
const DefaultTopN = 10

const sqliteTime = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	score INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
`

// Store is a score database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one recorded game result.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates every result for one game.
type GameStats struct {
	GameID     string
	Plays      int
	Best       int
	Average    float64
	LastPlayed time.Time
}

// DefaultPath returns the scores database location in the XDG data dir.
func DefaultPath() (string, error) {
	p, err := xdg.DataFile(filepath.Join(config.AppName, "scores.db"))
	if err != nil {
		return "", fmt.Errorf("storage: default path: %w", err)
	}
	return p, nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand home: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Open opens or creates the database at path, creating parent directories
// and the schema as needed. An empty path means DefaultPath.
func Open(path string) (*Store, error) {
	var err error
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if path, err = expandHome(path); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a result and returns its row ID.
func (s *Store) SaveScore(ctx context.Context, gameID string, score int) (int64, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit results for a game, highest first.
// Ties keep insertion order. A non-positive limit means DefaultTopN.
func (s *Store) TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultTopN
	}
	return s.query(ctx,
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit)
}

// AllScores returns every result for a game, highest first.
func (s *Store) AllScores(ctx context.Context, gameID string) ([]ScoreEntry, error) {
	return s.query(ctx,
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC`,
		gameID)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var created any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &created); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read scores: %w", err)
	}
	return out, nil
}

// HighScore returns a game's best score, 0 when none is recorded.
func (s *Store) HighScore(ctx context.Context, gameID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every result for a game.
func (s *Store) ClearScores(ctx context.Context, gameID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: clear scores: %w", err)
	}
	return nil
}

// Stats aggregates a game's results. A game never played has zero Plays.
func (s *Store) Stats(ctx context.Context, gameID string) (GameStats, error) {
	all, err := s.AllStats(ctx)
	if err != nil {
		return GameStats{}, err
	}
	if st, ok := all[gameID]; ok {
		return st, nil
	}
	return GameStats{GameID: gameID}, nil
}

// AllStats aggregates results for every game that has any.
func (s *Store) AllStats(ctx context.Context) (map[string]GameStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), MAX(created_at)
		 FROM scores GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: query stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]GameStats)
	for rows.Next() {
		var st GameStats
		var last any
		if err := rows.Scan(&st.GameID, &st.Plays, &st.Best, &st.Average, &last); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		st.LastPlayed = parseTime(last)
		out[st.GameID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read stats: %w", err)
	}
	return out, nil
}

// parseTime accepts the driver's time.Time or SQLite's text timestamp.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ErrNoStore is reported by callers that need scores but run without a database.
var ErrNoStore = errors.New("storage: no score database")
