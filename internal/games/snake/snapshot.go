package snake

import "github.com/vovakirdan/classic-arcade/internal/core"

// Snapshot captures the observable state for determinism checks.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.Point
	Dir      Direction
	Food     core.Point
	PowerUps int
	Lives    int
	Boosted  bool
	GameOver bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		Dir:      g.direction,
		Food:     g.food,
		PowerUps: len(g.powerUps),
		Lives:    g.lives,
		Boosted:  g.boosted(),
		GameOver: g.gameOver,
	}
	if len(g.snake) > 0 {
		s.Head = g.snake[0]
	}
	return s
}
