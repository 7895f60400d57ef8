package tetris

import (
	"hash/fnv"
)

// Snapshot captures the observable game state for determinism checks.
type Snapshot struct {
	Tick      int
	Score     int
	Level     int
	Lines     int
	Current   Piece
	Next      Kind
	BoardHash uint64
	GameOver  bool

	Mode          Mode
	RivalScore    int
	RivalGameOver bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	h := fnv.New64a()
	for _, row := range g.board.Cells {
		for _, k := range row {
			h.Write([]byte{byte(k)})
		}
	}
	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Level:     g.level,
		Lines:     g.lines,
		Current:   g.current,
		Next:      g.next,
		BoardHash: h.Sum64(),
		GameOver:  g.gameOver,
		Mode:      g.mode,
	}
	if g.rival != nil {
		snap.RivalScore = g.rival.score
		snap.RivalGameOver = g.rival.gameOver
	}
	return snap
}
