package breakout

// Snapshot captures the observable game state for determinism checks.
type Snapshot struct {
	Tick            int
	Phase           Phase
	Score           int
	Lives           int
	PaddleX         Fixed
	PaddleWidth     int
	Ball            Ball
	ExtraBalls      int
	Pickups         int
	Effects         int
	BricksRemaining int
	ServeDelay      int
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tick,
		Phase:           g.phase,
		Score:           g.score,
		Lives:           g.lives,
		PaddleX:         g.paddle.X,
		PaddleWidth:     g.paddle.Width,
		Ball:            g.ball,
		ExtraBalls:      len(g.extra),
		Pickups:         len(g.power.Pickups),
		Effects:         len(g.power.Effects),
		BricksRemaining: g.wall.CountAlive(),
		ServeDelay:      g.serveDelay,
	}
}
