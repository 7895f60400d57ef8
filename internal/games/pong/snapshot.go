package pong

// Snapshot captures the observable match state.
type Snapshot struct {
	Tick       int
	Ball, Vel  Vec
	LeftY      float64
	RightY     float64
	LeftScore  int
	RightScore int
	Hits       int
	Winner     Side
	GameOver   bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Ball:       g.ball,
		Vel:        g.vel,
		LeftY:      g.leftY,
		RightY:     g.rightY,
		LeftScore:  g.leftScore,
		RightScore: g.rightScore,
		Hits:       g.hits,
		Winner:     g.winner,
		GameOver:   g.gameOver,
	}
}
