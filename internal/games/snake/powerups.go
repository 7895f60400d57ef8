package snake

import "github.com/vovakirdan/classic-arcade/internal/core"

// PowerUpKind is a bonus item that may appear after eating.
type PowerUpKind int

const (
	PowerUpSpeed  PowerUpKind = iota // double pace for a while
	PowerUpShrink                    // cut the tail for a point
	PowerUpLife                      // one extra life
	powerUpKinds
)

func (k PowerUpKind) glyph() (rune, core.Color) {
	switch k {
	case PowerUpSpeed:
		return '»', core.ColorBrightMagenta
	case PowerUpShrink:
		return '◆', core.ColorBrightCyan
	default:
		return '♥', core.ColorBrightYellow
	}
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpShrink:
		return "shrink"
	case PowerUpLife:
		return "life"
	default:
		return "unknown"
	}
}

// PowerUp is an item lying on the board until ExpiresAt.
type PowerUp struct {
	Kind      PowerUpKind
	Pos       core.Point
	ExpiresAt uint64
}

// maybeSpawnPowerUp rolls the spawn chance and drops a random item on a
// free cell.
func (g *Game) maybeSpawnPowerUp() {
	pc := g.cfg.PowerUps
	if pc.SpawnChance <= 0 || g.rng.Intn(100) >= pc.SpawnChance {
		return
	}
	var free []core.Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := core.Point{X: x, Y: y}
			if p != g.food && !g.isSnakeAt(p) && g.powerUpAt(p) < 0 {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return
	}
	g.powerUps = append(g.powerUps, PowerUp{
		Kind:      PowerUpKind(g.rng.Intn(int(powerUpKinds))),
		Pos:       free[g.rng.Intn(len(free))],
		ExpiresAt: g.tick + uint64(max(pc.LifetimeTicks, 1)),
	})
}

// powerUpAt returns the index of the item at p, or -1.
func (g *Game) powerUpAt(p core.Point) int {
	for i, pu := range g.powerUps {
		if pu.Pos == p {
			return i
		}
	}
	return -1
}

// expirePowerUps removes items whose time on the board is over.
func (g *Game) expirePowerUps() {
	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		if pu.ExpiresAt > g.tick {
			kept = append(kept, pu)
		}
	}
	g.powerUps = kept
}

// collect applies the item under the head, if any.
func (g *Game) collect() {
	i := g.powerUpAt(g.snake[0])
	if i < 0 {
		return
	}
	kind := g.powerUps[i].Kind
	g.powerUps = append(g.powerUps[:i], g.powerUps[i+1:]...)

	pc := g.cfg.PowerUps
	switch kind {
	case PowerUpSpeed:
		g.boostUntil = max(g.boostUntil, g.tick+uint64(max(pc.BoostTicks, 0)))
	case PowerUpShrink:
		n := min(pc.ShrinkBy, len(g.snake)-1)
		if n > 0 {
			g.snake = g.snake[:len(g.snake)-n]
		}
		g.score += pc.ShrinkPoints
	case PowerUpLife:
		g.lives++
	}
}

// boosted reports whether a speed item is in force.
func (g *Game) boosted() bool {
	return g.boostUntil > g.tick
}

// crash spends an extra life to respawn, or ends the game.
func (g *Game) crash() {
	if g.lives <= 0 {
		g.gameOver = true
		return
	}
	g.lives--
	g.score = max(0, g.score-1)
	g.boostUntil = 0
	g.initSnake()

	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		if !g.isSnakeAt(pu.Pos) {
			kept = append(kept, pu)
		}
	}
	g.powerUps = kept
	if g.isSnakeAt(g.food) {
		g.spawnFood()
	}
}
