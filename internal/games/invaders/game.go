package invaders

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// ID is the registry key and asset directory name.
const ID = "invaders"

const (
	hudHeight = 1
	shipWidth = 3
	minW      = 40
	minH      = 16
)

var alienSprites = [...]string{"▀█▀", "/o\\", "<=>"}

// Game implements Space Invaders.
type Game struct {
	cfg        config.InvadersConfig
	fixedCfg   bool
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	width, height int
	shipX, shipY  int

	formation   *Formation
	shelters    Shelters
	playerShots []core.Point
	enemyShots  []core.Point

	tick           int
	marchTick      int
	bulletTick     int
	playerCooldown int
	enemyCooldown  int

	score    int
	lives    int
	wave     int
	gameOver bool
	paused   bool
}

// New creates a Space Invaders game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Space Invaders game with explicit tuning.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Space Invaders" }

// Reset starts wave one with full lives and fresh shelters.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.fixedCfg {
		cfg, err := config.LoadInvaders(rc.ConfigPath)
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
		config.ApplyInvadersPreset(&cfg, config.ParsePreset(rc.Difficulty))
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))

	g.width = max(rc.ScreenW, minW)
	g.height = max(rc.ScreenH, minH)
	g.shipY = g.height - 1
	g.shipX = (g.width - shipWidth) / 2

	sh := g.cfg.Shelters
	g.shelters = NewShelters(sh.Count, sh.Width, sh.Height, g.width, g.shipY-sh.Height-2)

	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 1
	g.gameOver = false
	g.paused = false
	g.playerCooldown = 0
	g.resetEnemyCooldown()
	g.newWave()
}

// newWave rebuilds the formation and clears all shots.
func (g *Game) newWave() {
	fc := g.cfg.Formation
	g.formation = NewFormation(fc.Rows, fc.Cols, fc.SpacingX, fc.SpacingY, core.Point{})
	g.formation.Origin = core.Point{
		X: max(0, (g.width-g.formation.Width())/2),
		Y: hudHeight + fc.Top,
	}
	g.playerShots = g.playerShots[:0]
	g.enemyShots = g.enemyShots[:0]
	g.marchTick = 0
	g.bulletTick = 0
}

func (g *Game) resetEnemyCooldown() {
	f := g.cfg.Fire
	spread := max(f.EnemyMaxCooldown-f.EnemyMinCooldown, 0)
	g.enemyCooldown = f.EnemyMinCooldown + g.rng.Intn(spread+1)
}

// MarchInterval is the ticks between formation steps. It shrinks as the
// score rises and as aliens die.
func (g *Game) MarchInterval() int {
	m := g.cfg.March
	base := g.difficulty.Interval(m.EveryTicks, m.MinEveryTicks, g.score, g.tick)
	total := g.formation.Rows * g.formation.Cols
	if total > 0 {
		base = base * g.formation.Count() / total
	}
	return max(base, m.MinEveryTicks, 1)
}

// AlienPoints is the score for an alien in the given formation row.
// Higher rows are worth more.
func (g *Game) AlienPoints(row int) int {
	return g.cfg.Gameplay.AlienPoints * (g.formation.Rows - row)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.Result(g.State(), in)
	}
	if g.gameOver {
		return core.Result(g.State(), in)
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.Result(g.State(), in)
	}

	g.tick++
	g.moveShip(in)

	if g.playerCooldown > 0 {
		g.playerCooldown--
	}
	if in.Has(core.ActionFire) && g.playerCooldown == 0 {
		g.playerShots = append(g.playerShots, core.Point{X: g.shipX + shipWidth/2, Y: g.shipY - 1})
		g.playerCooldown = g.cfg.Fire.PlayerCooldown
	}

	g.bulletTick++
	if g.bulletTick >= max(g.cfg.Fire.BulletEveryTicks, 1) {
		g.bulletTick = 0
		g.moveShots()
	}
	g.resolveShots()
	if g.gameOver {
		return core.Result(g.State(), in)
	}

	g.marchTick++
	if g.marchTick >= g.MarchInterval() {
		g.marchTick = 0
		g.march()
		if g.gameOver {
			return core.Result(g.State(), in)
		}
	}

	g.enemyFire()

	if g.formation.Count() == 0 {
		g.wave++
		g.newWave()
	}
	return core.Result(g.State(), in)
}

func (g *Game) moveShip(in core.InputFrame) {
	speed := max(g.cfg.Gameplay.ShipSpeed, 1)
	if in.Has(core.ActionLeft) {
		g.shipX -= speed
	}
	if in.Has(core.ActionRight) {
		g.shipX += speed
	}
	g.shipX = core.Clamp(g.shipX, 0, g.width-shipWidth)
}

func (g *Game) moveShots() {
	kept := g.playerShots[:0]
	for _, s := range g.playerShots {
		s.Y--
		if s.Y >= hudHeight {
			kept = append(kept, s)
		}
	}
	g.playerShots = kept

	kept = g.enemyShots[:0]
	for _, s := range g.enemyShots {
		s.Y++
		if s.Y < g.height {
			kept = append(kept, s)
		}
	}
	g.enemyShots = kept
}

// resolveShots applies shelter, alien and ship hits. Each shot hits at most
// one thing.
func (g *Game) resolveShots() {
	kept := g.playerShots[:0]
	for _, s := range g.playerShots {
		if g.shelters.Absorb(s) {
			continue
		}
		if row, hit := g.formation.HitAt(s); hit {
			g.score += g.AlienPoints(row)
			continue
		}
		kept = append(kept, s)
	}
	g.playerShots = kept

	ship := g.shipRect()
	kept = g.enemyShots[:0]
	hit := false
	for _, s := range g.enemyShots {
		if g.shelters.Absorb(s) {
			continue
		}
		if ship.ContainsPoint(s) {
			hit = true
			continue
		}
		kept = append(kept, s)
	}
	g.enemyShots = kept
	if hit {
		g.shipHit()
	}
}

func (g *Game) shipHit() {
	g.lives--
	g.enemyShots = g.enemyShots[:0]
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
	}
}

func (g *Game) shipRect() core.Rect {
	return core.NewRect(g.shipX, g.shipY, shipWidth, 1)
}

// march steps the formation. Aliens crush shelters they pass through and
// end the game on reaching the ship's row.
func (g *Game) march() {
	g.formation.March(0, g.width, max(g.cfg.March.Drop, 1))
	for r := range g.formation.Alive {
		for c, alive := range g.formation.Alive[r] {
			if alive {
				g.shelters.Erode(g.formation.AlienRect(r, c))
			}
		}
	}
	if b, ok := g.formation.Bounds(); ok && b.Bottom() > g.shipY {
		g.gameOver = true
	}
}

func (g *Game) enemyFire() {
	if g.enemyCooldown > 0 {
		g.enemyCooldown--
		return
	}
	if len(g.enemyShots) >= g.cfg.Fire.MaxEnemyBullets {
		return
	}
	shooters := g.formation.Shooters()
	if len(shooters) == 0 {
		return
	}
	g.enemyShots = append(g.enemyShots, shooters[g.rng.Intn(len(shooters))])
	g.resetEnemyCooldown()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("INVADERS  Score: %d  Wave: %d", g.score, g.wave), core.ColorBrightWhite)
	lives := "Lives: " + strings.Repeat("♥", g.lives)
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-1, 0, lives, core.ColorBrightRed)

	for p := range g.shelters {
		dst.SetColored(p.X, p.Y, '▓', core.ColorGreen)
	}
	for r := range g.formation.Alive {
		sprite := alienSprites[r%len(alienSprites)]
		for c, alive := range g.formation.Alive[r] {
			if alive {
				a := g.formation.AlienRect(r, c)
				dst.DrawTextColored(a.X, a.Y, sprite, core.RowColor(r))
			}
		}
	}
	for _, s := range g.playerShots {
		dst.SetColored(s.X, s.Y, '│', core.ColorBrightYellow)
	}
	for _, s := range g.enemyShots {
		dst.SetColored(s.X, s.Y, '¦', core.ColorBrightRed)
	}
	dst.DrawTextColored(g.shipX, g.shipY, "▄█▄", core.ColorBrightGreen)

	switch {
	case g.gameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d", g.score), "R restart  Esc menu")
	case g.paused:
		dst.DrawMessage("PAUSED", "P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
