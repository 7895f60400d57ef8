package breakout

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// ID is the registry key and asset directory name.
const ID = "breakout"

const (
	paddleChar = '▀'
	ballChar   = '●'
	brickChar  = '█'
	hudHeight  = 1
	missDelay  = 30
)

// Phase is the game's high-level state.
type Phase string

const (
	PhaseServe    Phase = "serve"    // ball rests on the paddle
	PhasePlaying  Phase = "playing"  // ball in play
	PhaseGameOver Phase = "gameover" // no lives left
	PhaseWin      Phase = "win"      // wall cleared
)

// Game implements Breakout.
// The field sits inside a border below the HUD; the bottom is open.
type Game struct {
	cfg        config.BreakoutConfig
	fixedCfg   bool
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	fieldW, fieldH int

	paddle *Paddle
	ball   Ball
	extra  []Ball // multiball extras; the first takes over when ball is lost
	wall   *Wall
	power  *PowerUps
	rng    *rand.Rand

	phase      Phase
	paused     bool
	score      int
	lives      int
	tick       int
	serveDelay int
}

// New creates a Breakout game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Breakout game with explicit tuning.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Reset starts a new game with a full wall.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.fixedCfg {
		cfg, err := config.LoadBreakout(rc.ConfigPath)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		config.ApplyBreakoutPreset(&cfg, config.ParsePreset(rc.Difficulty))
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.fieldW = max(rc.ScreenW-2, 20)
	g.fieldH = max(rc.ScreenH-hudHeight-1, 12)

	b := g.cfg.Bricks
	bw := max(b.Width, 1)
	cols := max(g.fieldW/bw, 1)
	left := (g.fieldW - cols*bw) / 2
	g.wall = NewWall(b.Rows, cols, left, b.TopOffset, bw, b.Height, b.Points)

	pw := g.basePaddleWidth()
	g.paddle = &Paddle{X: ToFixed((g.fieldW - pw) / 2), Y: g.fieldH - 2, Width: pw}
	g.extra = nil
	g.power = NewPowerUps(g.cfg.PowerUps)
	g.rng = rand.New(rand.NewSource(rc.Seed))

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tick = 0
	g.serveDelay = 0
	g.paused = false
	g.serveBall()
}

// serveBall parks the ball on the paddle.
func (g *Game) serveBall() {
	g.ball = Ball{X: g.paddle.CenterX(), Y: ToFixed(g.paddle.Y - 1)}
	g.phase = PhaseServe
}

// ballSpeed is the current base speed in fixed-point units per tick.
func (g *Game) ballSpeed() Fixed {
	s := g.difficulty.Speed(float64(g.cfg.Physics.BallSpeed), g.score, g.tick)
	if m := g.cfg.Physics.MaxBallSpeed; m > 0 && s > float64(m) {
		s = float64(m)
	}
	if pct := g.slowPercent(); pct > 0 && g.power.Active(PowerUpSlow) {
		s = s * float64(pct) / 100
	}
	return Fixed(s)
}

// slowPercent is the slow-ball speed percentage, or 0 when it has no effect.
func (g *Game) slowPercent() int {
	if p := g.cfg.PowerUps.SlowPercent; p > 0 && p < 100 {
		return p
	}
	return 0
}

func (g *Game) basePaddleWidth() int {
	return core.Clamp(g.cfg.Paddle.Width, 1, g.fieldW)
}

// setPaddleWidth resizes the paddle around its center.
func (g *Game) setPaddleWidth(w int) {
	w = core.Clamp(w, 1, g.fieldW)
	center := g.paddle.CenterX()
	g.paddle.Width = w
	g.paddle.X = ClampFixed(center-ToFixed(w)/2, 0, ToFixed(g.fieldW-w))
}

func (g *Game) launch() {
	speed := g.ballSpeed()
	g.ball.VX = speed / 4
	g.ball.VY = -speed
	g.phase = PhasePlaying
}

func (g *Game) over() bool {
	return g.phase == PhaseGameOver || g.phase == PhaseWin
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.Result(g.State(), in)
	}
	if g.over() {
		return core.Result(g.State(), in)
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.Result(g.State(), in)
	}

	g.tick++
	if g.serveDelay > 0 {
		g.serveDelay--
		return core.Result(g.State(), in)
	}

	g.updatePaddle(in)

	if g.phase == PhaseServe {
		g.ball.X = g.paddle.CenterX()
		g.ball.Y = ToFixed(g.paddle.Y - 1)
		if in.Has(core.ActionFire) || in.Has(core.ActionUp) {
			g.launch()
		}
		return core.Result(g.State(), in)
	}

	g.updateBalls()
	if g.phase == PhasePlaying {
		g.updatePowerUps()
	}
	return core.Result(g.State(), in)
}

func (g *Game) updatePaddle(in core.InputFrame) {
	speed := ToFixed(g.cfg.Paddle.Speed)
	if in.Has(core.ActionLeft) {
		g.paddle.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.paddle.X += speed
	}
	g.paddle.X = ClampFixed(g.paddle.X, 0, ToFixed(g.fieldW-g.paddle.Width))
}

// updateBalls moves every ball. Losing the main ball promotes an extra one;
// a life is lost only when no ball is left.
func (g *Game) updateBalls() {
	inPlay := g.moveBall(&g.ball)
	kept := g.extra[:0]
	for _, b := range g.extra {
		if g.moveBall(&b) {
			kept = append(kept, b)
		}
	}
	g.extra = kept

	switch {
	case g.phase == PhaseWin || inPlay:
	case len(g.extra) > 0:
		g.ball = g.extra[0]
		g.extra = g.extra[1:]
	default:
		g.handleMiss()
	}
}

// moveBall advances one ball and resolves walls, paddle and bricks.
// It returns false when the ball fell past the bottom.
func (g *Game) moveBall(b *Ball) bool {
	b.Move()
	if CheckWallCollision(b, g.fieldW, g.fieldH) {
		return false
	}
	if CheckPaddleCollision(b, g.paddle, g.ballSpeed()) {
		return true
	}

	row, col, side := CheckBrickCollision(b, g.wall)
	if side == CollisionNone {
		return true
	}
	brick := &g.wall.Bricks[row][col]
	brick.Alive = false
	g.score += brick.Points
	ApplyCollisionBounce(b, side)

	r := g.wall.BrickRect(row, col)
	g.power.TrySpawn(g.rng, ToFixed(r.X)+ToFixed(r.W)/2, ToFixed(r.Y))

	if g.wall.CountAlive() == 0 {
		g.phase = PhaseWin
	}
	return true
}

// updatePowerUps drops pickups, applies the caught ones and ends expired effects.
func (g *Game) updatePowerUps() {
	for _, kind := range g.power.Fall(g.paddle, g.fieldH) {
		g.collect(kind)
	}
	for _, kind := range g.power.Expire(g.tick) {
		g.endEffect(kind)
	}
}

func (g *Game) collect(kind PowerUp) {
	switch kind {
	case PowerUpExpand:
		if g.power.Activate(kind, g.tick) {
			g.setPaddleWidth(g.basePaddleWidth() + g.cfg.PowerUps.ExpandBy)
		}
	case PowerUpSlow:
		if g.power.Activate(kind, g.tick) {
			g.scaleBalls(g.slowPercent(), 100)
		}
	case PowerUpMultiball:
		speed := g.ballSpeed()
		for i := 0; i < g.cfg.PowerUps.ExtraBalls; i++ {
			vx := speed / 2
			if g.rng.Intn(2) == 0 {
				vx = -vx
			}
			g.extra = append(g.extra, Ball{
				X: g.paddle.CenterX(), Y: ToFixed(g.paddle.Y - 1),
				VX: vx, VY: -speed,
			})
		}
	}
}

func (g *Game) endEffect(kind PowerUp) {
	switch kind {
	case PowerUpExpand:
		g.setPaddleWidth(g.basePaddleWidth())
	case PowerUpSlow:
		g.scaleBalls(100, g.slowPercent())
	}
}

// scaleBalls multiplies every ball's velocity by num/den.
func (g *Game) scaleBalls(num, den int) {
	if num <= 0 || den <= 0 {
		return
	}
	scale := func(b *Ball) {
		b.VX = b.VX * Fixed(num) / Fixed(den)
		b.VY = b.VY * Fixed(num) / Fixed(den)
	}
	scale(&g.ball)
	for i := range g.extra {
		scale(&g.extra[i])
	}
}

func (g *Game) handleMiss() {
	for _, kind := range g.power.Clear() {
		g.endEffect(kind)
	}
	g.extra = nil
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		return
	}
	g.serveBall()
	g.serveDelay = missDelay
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	hud := fmt.Sprintf("BREAKOUT  Score: %d", g.score)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
	if effects := g.effectsHUD(); effects != "" {
		dst.DrawTextColored(len(hud)+3, 0, effects, core.ColorBrightGreen)
	}
	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightRed)

	ox, oy := 1, hudHeight+1
	// The bottom stays open.
	dst.DrawHLine(0, hudHeight, g.fieldW+2, '─')
	dst.DrawVLine(0, oy, g.fieldH, '│')
	dst.DrawVLine(ox+g.fieldW, oy, g.fieldH, '│')

	for r := 0; r < g.wall.Rows; r++ {
		color := core.RowColor(r)
		for c := 0; c < g.wall.Cols; c++ {
			if !g.wall.Bricks[r][c].Alive {
				continue
			}
			rect := g.wall.BrickRect(r, c)
			rect.X += ox
			rect.Y += oy
			// Leave a gap so neighbouring bricks stay distinguishable.
			if rect.W > 1 {
				rect.W--
			}
			dst.DrawRectColored(rect, brickChar, color)
		}
	}

	px := g.paddle.X.ToCell()
	for i := 0; i < g.paddle.Width; i++ {
		dst.SetColored(ox+px+i, oy+g.paddle.Y, paddleChar, core.ColorBrightCyan)
	}

	for _, p := range g.power.Pickups {
		dst.SetColored(ox+p.X.ToCell(), oy+p.Y.ToCell(), p.Kind.Glyph(), p.Kind.Color())
	}

	for _, b := range append([]Ball{g.ball}, g.extra...) {
		bx, by := b.Cell()
		dst.SetColored(ox+bx, oy+by, ballChar, core.ColorBrightWhite)
	}

	switch {
	case g.phase == PhaseWin:
		dst.DrawMessage("YOU WIN!", fmt.Sprintf("Score: %d", g.score), "R restart  Esc menu")
	case g.phase == PhaseGameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d", g.score), "R restart  Esc menu")
	case g.paused:
		dst.DrawMessage("PAUSED", "P to resume")
	case g.phase == PhaseServe && g.serveDelay == 0:
		dst.DrawTextCenteredColored(dst.Height()-1, "SPACE to launch", core.ColorGray)
	}
}

// effectsHUD lists running effects with whole seconds left.
func (g *Game) effectsHUD() string {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	parts := make([]string, 0, len(g.power.Effects))
	for _, e := range g.power.Effects {
		secs := (e.Remaining(g.tick) + rate - 1) / rate
		parts = append(parts, fmt.Sprintf("%s %ds", e.Kind, secs))
	}
	return strings.Join(parts, " ")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over(),
		Won:      g.phase == PhaseWin,
		Paused:   g.paused,
	}
}
