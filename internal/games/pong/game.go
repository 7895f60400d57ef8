// Package pong implements Pong against a CPU paddle.
// The player controls the left paddle; the right paddle tracks the ball.
package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// ID is the registry key and asset directory name.
const ID = "pong"

const (
	paddleChar = '█'
	ballChar   = '●'
	netChar    = '┊'
	hudHeight  = 1
)

// Side identifies a player.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Vec is a position or velocity in court cells.
type Vec struct {
	X, Y float64
}

// Game implements the Pong game logic.
// Court coordinates start at the top-left of the play area below the HUD.
type Game struct {
	cfg        config.PongConfig
	fixedCfg   bool
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	width, height float64

	leftY, rightY float64 // paddle tops
	ball          Vec
	vel           Vec

	leftScore, rightScore int
	hits                  int // paddle contacts in the current rally
	serveDelay            int
	winner                Side

	tick     int
	gameOver bool
	paused   bool
}

// New creates a Pong game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Pong game with explicit tuning.
func NewWithConfig(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Pong" }

// Reset starts a new match.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.fixedCfg {
		cfg, err := config.LoadPong(rc.ConfigPath)
		if err != nil {
			cfg = config.DefaultPongConfig()
		}
		config.ApplyPongPreset(&cfg, config.ParsePreset(rc.Difficulty))
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.width = float64(max(rc.ScreenW, 20))
	g.height = float64(max(rc.ScreenH-hudHeight, g.cfg.Paddle.Height+2))

	center := (g.height - float64(g.cfg.Paddle.Height)) / 2
	g.leftY, g.rightY = center, center
	g.leftScore, g.rightScore = 0, 0
	g.winner = SideNone
	g.tick = 0
	g.gameOver = false
	g.paused = false

	g.serve(SideRight)
}

// serve centers the ball with the fixed initial velocity, heading away
// from the side that conceded.
func (g *Game) serve(scorer Side) {
	g.ball = Vec{X: g.width / 2, Y: g.height / 2}
	g.vel = Vec{X: g.cfg.Ball.ServeVX, Y: g.cfg.Ball.ServeVY}
	if scorer == SideLeft {
		g.vel = Vec{X: -g.vel.X, Y: -g.vel.Y}
	}
	g.hits = 0
	g.serveDelay = g.cfg.Gameplay.ServeDelay
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
	g.movePlayer(in)
	g.moveCPU()

	if g.serveDelay > 0 {
		g.serveDelay--
	} else {
		g.updateBall()
	}
	return core.Result(g.State(), in)
}

func (g *Game) maxPaddleY() float64 {
	return g.height - float64(g.cfg.Paddle.Height)
}

func (g *Game) movePlayer(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.leftY -= g.cfg.Paddle.Speed
	}
	if in.Has(core.ActionDown) {
		g.leftY += g.cfg.Paddle.Speed
	}
	g.leftY = core.ClampF(g.leftY, 0, g.maxPaddleY())
}

// moveCPU follows the ball while it approaches, recentering otherwise.
func (g *Game) moveCPU() {
	half := float64(g.cfg.Paddle.Height) / 2
	target := g.height/2 - half
	if g.vel.X > 0 {
		target = g.ball.Y - half
	}
	speed := g.difficulty.Speed(g.cfg.CPU.Speed, g.leftScore, g.tick)
	diff := target - g.rightY
	if math.Abs(diff) > g.cfg.CPU.DeadZone {
		g.rightY += math.Copysign(math.Min(speed, math.Abs(diff)), diff)
	}
	g.rightY = core.ClampF(g.rightY, 0, g.maxPaddleY())
}

func (g *Game) leftPaddleX() float64 {
	return float64(g.cfg.Paddle.Margin)
}

func (g *Game) rightPaddleX() float64 {
	return g.width - 1 - float64(g.cfg.Paddle.Margin)
}

// updateBall moves the ball, bouncing off walls and paddles and scoring
// when it leaves the court.
func (g *Game) updateBall() {
	g.ball.X += g.vel.X
	g.ball.Y += g.vel.Y

	if g.ball.Y <= 0 {
		g.ball.Y = 0
		g.vel.Y = math.Abs(g.vel.Y)
	}
	if bottom := g.height - 1; g.ball.Y >= bottom {
		g.ball.Y = bottom
		g.vel.Y = -math.Abs(g.vel.Y)
	}

	ph := float64(g.cfg.Paddle.Height)
	if lx := g.leftPaddleX(); g.vel.X < 0 && g.ball.X <= lx+1 && g.ball.X >= lx-1 &&
		g.ball.Y >= g.leftY && g.ball.Y < g.leftY+ph {
		g.ball.X = lx + 1
		g.bounce(g.leftY)
	}
	if rx := g.rightPaddleX(); g.vel.X > 0 && g.ball.X >= rx-1 && g.ball.X <= rx+1 &&
		g.ball.Y >= g.rightY && g.ball.Y < g.rightY+ph {
		g.ball.X = rx - 1
		g.bounce(g.rightY)
	}

	switch {
	case g.ball.X < 0:
		g.point(SideRight)
	case g.ball.X >= g.width:
		g.point(SideLeft)
	}
}

// bounce reflects vx, adds spin from the hit position and speeds the ball up.
func (g *Game) bounce(paddleY float64) {
	g.hits++
	hit := (g.ball.Y-paddleY)/float64(g.cfg.Paddle.Height) - 0.5
	g.vel.X = -g.vel.X * g.cfg.Ball.SpeedUp
	g.vel.Y += hit * 0.4

	limit := g.cfg.Ball.MaxSpeed
	if limit > 0 {
		g.vel.X = math.Copysign(math.Min(math.Abs(g.vel.X), limit), g.vel.X)
		g.vel.Y = math.Copysign(math.Min(math.Abs(g.vel.Y), limit/2), g.vel.Y)
	}
}

func (g *Game) point(scorer Side) {
	if scorer == SideLeft {
		g.leftScore++
	} else {
		g.rightScore++
	}
	win := g.cfg.Gameplay.WinScore
	if win > 0 && (g.leftScore >= win || g.rightScore >= win) {
		g.winner = scorer
		g.gameOver = true
		return
	}
	g.serve(scorer)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	w := dst.Width()
	dst.DrawTextColored(1, 0, "YOU", core.ColorBrightCyan)
	dst.DrawTextColored(w-4, 0, "CPU", core.ColorBrightMagenta)
	dst.DrawTextCenteredColored(0, fmt.Sprintf("%2d   %-2d", g.leftScore, g.rightScore), core.ColorBrightWhite)

	for y := 0; y < int(g.height); y += 2 {
		dst.SetColored(w/2, hudHeight+y, netChar, core.ColorGray)
	}

	for i := 0; i < g.cfg.Paddle.Height; i++ {
		dst.SetColored(int(g.leftPaddleX()), hudHeight+int(g.leftY)+i, paddleChar, core.ColorBrightCyan)
		dst.SetColored(int(g.rightPaddleX()), hudHeight+int(g.rightY)+i, paddleChar, core.ColorBrightMagenta)
	}

	if g.serveDelay == 0 || (g.serveDelay/8)%2 == 0 {
		dst.SetColored(int(g.ball.X), hudHeight+int(g.ball.Y), ballChar, core.ColorBrightYellow)
	}

	switch {
	case g.gameOver:
		title := "CPU WINS"
		if g.winner == SideLeft {
			title = "YOU WIN!"
		}
		dst.DrawMessage(title, fmt.Sprintf("%d - %d", g.leftScore, g.rightScore), "R restart  Esc menu")
	case g.paused:
		dst.DrawMessage("PAUSED", "P to resume")
	}
}

// State reports the player's score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.leftScore,
		GameOver: g.gameOver,
		Won:      g.winner == SideLeft,
		Paused:   g.paused,
	}
}
