// Package snake implements the classic Snake game on a bordered grid.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// ID is the registry key and asset directory name.
const ID = "snake"

// Direction is the snake's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -1}
	case DirDown:
		return core.Point{Y: 1}
	case DirLeft:
		return core.Point{X: -1}
	default:
		return core.Point{X: 1}
	}
}

func (d Direction) opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

const (
	hudHeight = 1
	minBoard  = 5
)

// Game implements the Snake game.
type Game struct {
	cfg        config.SnakeConfig
	fixedCfg   bool
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	tick       uint64
	moveTicker int
	score      int

	// Board in cells; the border is drawn around it.
	width, height    int
	offsetX, offsetY int

	snake     []core.Point // head first
	direction Direction
	nextDir   Direction // applied on the next move
	food      core.Point

	powerUps   []PowerUp
	boostUntil uint64 // tick until which the snake moves at double pace
	lives      int    // extra lives left

	gameOver bool
	won      bool
	paused   bool
}

// New creates a Snake game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Snake game with explicit tuning.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	cfg := g.cfg
	if !g.fixedCfg {
		loaded, err := config.LoadSnake(rc.ConfigPath)
		if err != nil {
			loaded = config.DefaultSnakeConfig()
		}
		config.ApplySnakePreset(&loaded, config.ParsePreset(rc.Difficulty))
		cfg = loaded
		g.cfg = loaded
	}
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))

	g.tick = 0
	g.moveTicker = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.width = cfg.Board.Width
	if g.width <= 0 {
		g.width = rc.ScreenW - 2
	}
	g.height = cfg.Board.Height
	if g.height <= 0 {
		g.height = rc.ScreenH - hudHeight - 2
	}
	g.width = max(g.width, minBoard)
	g.height = max(g.height, minBoard)
	g.offsetX = max(0, (rc.ScreenW-g.width-2)/2) + 1
	g.offsetY = hudHeight + 1

	g.powerUps = g.powerUps[:0]
	g.boostUntil = 0
	g.lives = max(cfg.Gameplay.ExtraLives, 0)

	g.initSnake()
	g.spawnFood()
}

// initSnake lays the snake horizontally at the left third, heading right.
func (g *Game) initSnake() {
	length := core.Clamp(g.cfg.Gameplay.InitialLength, 1, g.width/2)
	startX := max(length-1, g.width/3)
	y := g.height / 2

	g.snake = g.snake[:0]
	for i := 0; i < length; i++ {
		g.snake = append(g.snake, core.Point{X: startX - i, Y: y})
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// spawnFood places food on a random free cell. A full board wins the game.
func (g *Game) spawnFood() {
	var empty []core.Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		g.won = true
		g.gameOver = true
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
}

func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

func (g *Game) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
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
	g.expirePowerUps()
	g.processInput(in)

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.move()
	}
	return core.Result(g.State(), in)
}

func (g *Game) moveInterval() int {
	n := g.difficulty.Interval(g.cfg.Movement.MoveEveryTicks, g.cfg.Movement.MinMoveEveryTicks, g.score, int(g.tick))
	if g.boosted() {
		n = max(n/2, 1)
	}
	return n
}

// processInput buffers a turn. Reversing onto the body is ignored.
func (g *Game) processInput(in core.InputFrame) {
	dir := g.nextDir
	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
	case in.Has(core.ActionDown):
		dir = DirDown
	case in.Has(core.ActionLeft):
		dir = DirLeft
	case in.Has(core.ActionRight):
		dir = DirRight
	}
	if dir != g.direction.opposite() {
		g.nextDir = dir
	}
}

// move advances the head one cell, growing on food and crashing on walls or body.
func (g *Game) move() {
	g.direction = g.nextDir
	head := g.snake[0].Add(g.direction.delta())

	if !g.inBounds(head) {
		g.crash()
		return
	}

	eating := head == g.food
	// The tail moves away this tick unless we grow, so it is not an obstacle.
	body := g.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == head {
			g.crash()
			return
		}
	}

	if eating {
		g.snake = append([]core.Point{head}, g.snake...)
		g.score += g.cfg.Gameplay.FoodPoints
		g.collect()
		g.spawnFood()
		if !g.gameOver {
			g.maybeSpawnPowerUp()
		}
		return
	}
	copy(g.snake[1:], g.snake[:len(g.snake)-1])
	g.snake[0] = head
	g.collect()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" SNAKE   Score: %d   Length: %d", g.score, len(g.snake))
	if g.lives > 0 {
		hud += fmt.Sprintf("   Lives: %d", g.lives)
	}
	if g.boosted() {
		hud += "   BOOST"
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	dst.DrawBoxColored(core.NewRect(g.offsetX-1, g.offsetY-1, g.width+2, g.height+2), core.ColorGray)

	for _, pu := range g.powerUps {
		r, c := pu.Kind.glyph()
		dst.SetColored(g.offsetX+pu.Pos.X, g.offsetY+pu.Pos.Y, r, c)
	}
	if g.food.X >= 0 {
		dst.SetColored(g.offsetX+g.food.X, g.offsetY+g.food.Y, '●', core.ColorBrightRed)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		seg := g.snake[i]
		r, c := '■', core.ColorGreen
		if i == 0 {
			r, c = '█', core.ColorBrightGreen
		}
		dst.SetColored(g.offsetX+seg.X, g.offsetY+seg.Y, r, c)
	}

	switch {
	case g.won:
		dst.DrawMessage("YOU WIN!", fmt.Sprintf("Score: %d", g.score), "R restart  Esc menu")
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
		Won:      g.won,
		Paused:   g.paused,
	}
}
