package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
)

func testConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Movement.MoveEveryTicks = 1
	cfg.Movement.MinMoveEveryTicks = 1
	cfg.Difficulty.Enabled = false
	cfg.PowerUps.SpawnChance = 0
	return cfg
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 40, ScreenH: 20, TickRate: 60})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	return core.NewInputFrame(actions...)
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 100; i++ {
		var in core.InputFrame
		switch i {
		case 5:
			in.Set(core.ActionDown)
		case 9:
			in.Set(core.ActionLeft)
		case 12:
			in.Set(core.ActionUp)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)

	if g.direction != DirRight {
		t.Fatalf("initial direction = %v, expected right", g.direction)
	}

	g.processInput(press(core.ActionLeft))
	if g.nextDir == DirLeft {
		t.Error("reversal from right to left should be ignored")
	}

	g.processInput(press(core.ActionDown))
	if g.nextDir != DirDown {
		t.Errorf("nextDir = %v, expected down", g.nextDir)
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g := newTestGame(999)

	for i := 0; i < 100; i++ {
		g.spawnFood()
		if g.isSnakeAt(g.food) {
			t.Fatalf("food spawned on snake at %+v", g.food)
		}
		if !g.inBounds(g.food) {
			t.Fatalf("food spawned out of bounds at %+v", g.food)
		}
	}
}

func TestLengthChangesOnlyOnFood(t *testing.T) {
	g := newTestGame(7)

	for i := 0; i < 200 && !g.gameOver; i++ {
		before := len(g.snake)
		head := g.snake[0]
		ate := head.Add(g.nextDir.delta()) == g.food

		var in core.InputFrame
		if i%9 == 4 {
			in.Set(core.ActionDown)
		} else if i%9 == 8 {
			in.Set(core.ActionUp)
		}
		g.Step(in)
		if g.gameOver {
			break
		}

		grew := len(g.snake) - before
		if grew != 0 && grew != 1 {
			t.Fatalf("tick %d: length changed by %d", i, grew)
		}
		if in.Empty() && (grew == 1) != ate {
			t.Fatalf("tick %d: grew=%d but ate=%v", i, grew, ate)
		}
	}
}

func TestSnakeGrowth(t *testing.T) {
	g := newTestGame(1)
	head := g.snake[0]
	g.food = head.Add(core.Point{X: 1})
	before := len(g.snake)

	g.Step(core.InputFrame{})

	if len(g.snake) != before+1 {
		t.Errorf("length = %d, expected %d", len(g.snake), before+1)
	}
	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
	if g.isSnakeAt(g.food) {
		t.Error("new food should not be on the snake")
	}
}

func TestWallCollision(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < g.width+5 && !g.gameOver; i++ {
		g.food = core.Point{X: -1, Y: -1}
		g.Step(core.InputFrame{})
	}
	if !g.gameOver {
		t.Fatal("snake should die at the right wall")
	}
	if g.snake[0].X != g.width-1 {
		t.Errorf("head X = %d, expected %d (last cell before the wall)", g.snake[0].X, g.width-1)
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(1)
	g.snake = []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	g.direction = DirUp
	g.nextDir = DirDown
	g.food = core.Point{X: 0, Y: 0}

	g.move()
	if !g.gameOver {
		t.Error("moving into the body should end the game")
	}
}

func TestTailCellIsFree(t *testing.T) {
	g := newTestGame(1)
	// A 2x2 loop: the head moves into the cell the tail is leaving.
	g.snake = []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}}
	g.direction = DirUp
	g.nextDir = DirLeft
	g.food = core.Point{X: 0, Y: 0}

	g.move()
	if g.gameOver {
		t.Error("chasing the tail should be allowed")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := newTestGame(3)
	g.gameOver = true
	before := g.Snapshot()

	for i := 0; i < 20; i++ {
		res := g.Step(press(core.ActionDown, core.ActionPause))
		if res.Outcome != core.OutcomeGameOver {
			t.Fatalf("Outcome = %v, expected game-over", res.Outcome)
		}
	}
	if g.Snapshot() != before {
		t.Errorf("state changed after game over:\n%+v\n%+v", before, g.Snapshot())
	}

	res := g.Step(press(core.ActionRestart))
	if res.State.GameOver || g.score != 0 || res.Outcome != core.OutcomeInProgress {
		t.Errorf("restart should reset the game, got %+v", res)
	}
}

func TestBackExitsToMenu(t *testing.T) {
	g := newTestGame(3)
	if res := g.Step(press(core.ActionBack)); res.Outcome != core.OutcomeExitToMenu {
		t.Errorf("Outcome = %v, expected exit-to-menu", res.Outcome)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(3)
	g.Step(press(core.ActionPause))
	head := g.snake[0]
	for i := 0; i < 10; i++ {
		g.Step(core.InputFrame{})
	}
	if g.snake[0] != head {
		t.Error("snake moved while paused")
	}
}

func TestFillingBoardWins(t *testing.T) {
	g := newTestGame(3)
	g.snake = g.snake[:0]
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.snake = append(g.snake, core.Point{X: x, Y: y})
		}
	}
	g.spawnFood()
	if !g.won || !g.gameOver {
		t.Error("a full board should win")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(5)
	screen := core.NewScreen(40, 20)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "SNAKE") {
		t.Error("HUD missing")
	}
	if !strings.ContainsRune(out, '█') || !strings.ContainsRune(out, '●') {
		t.Error("snake head or food not rendered")
	}
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != "snake" || g.Title() != "Snake" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

// straightSnake lays a snake of n cells along row y with the head at x, heading right.
func straightSnake(g *Game, x, y, n int) {
	g.snake = g.snake[:0]
	for i := 0; i < n; i++ {
		g.snake = append(g.snake, core.Point{X: x - i, Y: y})
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.food = core.Point{X: 0, Y: 0}
}

func TestSpeedPowerUp(t *testing.T) {
	g := newTestGame(1)
	g.cfg.Movement.MoveEveryTicks = 6
	straightSnake(g, 10, 5, 3)
	g.powerUps = []PowerUp{{Kind: PowerUpSpeed, Pos: core.Point{X: 11, Y: 5}, ExpiresAt: 1000}}

	g.move()
	if len(g.powerUps) != 0 {
		t.Fatal("item should be collected")
	}
	if !g.boosted() || g.moveInterval() != 3 {
		t.Errorf("boosted=%v interval=%d, expected double pace", g.boosted(), g.moveInterval())
	}

	g.tick = g.boostUntil
	if g.boosted() || g.moveInterval() != 6 {
		t.Errorf("boost should end at tick %d, interval=%d", g.boostUntil, g.moveInterval())
	}
}

func TestShrinkPowerUp(t *testing.T) {
	tests := []struct {
		length, want int
	}{
		{6, 3},
		{3, 1},
		{2, 1},
	}
	for _, tt := range tests {
		g := newTestGame(1)
		straightSnake(g, 10, 5, tt.length)
		g.powerUps = []PowerUp{{Kind: PowerUpShrink, Pos: core.Point{X: 11, Y: 5}, ExpiresAt: 1000}}

		g.move()
		if len(g.snake) != tt.want {
			t.Errorf("length %d: after shrink %d, expected %d", tt.length, len(g.snake), tt.want)
		}
		if g.snake[0] != (core.Point{X: 11, Y: 5}) {
			t.Errorf("head = %+v, expected the item cell", g.snake[0])
		}
		if g.score != 1 {
			t.Errorf("score = %d, expected 1", g.score)
		}
	}
}

func TestLifePowerUp(t *testing.T) {
	g := newTestGame(1)
	straightSnake(g, 10, 5, 3)
	g.powerUps = []PowerUp{{Kind: PowerUpLife, Pos: core.Point{X: 11, Y: 5}, ExpiresAt: 1000}}

	g.move()
	if g.lives != 1 {
		t.Fatalf("lives = %d, expected 1", g.lives)
	}
	screen := core.NewScreen(40, 20)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Lives: 1") {
		t.Error("HUD should show the extra life")
	}
}

func TestExtraLifeSurvivesCrash(t *testing.T) {
	g := newTestGame(1)
	g.lives = 1
	g.score = 4
	straightSnake(g, g.width-1, 5, 4)
	g.food = core.Point{X: -1, Y: -1}

	g.move()
	if g.gameOver {
		t.Fatal("an extra life should absorb the crash")
	}
	if g.lives != 0 || g.score != 3 {
		t.Errorf("lives=%d score=%d, expected 0 and 3", g.lives, g.score)
	}
	if len(g.snake) != 3 || g.direction != DirRight || !g.inBounds(g.snake[0]) {
		t.Errorf("snake should respawn at the start: %+v dir=%v", g.snake, g.direction)
	}

	straightSnake(g, g.width-1, 5, 3)
	g.move()
	if !g.gameOver {
		t.Error("a crash without lives should end the game")
	}
}

func TestPowerUpExpires(t *testing.T) {
	g := newTestGame(1)
	g.powerUps = []PowerUp{{Kind: PowerUpSpeed, Pos: core.Point{X: 0, Y: 0}, ExpiresAt: g.tick + 2}}

	g.Step(core.InputFrame{})
	if len(g.powerUps) != 1 {
		t.Fatal("item removed too early")
	}
	g.Step(core.InputFrame{})
	if len(g.powerUps) != 0 {
		t.Error("item should expire")
	}
}

func TestPowerUpSpawnsOnFreeCell(t *testing.T) {
	g := newTestGame(9)
	g.cfg.PowerUps.SpawnChance = 100
	head := g.snake[0]
	g.food = head.Add(core.Point{X: 1})

	g.Step(core.InputFrame{})
	if len(g.powerUps) != 1 {
		t.Fatalf("power-ups = %d, expected 1", len(g.powerUps))
	}
	pu := g.powerUps[0]
	if g.isSnakeAt(pu.Pos) || pu.Pos == g.food || !g.inBounds(pu.Pos) {
		t.Errorf("item on an occupied or invalid cell: %+v", pu)
	}
	if pu.ExpiresAt != g.tick+600 {
		t.Errorf("ExpiresAt = %d, expected %d", pu.ExpiresAt, g.tick+600)
	}
}
