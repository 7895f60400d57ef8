package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
)

func testConfig(w, h int) config.TetrisConfig {
	cfg := config.DefaultTetrisConfig()
	cfg.Mode = "single"
	cfg.Board.Width = w
	cfg.Board.Height = h
	cfg.Gravity.FallEveryTicks = 1000
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestGame(w, h int) *Game {
	g := NewWithConfig(testConfig(w, h))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

// verticalI returns an I piece standing in column col.
func verticalI(col int) Piece {
	return Piece{Kind: KindI, Rotation: 1, Pos: core.Point{X: col - 2, Y: 0}}
}

func TestLineClearScenario(t *testing.T) {
	g := newTestGame(10, 4)
	for x := 0; x < 9; x++ {
		g.board.Cells[3][x] = KindZ
	}
	g.current = verticalI(9)

	res := g.Step(core.NewInputFrame(core.ActionFire))

	if g.score != LinePoints {
		t.Errorf("score = %d, expected %d", g.score, LinePoints)
	}
	if g.lines != 1 {
		t.Errorf("lines = %d, expected 1", g.lines)
	}
	if res.State.GameOver {
		t.Fatal("game should continue after a clear")
	}
	// The three I cells above the cleared row shifted down one.
	for y := 0; y < 4; y++ {
		want := y > 0
		if got := g.board.Filled(core.Point{X: 9, Y: y}); got != want {
			t.Errorf("cell (9,%d) filled = %v, expected %v", y, got, want)
		}
		for x := 0; x < 9; x++ {
			if g.board.Filled(core.Point{X: x, Y: y}) {
				t.Errorf("cell (%d,%d) should be empty", x, y)
			}
		}
	}
}

func TestMultiLineScore(t *testing.T) {
	g := newTestGame(4, 6)
	for y := 2; y < 6; y++ {
		for x := 0; x < 3; x++ {
			g.board.Cells[y][x] = KindS
		}
	}
	g.current = verticalI(3)
	g.Step(core.NewInputFrame(core.ActionFire))

	if g.lines != 4 || g.score != 16*LinePoints {
		t.Errorf("lines=%d score=%d, expected 4 and %d", g.lines, g.score, 16*LinePoints)
	}
}

func TestInvalidMovesAreNoOps(t *testing.T) {
	g := newTestGame(10, 20)

	g.current = Piece{Kind: KindO, Pos: core.Point{X: 0, Y: 5}}
	g.Step(core.NewInputFrame(core.ActionLeft))
	if g.current.Pos.X != 0 {
		t.Errorf("moved through the left wall: %+v", g.current.Pos)
	}

	g.current = Piece{Kind: KindO, Pos: core.Point{X: 8, Y: 5}}
	g.Step(core.NewInputFrame(core.ActionRight))
	if g.current.Pos.X != 8 {
		t.Errorf("moved through the right wall: %+v", g.current.Pos)
	}

	g.board.Cells[5][4] = KindJ
	g.current = Piece{Kind: KindO, Pos: core.Point{X: 2, Y: 4}}
	g.Step(core.NewInputFrame(core.ActionRight))
	if g.current.Pos.X != 2 {
		t.Errorf("moved into a filled cell: %+v", g.current.Pos)
	}
}

func TestRotation(t *testing.T) {
	g := newTestGame(10, 20)

	g.current = Piece{Kind: KindT, Pos: core.Point{X: 3, Y: 5}}
	g.Step(core.NewInputFrame(core.ActionUp))
	if g.current.Rotation != 1 {
		t.Errorf("rotation = %d, expected 1", g.current.Rotation)
	}

	// Standing up would poke above the well.
	g.current = Piece{Kind: KindI, Pos: core.Point{X: 3, Y: -1}}
	g.Step(core.NewInputFrame(core.ActionUp))
	if g.current.Rotation != 0 {
		t.Errorf("blocked rotation applied: %d", g.current.Rotation)
	}
}

func TestRotationStaysInBox(t *testing.T) {
	for _, k := range Kinds {
		size := shapes[k].size
		p := Piece{Kind: k, Pos: core.Point{X: 2, Y: 2}}
		for r := 0; r < 4; r++ {
			seen := map[core.Point]bool{}
			for _, c := range p.Cells() {
				if c.X < 2 || c.X >= 2+size || c.Y < 2 || c.Y >= 2+size {
					t.Errorf("%s rotation %d: cell %+v outside its box", k, r, c)
				}
				seen[c] = true
			}
			if len(seen) != 4 {
				t.Errorf("%s rotation %d: %d distinct cells", k, r, len(seen))
			}
			p = p.Rotated()
		}
	}
}

func TestGravity(t *testing.T) {
	cfg := testConfig(10, 20)
	cfg.Gravity.FallEveryTicks = 5
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})

	y := g.current.Pos.Y
	for i := 0; i < 4; i++ {
		g.Step(core.InputFrame{})
	}
	if g.current.Pos.Y != y {
		t.Fatalf("fell early: y=%d", g.current.Pos.Y)
	}
	g.Step(core.InputFrame{})
	if g.current.Pos.Y != y+1 {
		t.Errorf("y = %d, expected %d", g.current.Pos.Y, y+1)
	}
}

func TestSoftDrop(t *testing.T) {
	g := newTestGame(10, 20)
	y := g.current.Pos.Y
	g.Step(core.NewInputFrame(core.ActionDown))
	if g.current.Pos.Y != y+1 {
		t.Errorf("y = %d, expected %d", g.current.Pos.Y, y+1)
	}
}

func TestLevelUp(t *testing.T) {
	g := newTestGame(10, 4)
	before := g.FallInterval()
	g.lines = 4
	for x := 0; x < 9; x++ {
		g.board.Cells[3][x] = KindL
	}
	g.current = verticalI(9)
	g.Step(core.NewInputFrame(core.ActionFire))

	if g.level != 2 {
		t.Errorf("level = %d, expected 2", g.level)
	}
	if g.FallInterval() >= before {
		t.Errorf("interval %d should shrink below %d", g.FallInterval(), before)
	}
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	g := newTestGame(10, 20)
	for y := 0; y < 2; y++ {
		for x := 1; x < 10; x++ {
			g.board.Cells[y][x] = KindT
		}
	}
	g.spawn()
	if !g.gameOver {
		t.Fatal("spawn onto blocks should end the game")
	}

	before := g.Snapshot()
	res := g.Step(core.NewInputFrame(core.ActionLeft, core.ActionFire))
	if res.Outcome != core.OutcomeGameOver {
		t.Errorf("Outcome = %v", res.Outcome)
	}
	if g.Snapshot() != before {
		t.Error("state changed after game over")
	}
}

func TestClearLinesShiftsRows(t *testing.T) {
	b := NewBoard(3, 4)
	b.Cells[1] = []Kind{KindI, KindNone, KindO}
	b.Cells[2] = []Kind{KindT, KindT, KindT}
	b.Cells[3] = []Kind{KindS, KindS, KindS}

	if n := b.ClearLines(); n != 2 {
		t.Fatalf("cleared %d, expected 2", n)
	}
	want := []Kind{KindI, KindNone, KindO}
	for x, k := range want {
		if b.Cells[3][x] != k {
			t.Errorf("row 3 col %d = %s, expected %s", x, b.Cells[3][x], k)
		}
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if b.Cells[y][x] != KindNone {
				t.Errorf("cell (%d,%d) should be empty", x, y)
			}
		}
	}
}

func TestClearLinesSingleRow(t *testing.T) {
	tests := []struct {
		name    string
		row     []Kind
		cleared int
	}{
		{"full", []Kind{KindI, KindO, KindT}, 1},
		{"gap", []Kind{KindI, KindNone, KindT}, 0},
		{"empty", []Kind{KindNone, KindNone, KindNone}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(3, 1)
			copy(b.Cells[0], tt.row)
			if n := b.ClearLines(); n != tt.cleared {
				t.Fatalf("cleared %d, expected %d", n, tt.cleared)
			}
			for x, k := range b.Cells[0] {
				want := tt.row[x]
				if tt.cleared > 0 {
					want = KindNone
				}
				if k != want {
					t.Errorf("col %d = %s, expected %s", x, k, want)
				}
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(10, 20)
		for i := 0; i < 400 && !g.gameOver; i++ {
			var in core.InputFrame
			switch i % 11 {
			case 2:
				in.Set(core.ActionLeft)
			case 5:
				in.Set(core.ActionUp)
			case 9:
				in.Set(core.ActionFire)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestBagDealsEveryKind(t *testing.T) {
	g := newTestGame(10, 20)
	g.bag = nil
	seen := map[Kind]int{}
	for i := 0; i < len(Kinds)*3; i++ {
		seen[g.draw()]++
	}
	for _, k := range Kinds {
		if seen[k] != 3 {
			t.Errorf("%s dealt %d times, expected 3", k, seen[k])
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(10, 20)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"TETRIS", "NEXT", "Level: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("active piece not rendered")
	}
}

func newVersusGame(w, h int) *Game {
	cfg := testConfig(w, h)
	cfg.Mode = "versus"
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"single", ModeSingle},
		{"versus", ModeVersus},
		{"select", ModeSelect},
		{"", ModeSelect},
		{"coop", ModeSelect},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %s, expected %s", tt.in, got, tt.want)
		}
	}
}

func TestModeSelectScreen(t *testing.T) {
	cfg := testConfig(10, 20)
	cfg.Mode = "select"
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 3})

	if g.Mode() != ModeSelect {
		t.Fatalf("mode = %s, expected select", g.Mode())
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Single Player", "2 Player (Versus)", "P2: WASD"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q", want)
		}
	}

	// Nothing falls while choosing.
	y := g.current.Pos.Y
	g.Step(core.NewInputFrame(core.ActionLeft))
	if g.current.Pos.Y != y || g.tick != 0 {
		t.Error("wells advanced on the start screen")
	}

	g.Step(core.NewInputFrame(core.ActionDown))
	g.Step(core.NewInputFrame(core.ActionConfirm))
	if g.Mode() != ModeVersus || g.rival == nil {
		t.Fatalf("mode = %s, expected versus with two wells", g.Mode())
	}

	g.Step(core.NewInputFrame(core.ActionRestart))
	if g.Mode() != ModeVersus {
		t.Errorf("restart switched mode to %s", g.Mode())
	}

	res := g.Step(core.NewInputFrame(core.ActionBack))
	if res.Outcome != core.OutcomeExitToMenu {
		t.Errorf("Outcome = %v, expected exit to menu", res.Outcome)
	}
}

func TestSelectWrapsAround(t *testing.T) {
	cfg := testConfig(10, 20)
	cfg.Mode = "select"
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 3})

	g.Step(core.NewInputFrame(core.ActionUp))
	g.Step(core.NewInputFrame(core.ActionFire))
	if g.Mode() != ModeVersus {
		t.Errorf("mode = %s, expected versus after wrapping up", g.Mode())
	}
}

func TestVersusKeysAreSeparate(t *testing.T) {
	tests := []struct {
		name       string
		action     core.Action
		dx1, dx2   int
		dy1, dy2   int
		rot1, rot2 int
	}{
		{"arrow left", core.ActionLeft, -1, 0, 0, 0, 0, 0},
		{"arrow right", core.ActionRight, 1, 0, 0, 0, 0, 0},
		{"arrow down", core.ActionDown, 0, 0, 1, 0, 0, 0},
		{"arrow up", core.ActionUp, 0, 0, 0, 0, 1, 0},
		{"a", core.ActionAltLeft, 0, -1, 0, 0, 0, 0},
		{"d", core.ActionAltRight, 0, 1, 0, 0, 0, 0},
		{"s", core.ActionAltDown, 0, 0, 0, 1, 0, 0},
		{"w", core.ActionAltUp, 0, 0, 0, 0, 0, 1},
		{"fire", core.ActionFire, 0, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newVersusGame(10, 20)
			p1 := Piece{Kind: KindT, Pos: core.Point{X: 3, Y: 5}}
			p2 := Piece{Kind: KindT, Pos: core.Point{X: 3, Y: 5}}
			g.current, g.rival.current = p1, p2

			g.Step(core.NewInputFrame(tt.action))

			check := func(who string, got, start Piece, dx, dy, rot int) {
				if got.Pos.X != start.Pos.X+dx || got.Pos.Y != start.Pos.Y+dy || got.Rotation != start.Rotation+rot {
					t.Errorf("%s piece = %+v, expected moved by (%d,%d) rot %d", who, got, dx, dy, rot)
				}
			}
			check("P1", g.current, p1, tt.dx1, tt.dy1, tt.rot1)
			check("P2", g.rival.current, p2, tt.dx2, tt.dy2, tt.rot2)
		})
	}
}

func TestSoloAcceptsWASD(t *testing.T) {
	g := newTestGame(10, 20)
	g.current = Piece{Kind: KindO, Pos: core.Point{X: 4, Y: 5}}
	g.Step(core.NewInputFrame(core.ActionAltLeft))
	if g.current.Pos.X != 3 {
		t.Errorf("x = %d, expected 3", g.current.Pos.X)
	}
}

func TestVersusSharesPieceSequence(t *testing.T) {
	g := newVersusGame(10, 20)
	if g.current != g.rival.current || g.next != g.rival.next {
		t.Errorf("wells dealt differently: %+v/%s vs %+v/%s", g.current, g.next, g.rival.current, g.rival.next)
	}
}

func TestVersusEndsWhenBothTopOut(t *testing.T) {
	fill := func(w *Well) {
		for y := 0; y < 2; y++ {
			for x := 1; x < w.board.Width; x++ {
				w.board.Cells[y][x] = KindT
			}
		}
		w.spawn()
	}

	g := newVersusGame(10, 20)
	g.rival.score = 300
	fill(g.rival)
	if !g.rival.gameOver {
		t.Fatal("rival should have topped out")
	}

	res := g.Step(core.InputFrame{})
	if res.State.GameOver {
		t.Fatal("game ended while player one is still alive")
	}
	if res.State.Score != 300 {
		t.Errorf("Score = %d, expected the higher score 300", res.State.Score)
	}

	// A finished well ignores its player's keys.
	before := g.rival.current
	g.Step(core.NewInputFrame(core.ActionAltLeft))
	if g.rival.current != before {
		t.Error("topped-out well still moved")
	}

	g.score = 500
	fill(g.Well)
	res = g.Step(core.InputFrame{})
	if res.Outcome != core.OutcomeGameOver {
		t.Fatalf("Outcome = %v, expected game over", res.Outcome)
	}
	if res.State.Score != 500 {
		t.Errorf("Score = %d, expected 500", res.State.Score)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "PLAYER 1 WINS") {
		t.Errorf("missing winner banner:\n%s", out)
	}
}

func TestVersusWinner(t *testing.T) {
	tests := []struct {
		p1, p2 int
		want   string
	}{
		{400, 100, "PLAYER 1 WINS"},
		{100, 400, "PLAYER 2 WINS"},
		{200, 200, "TIE"},
	}
	for _, tt := range tests {
		g := newVersusGame(10, 20)
		g.score, g.rival.score = tt.p1, tt.p2
		if got := g.winner(); got != tt.want {
			t.Errorf("winner(%d, %d) = %q, expected %q", tt.p1, tt.p2, got, tt.want)
		}
	}
}

func TestVersusRender(t *testing.T) {
	g := newVersusGame(10, 20)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "TETRIS VERSUS") {
		t.Error("render missing versus HUD")
	}
	if n := strings.Count(out, "NEXT"); n != 2 {
		t.Errorf("NEXT panels = %d, expected 2", n)
	}
}
