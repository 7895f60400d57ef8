package tetris

import (
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
)

// Well is one player's playfield: the board, the falling piece and the
// score it has earned.
type Well struct {
	gravity    config.TetrisGravity
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	board   *Board
	current Piece
	next    Kind
	bag     []Kind

	tick     int
	fallTick int
	score    int
	level    int
	lines    int
	gameOver bool
}

// controls binds a player's keys. Solo play folds WASD into the arrows;
// in versus each player only answers to their own keys.
type controls struct {
	left, right, rotate, soft core.Action
	drop                      core.Action // ActionNone disables hard drop
	strict                    bool
}

var (
	soloControls = controls{
		left: core.ActionLeft, right: core.ActionRight,
		rotate: core.ActionUp, soft: core.ActionDown,
		drop: core.ActionFire,
	}
	arrowControls = controls{
		left: core.ActionLeft, right: core.ActionRight,
		rotate: core.ActionUp, soft: core.ActionDown,
		strict: true,
	}
	wasdControls = controls{
		left: core.ActionAltLeft, right: core.ActionAltRight,
		rotate: core.ActionAltUp, soft: core.ActionAltDown,
		strict: true,
	}
)

func (c controls) held(in core.InputFrame, a core.Action) bool {
	if c.strict {
		return in.Pressed(a)
	}
	return in.Has(a)
}

func newWell(cfg config.TetrisConfig, dm *config.DifficultyManager, seed int64) *Well {
	w := &Well{
		gravity:    cfg.Gravity,
		difficulty: dm,
		rng:        rand.New(rand.NewSource(seed)),
		board:      NewBoard(max(cfg.Board.Width, 4), max(cfg.Board.Height, 1)),
		level:      1,
	}
	w.next = w.draw()
	w.spawn()
	return w
}

// draw deals from a shuffled bag holding each kind once.
func (w *Well) draw() Kind {
	if len(w.bag) == 0 {
		w.bag = append(w.bag, Kinds[:]...)
		w.rng.Shuffle(len(w.bag), func(i, j int) { w.bag[i], w.bag[j] = w.bag[j], w.bag[i] })
	}
	k := w.bag[0]
	w.bag = w.bag[1:]
	return k
}

// spawn promotes the next piece. A blocked spawn ends the well.
func (w *Well) spawn() {
	w.current = spawnPiece(w.next, w.board.Width)
	w.next = w.draw()
	w.fallTick = 0
	if !w.board.Fits(w.current) {
		w.gameOver = true
	}
}

// FallInterval is the number of ticks between gravity steps.
func (w *Well) FallInterval() int {
	gr := w.gravity
	base := w.difficulty.Interval(gr.FallEveryTicks, gr.MinFallEveryTicks, w.score, w.tick)
	return max(base-(w.level-1)*gr.LevelStep, gr.MinFallEveryTicks, 1)
}

// step applies one tick of input and gravity. A finished well is left alone.
func (w *Well) step(in core.InputFrame, c controls) {
	if w.gameOver {
		return
	}
	w.tick++

	if c.held(in, c.left) {
		w.try(w.current.Moved(core.Point{X: -1}))
	}
	if c.held(in, c.right) {
		w.try(w.current.Moved(core.Point{X: 1}))
	}
	if c.held(in, c.rotate) {
		w.try(w.current.Rotated())
	}
	if c.held(in, c.drop) {
		w.hardDrop()
		return
	}
	if c.held(in, c.soft) {
		w.try(w.current.Moved(core.Point{Y: 1}))
	}

	w.fallTick++
	if w.fallTick >= w.FallInterval() {
		w.fallTick = 0
		if !w.try(w.current.Moved(core.Point{Y: 1})) {
			w.lock()
		}
	}
}

// try replaces the active piece when p fits. Otherwise nothing changes.
func (w *Well) try(p Piece) bool {
	if !w.board.Fits(p) {
		return false
	}
	w.current = p
	return true
}

func (w *Well) hardDrop() {
	for w.try(w.current.Moved(core.Point{Y: 1})) {
	}
	w.lock()
}

// lock merges the active piece, clears lines and spawns the next piece.
func (w *Well) lock() {
	w.board.Merge(w.current)
	if n := w.board.ClearLines(); n > 0 {
		w.lines += n
		w.score += n * n * LinePoints
		if per := w.gravity.LinesPerLevel; per > 0 {
			w.level = 1 + w.lines/per
		}
	}
	w.spawn()
}

// Ghost returns where the active piece would land.
func (w *Well) Ghost() Piece {
	p := w.current
	for w.board.Fits(p.Moved(core.Point{Y: 1})) {
		p = p.Moved(core.Point{Y: 1})
	}
	return p
}

// width is the on-screen width of the well including its frame.
func (w *Well) width() int { return w.board.Width*blockW + 2 }

// render draws the well at (ox, oy) with its NEXT panel to the right.
func (w *Well) render(dst *core.Screen, ox, oy int, frame core.Color) {
	wellW := w.width()
	dst.DrawBoxColored(core.NewRect(ox, oy, wellW, w.board.Height+2), frame)

	cell := func(p core.Point, r rune, c core.Color) {
		for i := 0; i < blockW; i++ {
			dst.SetColored(ox+1+p.X*blockW+i, oy+1+p.Y, r, c)
		}
	}

	for y, row := range w.board.Cells {
		for x, k := range row {
			if k != KindNone {
				cell(core.Point{X: x, Y: y}, '█', k.Color())
			}
		}
	}
	if !w.gameOver {
		for _, p := range w.Ghost().Cells() {
			cell(p, '░', core.ColorGray)
		}
		for _, p := range w.current.Cells() {
			cell(p, '█', w.current.Kind.Color())
		}
	}

	px := ox + wellW + 2
	dst.DrawTextColored(px, oy+1, "NEXT", core.ColorBrightWhite)
	preview := Piece{Kind: w.next}
	for _, p := range preview.Cells() {
		for i := 0; i < blockW; i++ {
			dst.SetColored(px+p.X*blockW+i, oy+3+p.Y, '█', w.next.Color())
		}
	}
}
