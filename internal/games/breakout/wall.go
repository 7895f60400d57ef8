// Package breakout implements Breakout: clear a wall of bricks with a ball
// bounced off a paddle.
package breakout

import "github.com/vovakirdan/classic-arcade/internal/core"

// Brick is one cell of the wall.
type Brick struct {
	Alive  bool
	Points int
}

// Wall is a grid of bricks placed in field coordinates.
type Wall struct {
	Rows, Cols    int
	Left, Top     int // field position of brick (0, 0)
	Width, Height int // brick size in cells
	Bricks        [][]Brick
}

// NewWall builds a full wall of rows x cols bricks.
func NewWall(rows, cols, left, top, width, height, points int) *Wall {
	w := &Wall{
		Rows: rows, Cols: cols,
		Left: left, Top: top,
		Width: max(width, 1), Height: max(height, 1),
		Bricks: make([][]Brick, rows),
	}
	for r := range w.Bricks {
		w.Bricks[r] = make([]Brick, cols)
		for c := range w.Bricks[r] {
			w.Bricks[r][c] = Brick{Alive: true, Points: points}
		}
	}
	return w
}

// CellAt maps a field cell to the brick covering it.
func (w *Wall) CellAt(x, y int) (row, col int, ok bool) {
	if x < w.Left || y < w.Top {
		return 0, 0, false
	}
	col = (x - w.Left) / w.Width
	row = (y - w.Top) / w.Height
	if row >= w.Rows || col >= w.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// BrickRect returns the brick's area in field cells.
func (w *Wall) BrickRect(row, col int) core.Rect {
	return core.NewRect(w.Left+col*w.Width, w.Top+row*w.Height, w.Width, w.Height)
}

// CountAlive returns the number of bricks still standing.
func (w *Wall) CountAlive() int {
	n := 0
	for _, row := range w.Bricks {
		for _, b := range row {
			if b.Alive {
				n++
			}
		}
	}
	return n
}
