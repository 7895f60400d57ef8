package tetris

import "github.com/vovakirdan/classic-arcade/internal/core"

// Board is the well of settled cells, indexed [row][col].
type Board struct {
	Width, Height int
	Cells         [][]Kind
}

// NewBoard returns an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{Width: width, Height: height, Cells: make([][]Kind, height)}
	for y := range b.Cells {
		b.Cells[y] = make([]Kind, width)
	}
	return b
}

// InBounds reports whether p lies inside the well.
func (b *Board) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Filled reports whether a settled block occupies p.
func (b *Board) Filled(p core.Point) bool {
	return b.InBounds(p) && b.Cells[p.Y][p.X] != KindNone
}

// Fits reports whether the piece lies in bounds without overlapping blocks.
func (b *Board) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if !b.InBounds(c) || b.Cells[c.Y][c.X] != KindNone {
			return false
		}
	}
	return true
}

// Merge settles the piece into the board.
func (b *Board) Merge(p Piece) {
	for _, c := range p.Cells() {
		if b.InBounds(c) {
			b.Cells[c.Y][c.X] = p.Kind
		}
	}
}

// ClearLines removes full rows, shifts the rows above down and returns the
// number removed.
func (b *Board) ClearLines() int {
	kept := make([][]Kind, 0, b.Height)
	for _, row := range b.Cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.Height - len(kept)
	if cleared == 0 {
		return 0
	}
	fresh := make([][]Kind, cleared, b.Height)
	for i := range fresh {
		fresh[i] = make([]Kind, b.Width)
	}
	b.Cells = append(fresh, kept...)
	return cleared
}

func rowFull(row []Kind) bool {
	for _, k := range row {
		if k == KindNone {
			return false
		}
	}
	return true
}
