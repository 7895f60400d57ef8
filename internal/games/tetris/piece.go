// Package tetris implements falling-block Tetris on a fixed well.
package tetris

import "github.com/vovakirdan/classic-arcade/internal/core"

// Kind identifies a tetromino. KindNone marks an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every playable tetromino.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

type shape struct {
	size  int // bounding box edge
	cells [4]core.Point
}

var shapes = map[Kind]shape{
	KindI: {4, [4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}},
	KindO: {2, [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	KindT: {3, [4]core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	KindS: {3, [4]core.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	KindZ: {3, [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	KindJ: {3, [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	KindL: {3, [4]core.Point{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
}

// Color returns the display color of a kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorBrightCyan
	case KindO:
		return core.ColorBrightYellow
	case KindT:
		return core.ColorBrightMagenta
	case KindS:
		return core.ColorBrightGreen
	case KindZ:
		return core.ColorBrightRed
	case KindJ:
		return core.ColorBrightBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

func (k Kind) String() string {
	if k == KindNone || int(k) > len(Kinds) {
		return "none"
	}
	return string("IOTSZJL"[k-1])
}

// Piece is a tetromino placed on the board.
// Rotation counts clockwise quarter turns.
type Piece struct {
	Kind     Kind
	Rotation int
	Pos      core.Point // top-left of the bounding box
}

// Cells returns the board cells covered by the piece.
func (p Piece) Cells() [4]core.Point {
	s := shapes[p.Kind]
	var out [4]core.Point
	for i, c := range s.cells {
		for r := 0; r < p.Rotation%4; r++ {
			c = core.Point{X: s.size - 1 - c.Y, Y: c.X}
		}
		out[i] = c.Add(p.Pos)
	}
	return out
}

// Moved returns a copy shifted by d.
func (p Piece) Moved(d core.Point) Piece {
	p.Pos = p.Pos.Add(d)
	return p
}

// Rotated returns a copy turned a quarter clockwise.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % 4
	return p
}

// spawnPiece centers a new piece with its top row on row 0.
func spawnPiece(k Kind, boardW int) Piece {
	s := shapes[k]
	top := s.size
	for _, c := range s.cells {
		top = min(top, c.Y)
	}
	return Piece{Kind: k, Pos: core.Point{X: (boardW - s.size) / 2, Y: -top}}
}
