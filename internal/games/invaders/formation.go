// Package invaders implements Space Invaders: a marching alien formation,
// destructible shelters and a ship at the bottom of the screen.
package invaders

import "github.com/vovakirdan/classic-arcade/internal/core"

// AlienWidth is the width of one alien sprite in cells.
const AlienWidth = 3

// Formation is the alien block. Aliens sit on a fixed lattice relative to
// Origin; dead aliens keep their slot.
type Formation struct {
	Rows, Cols         int
	SpacingX, SpacingY int
	Origin             core.Point
	Dir                int // +1 marching right, -1 left
	Alive              [][]bool
}

// NewFormation returns a full formation at origin, marching right.
func NewFormation(rows, cols, spacingX, spacingY int, origin core.Point) *Formation {
	f := &Formation{
		Rows: rows, Cols: cols,
		SpacingX: max(spacingX, AlienWidth+1), SpacingY: max(spacingY, 1),
		Origin: origin,
		Dir:    1,
		Alive:  make([][]bool, rows),
	}
	for r := range f.Alive {
		f.Alive[r] = make([]bool, cols)
		for c := range f.Alive[r] {
			f.Alive[r][c] = true
		}
	}
	return f
}

// Width is the formation's full span in cells.
func (f *Formation) Width() int {
	return (f.Cols-1)*f.SpacingX + AlienWidth
}

// AlienRect returns the screen area of the alien at (row, col).
func (f *Formation) AlienRect(row, col int) core.Rect {
	return core.NewRect(f.Origin.X+col*f.SpacingX, f.Origin.Y+row*f.SpacingY, AlienWidth, 1)
}

// Count returns the number of live aliens.
func (f *Formation) Count() int {
	n := 0
	for _, row := range f.Alive {
		for _, a := range row {
			if a {
				n++
			}
		}
	}
	return n
}

// Bounds returns the box around the live aliens. ok is false when none
// remain.
func (f *Formation) Bounds() (r core.Rect, ok bool) {
	minX, minY, maxX, maxY := 0, 0, 0, 0
	for row := range f.Alive {
		for col, alive := range f.Alive[row] {
			if !alive {
				continue
			}
			a := f.AlienRect(row, col)
			if !ok {
				minX, minY, maxX, maxY = a.X, a.Y, a.Right(), a.Bottom()
				ok = true
				continue
			}
			minX = min(minX, a.X)
			minY = min(minY, a.Y)
			maxX = max(maxX, a.Right())
			maxY = max(maxY, a.Bottom())
		}
	}
	return core.NewRect(minX, minY, maxX-minX, maxY-minY), ok
}

// March steps the block sideways. If that would cross [left, right) it drops
// by drop rows and reverses instead. Reports whether it dropped.
func (f *Formation) March(left, right, drop int) bool {
	b, ok := f.Bounds()
	if !ok {
		return false
	}
	if b.X+f.Dir < left || b.Right()+f.Dir > right {
		f.Origin.Y += drop
		f.Dir = -f.Dir
		return true
	}
	f.Origin.X += f.Dir
	return false
}

// HitAt kills the live alien covering p and reports its row.
func (f *Formation) HitAt(p core.Point) (row int, hit bool) {
	for r := range f.Alive {
		for c, alive := range f.Alive[r] {
			if alive && f.AlienRect(r, c).ContainsPoint(p) {
				f.Alive[r][c] = false
				return r, true
			}
		}
	}
	return 0, false
}

// Shooters returns, per column, the lowest live alien's muzzle position.
func (f *Formation) Shooters() []core.Point {
	var out []core.Point
	for c := 0; c < f.Cols; c++ {
		for r := f.Rows - 1; r >= 0; r-- {
			if f.Alive[r][c] {
				a := f.AlienRect(r, c)
				out = append(out, core.Point{X: a.X + AlienWidth/2, Y: a.Bottom()})
				break
			}
		}
	}
	return out
}
