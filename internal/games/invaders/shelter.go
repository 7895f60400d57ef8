package invaders

import "github.com/vovakirdan/classic-arcade/internal/core"

// Shelters is the set of intact shelter blocks.
type Shelters map[core.Point]bool

// NewShelters spreads count shelters of w x h blocks evenly across width,
// with their top row at y.
func NewShelters(count, w, h, width, y int) Shelters {
	s := Shelters{}
	if count <= 0 {
		return s
	}
	gap := (width - count*w) / (count + 1)
	if gap < 1 {
		return s
	}
	for i := 0; i < count; i++ {
		x0 := gap + i*(w+gap)
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				s[core.Point{X: x0 + dx, Y: y + dy}] = true
			}
		}
	}
	return s
}

// Absorb removes the block at p and reports whether one was there.
func (s Shelters) Absorb(p core.Point) bool {
	if !s[p] {
		return false
	}
	delete(s, p)
	return true
}

// Erode removes every block inside r.
func (s Shelters) Erode(r core.Rect) {
	for p := range s {
		if r.ContainsPoint(p) {
			delete(s, p)
		}
	}
}
