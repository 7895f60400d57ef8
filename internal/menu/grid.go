// Package menu holds the launcher's grid geometry and scroll state.
// It knows nothing about terminals or images: boxes are rectangles in
// cell coordinates and the view is a vertical window onto the grid.
package menu

import (
	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
)

// Grid lays out Count boxes row-major in a view of Width x Height cells.
type Grid struct {
	Layout config.Layout
	Count  int
	Width  int // view width
	Height int // visible grid height, excluding header and footer
}

// NewGrid creates a grid for count entries in a width x height view.
func NewGrid(l config.Layout, count, width, height int) Grid {
	return Grid{Layout: l, Count: max(count, 0), Width: max(width, 0), Height: max(height, 0)}
}

// Columns is max(1, width / (box + hspacing)).
func (g Grid) Columns() int {
	stride := g.Layout.BoxSize + g.Layout.HSpacing
	if stride <= 0 {
		return 1
	}
	return max(1, g.Width/stride)
}

// Rows is the number of rows needed for all entries.
func (g Grid) Rows() int {
	cols := g.Columns()
	return (g.Count + cols - 1) / cols
}

// rowStride is the vertical distance between row tops.
func (g Grid) rowStride() int {
	return g.Layout.BoxRows() + g.Layout.VSpacing
}

// TotalHeight is rows*(boxRows+vspacing) - vspacing, or 0 when empty.
func (g Grid) TotalHeight() int {
	rows := g.Rows()
	if rows == 0 {
		return 0
	}
	return rows*g.rowStride() - g.Layout.VSpacing
}

// MaxScroll is the largest valid scroll offset.
func (g Grid) MaxScroll() int {
	return max(0, g.TotalHeight()-g.Height)
}

// ClampScroll restricts offset to [0, MaxScroll].
func (g Grid) ClampScroll(offset int) int {
	return core.Clamp(offset, 0, g.MaxScroll())
}

// leftMargin centers the occupied columns horizontally.
func (g Grid) leftMargin() int {
	cols := min(g.Columns(), max(g.Count, 1))
	used := cols*g.Layout.BoxSize + (cols-1)*g.Layout.HSpacing
	return max(0, (g.Width-used)/2)
}

// Box returns entry i's rectangle in unscrolled grid coordinates.
func (g Grid) Box(i int) core.Rect {
	cols := g.Columns()
	col, row := i%cols, i/cols
	return core.NewRect(
		g.leftMargin()+col*(g.Layout.BoxSize+g.Layout.HSpacing),
		row*g.rowStride(),
		g.Layout.BoxSize,
		g.Layout.BoxRows(),
	)
}

// EnsureVisible returns the smallest scroll change that brings the
// selected box fully into view, clamped to the valid range.
func (g Grid) EnsureVisible(selected, offset int) int {
	if g.Count == 0 {
		return 0
	}
	box := g.Box(core.Clamp(selected, 0, g.Count-1))
	switch {
	case box.Y < offset:
		offset = box.Y
	case box.Bottom() > offset+g.Height:
		offset = box.Bottom() - g.Height
	}
	return g.ClampScroll(offset)
}

// MoreBelow reports whether content exists below the visible window.
func (g Grid) MoreBelow(offset int) bool {
	return g.MaxScroll() > 0 && offset+g.Height < g.TotalHeight()
}

// MoreAbove reports whether content is scrolled off the top.
func (g Grid) MoreAbove(offset int) bool {
	return offset > 0
}

// IconSize is the square artwork size in pixels for a box. Artwork is drawn
// two pixel rows per cell above a one-row label.
func IconSize(l config.Layout) int {
	return max(1, min(l.BoxSize, 2*(l.BoxRows()-1)))
}
