package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// palette maps core.Color to ANSI color numbers.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Styles are the lipgloss styles for one output. SSH sessions get their own
// renderer so color support follows the client's terminal.
type Styles struct {
	r      *lipgloss.Renderer
	colors map[core.Color]lipgloss.Style

	Title    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds styles for r; nil uses the default renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	st := &Styles{
		r:        r,
		colors:   make(map[core.Color]lipgloss.Style, len(palette)+1),
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Label:    r.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: r.NewStyle().Bold(true).Reverse(true),
		Dim:      r.NewStyle().Foreground(lipgloss.Color("241")),
		Help:     r.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("9")),
	}
	st.colors[core.ColorDefault] = r.NewStyle()
	for c, ansi := range palette {
		st.colors[c] = r.NewStyle().Foreground(lipgloss.Color(ansi))
	}
	return st
}

// NewStyle returns a blank style bound to this output.
func (st *Styles) NewStyle() lipgloss.Style {
	return st.r.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells with the same color share one escape sequence.
func (st *Styles) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			style, ok := st.colors[start]
			if !ok {
				style = st.colors[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hexColor formats c for lipgloss truecolor.
func hexColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// opaque reports whether a pixel should be drawn at all.
func opaque(c color.NRGBA) bool {
	return c.A >= 128
}

// pixelAt returns the pixel at (x, y), transparent outside img.
func pixelAt(img *image.NRGBA, x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return color.NRGBA{}
	}
	return img.NRGBAAt(x, y)
}

// RenderIcon draws img as width x rows cells, two pixel rows per cell, with
// the image centered. Each cell is an upper half block colored by its top
// pixel over a background of its bottom pixel.
func (st *Styles) RenderIcon(img *image.NRGBA, width, rows int) []string {
	b := img.Bounds()
	iw, ih := b.Dx(), b.Dy()
	cellRows := (ih + 1) / 2
	left := max(0, (width-iw)/2)
	top := max(0, (rows-cellRows)/2)

	lines := make([]string, rows)
	for row := range rows {
		var sb strings.Builder
		py := (row - top) * 2
		for col := range width {
			px := col - left
			up := pixelAt(img, b.Min.X+px, b.Min.Y+py)
			down := pixelAt(img, b.Min.X+px, b.Min.Y+py+1)
			switch {
			case opaque(up) && opaque(down):
				sb.WriteString(st.r.NewStyle().Foreground(hexColor(up)).Background(hexColor(down)).Render("▀"))
			case opaque(up):
				sb.WriteString(st.r.NewStyle().Foreground(hexColor(up)).Render("▀"))
			case opaque(down):
				sb.WriteString(st.r.NewStyle().Foreground(hexColor(down)).Render("▄"))
			default:
				sb.WriteByte(' ')
			}
		}
		lines[row] = sb.String()
	}
	return lines
}

// fitLabel truncates s to width display cells and centers it.
func fitLabel(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	pad := width - runewidth.StringWidth(s)
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}

// centerText pads s on the left to center it in width cells.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
