package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/classic-arcade/internal/app"
	"github.com/vovakirdan/classic-arcade/internal/menu"
)

const (
	menuTitle    = "CLASSIC ARCADE"
	headerRows   = 2 // title and a blank line
	footerRows   = 2 // scroll indicator and help
	moreBelow    = "▼"
	moreAbove    = "▲"
	minMenuWidth = 1
)

// launchMsg asks the session to open an entry.
type launchMsg struct {
	Entry app.Entry
}

// openScoresMsg asks the session to show the scoreboard.
type openScoresMsg struct{}

// MenuKeyMap defines the launcher key bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Launch key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the help footer.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Launch, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Launch, k.Scores, k.Quit},
	}
}

// DefaultMenuKeyMap returns the launcher bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/→", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→", "next"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MenuModel is the launcher: a scrollable grid of icon boxes.
type MenuModel struct {
	ctx    *app.Context
	styles *Styles
	keys   MenuKeyMap
	help   help.Model
	state  menu.State
	width  int
	height int

	// boxes caches rendered box lines per entry, unselected and selected.
	boxes map[int][2][]string
}

// NewMenuModel creates a launcher for a width x height terminal.
func NewMenuModel(ctx *app.Context, styles *Styles, width, height int) *MenuModel {
	h := help.New()
	h.Styles.ShortKey = styles.Help
	h.Styles.ShortDesc = styles.Dim
	h.Styles.ShortSeparator = styles.Dim
	m := &MenuModel{
		ctx:    ctx,
		styles: styles,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		boxes:  make(map[int][2][]string, len(ctx.Entries)),
	}
	m.resize(width, height)
	return m
}

// Grid returns the current grid geometry.
func (m *MenuModel) Grid() menu.Grid {
	visible := max(0, m.height-headerRows-footerRows)
	return menu.NewGrid(m.ctx.Layout, len(m.ctx.Entries), max(m.width, minMenuWidth), visible)
}

// State returns the selection and scroll offset.
func (m *MenuModel) State() menu.State {
	return m.state
}

// Selected returns the highlighted entry.
func (m *MenuModel) Selected() (app.Entry, bool) {
	if len(m.ctx.Entries) == 0 {
		return app.Entry{}, false
	}
	return m.ctx.Entries[m.state.Selected], true
}

func (m *MenuModel) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.state = m.state.Fit(m.Grid())
}

// Init implements the tea model contract.
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection.
func (m *MenuModel) Update(msg tea.Msg) (*MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.ctx.Logger.Debug("menu resized", "width", msg.Width, "height", msg.Height,
			"columns", m.Grid().Columns(), "rows", m.Grid().Rows())
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
			m.state = m.state.Move(m.Grid(), -1)
		case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
			m.state = m.state.Move(m.Grid(), 1)
		case key.Matches(msg, m.keys.Scores):
			return m, func() tea.Msg { return openScoresMsg{} }
		case key.Matches(msg, m.keys.Launch):
			e, ok := m.Selected()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return launchMsg{Entry: e} }
		}
	}
	return m, nil
}

// box returns the rendered lines of entry i.
func (m *MenuModel) box(i int, selected bool) []string {
	cached, ok := m.boxes[i]
	idx := 0
	if selected {
		idx = 1
	}
	if ok && cached[idx] != nil {
		return cached[idx]
	}

	l := m.ctx.Layout
	e := m.ctx.Entries[i]
	lines := m.styles.RenderIcon(e.Icon, l.BoxSize, l.BoxRows()-1)
	label := fitLabel(e.Title, l.BoxSize)
	if selected {
		label = m.styles.Selected.Render(label)
	} else {
		label = m.styles.Label.Render(label)
	}
	lines = append(lines, label)

	cached[idx] = lines
	m.boxes[i] = cached
	return lines
}

// gridLine renders row y of the unscrolled grid.
func (m *MenuModel) gridLine(g menu.Grid, y int) string {
	stride := g.Layout.BoxRows() + g.Layout.VSpacing
	row, within := y/stride, y%stride
	if within >= g.Layout.BoxRows() || row >= g.Rows() {
		return ""
	}

	var sb strings.Builder
	x := 0
	cols := g.Columns()
	for c := range cols {
		i := row*cols + c
		if i >= g.Count {
			break
		}
		r := g.Box(i)
		if r.X >= g.Width {
			break
		}
		sb.WriteString(strings.Repeat(" ", r.X-x))
		line := m.box(i, i == m.state.Selected)[within]
		if r.Right() > g.Width {
			// Narrower than one box: show what fits.
			line = ansi.Truncate(line, g.Width-r.X, "")
		}
		sb.WriteString(line)
		x = r.Right()
	}
	return sb.String()
}

// View renders the header, the visible grid window and the footer.
func (m *MenuModel) View() string {
	g := m.Grid()
	var b strings.Builder

	b.WriteString(centerText(m.styles.Title.Render(menuTitle), m.width))
	b.WriteString("\n")
	if g.MoreAbove(m.state.Scroll) {
		b.WriteString(centerText(m.styles.Dim.Render(moreAbove), m.width))
	}
	b.WriteString("\n")

	for y := range g.Height {
		b.WriteString(m.gridLine(g, m.state.Scroll+y))
		b.WriteString("\n")
	}

	if g.MoreBelow(m.state.Scroll) {
		b.WriteString(centerText(m.styles.Dim.Render(moreBelow), m.width))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
