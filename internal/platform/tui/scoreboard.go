package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/classic-arcade/internal/app"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l", "d"),
			key.WithHelp("tab/→", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h", "a"),
			key.WithHelp("←", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type scoreboardGame struct {
	id    string
	title string
}

// ScoreboardModel shows the top scores of one game at a time.
type ScoreboardModel struct {
	ctx    *app.Context
	styles *Styles
	games  []scoreboardGame
	cursor int
	scores []storage.ScoreEntry
	stats  storage.GameStats
	err    error
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboardModel creates a scoreboard for the launcher's games.
func NewScoreboardModel(ctx *app.Context, styles *Styles, width, height int) *ScoreboardModel {
	m := &ScoreboardModel{
		ctx:    ctx,
		styles: styles,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	for _, e := range ctx.Entries {
		if e.Kind == app.KindGame {
			m.games = append(m.games, scoreboardGame{id: e.Game.ID, title: e.Title})
		}
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	tableWidth := m.width - 4
	if m.showSidebar() {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 40 {
		columns[1].Width = 12
		columns[2].Width = min(tableWidth-22, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// GameID returns the game being shown.
func (m *ScoreboardModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].id
}

// load fetches the current game's scores.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.err = nil, storage.GameStats{}, nil
	defer m.updateRows()

	id := m.GameID()
	if id == "" {
		return
	}
	if m.ctx.Store == nil {
		m.err = storage.ErrNoStore
		return
	}
	ctx := context.Background()
	scores, err := m.ctx.Store.TopScores(ctx, id, storage.DefaultTopN)
	if err != nil {
		m.ctx.Logger.Warn("cannot load scores", "game", id, "error", err)
		m.err = err
		return
	}
	m.scores = scores
	if stats, err := m.ctx.Store.Stats(ctx, id); err == nil {
		m.stats = stats
	}
}

func (m *ScoreboardModel) updateRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	n := len(m.games)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.load()
}

// Update handles game switching and table scrolling.
func (m *ScoreboardModel) Update(msg tea.Msg) (*ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return backMsg{} }
		case key.Matches(msg, m.keys.NextGame):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.step(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateRows()
		return m, nil
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m *ScoreboardModel) View() string {
	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.cursor].title)
	}
	b.WriteString(centerText(m.styles.Title.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar() {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if m.stats.Plays > 0 {
		b.WriteString(m.styles.Dim.Render(fmt.Sprintf("  Plays: %d   Best: %d   Average: %.1f",
			m.stats.Plays, m.stats.Best, m.stats.Average)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *ScoreboardModel) renderWideLayout() string {
	sidebarStyle := m.styles.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for i, g := range m.games {
		cursor, style := "  ", m.styles.NewStyle()
		if i == m.cursor {
			cursor, style = "> ", m.styles.Title
		}
		sidebar.WriteString(style.Render(cursor + runewidth.Truncate(g.title, sidebarWidth-6, ".")))
		sidebar.WriteString("\n")
	}

	tableStyle := m.styles.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

func (m *ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder
	if len(m.games) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.games[m.cursor].title), m.width))
		b.WriteString("\n\n")
	}
	tableStyle := m.styles.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

func (m *ScoreboardModel) renderTableContent() string {
	empty := m.styles.Dim.Italic(true).Padding(2, 4)
	switch {
	case m.err != nil:
		return empty.Render(fmt.Sprintf("Scores unavailable.\n%v", m.err))
	case len(m.scores) == 0:
		return empty.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}
