package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/classic-arcade/internal/app"
	"github.com/vovakirdan/classic-arcade/internal/config"
)

// backMsg returns the session to the launcher.
type backMsg struct{}

// SettingsKeyMap defines the settings screen bindings.
type SettingsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Prev key.Binding
	Next key.Binding
	Save key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the help footer.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Save}
}

// FullHelp returns key bindings for the expanded help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Prev, k.Next}, {k.Save, k.Quit}}
}

// DefaultSettingsKeyMap returns the settings bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑", "up")),
		Down: key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓", "down")),
		Prev: key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/→", "change")),
		Next: key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→", "next")),
		Save: key.NewBinding(key.WithKeys("esc", "enter", "b"), key.WithHelp("esc", "save & back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type settingsRow struct {
	id    string
	title string
}

// SettingsModel edits the per-game difficulty presets.
type SettingsModel struct {
	ctx      *app.Context
	styles   *Styles
	keys     SettingsKeyMap
	help     help.Model
	rows     []settingsRow
	settings *config.Settings
	cursor   int
	width    int
	err      error
}

// NewSettingsModel lists every game in launcher order.
func NewSettingsModel(ctx *app.Context, styles *Styles, width int) *SettingsModel {
	m := &SettingsModel{
		ctx:      ctx,
		styles:   styles,
		keys:     DefaultSettingsKeyMap(),
		help:     help.New(),
		settings: ctx.Settings(),
		width:    width,
	}
	m.help.Width = width
	for _, e := range ctx.Entries {
		if e.Kind == app.KindGame {
			m.rows = append(m.rows, settingsRow{id: e.Game.ID, title: e.Title})
		}
	}
	return m
}

// Preset returns the pending preset for row i.
func (m *SettingsModel) Preset(i int) config.DifficultyPreset {
	return m.settings.Preset(m.rows[i].id)
}

// Update handles selection, cycling and saving.
func (m *SettingsModel) Update(msg tea.Msg) (*SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			return m.save()
		}
		if len(m.rows) == 0 {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 1 + len(m.rows)) % len(m.rows)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(m.rows)
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
		}
	}
	return m, nil
}

func (m *SettingsModel) cycle(step int) {
	id := m.rows[m.cursor].id
	m.settings.SetPreset(id, m.settings.Preset(id).Next(step))
}

// save persists the settings. A failed write keeps the screen open with the
// error shown; the presets still apply for this run.
func (m *SettingsModel) save() (*SettingsModel, tea.Cmd) {
	if err := m.ctx.SaveSettings(m.settings); err != nil {
		if m.err == nil {
			m.ctx.Logger.Warn("cannot save settings", "error", err)
			m.err = err
			return m, nil
		}
	}
	return m, func() tea.Msg { return backMsg{} }
}

// View renders the preset list.
func (m *SettingsModel) View() string {
	var b strings.Builder
	b.WriteString(centerText(m.styles.Title.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	titleW := 0
	for _, r := range m.rows {
		titleW = max(titleW, len(r.title))
	}
	for i, r := range m.rows {
		line := fmt.Sprintf("  %-*s   ◀ %-6s ▶", titleW, r.title, m.Preset(i))
		if i == m.cursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("  not saved: %v (esc again to leave)", m.err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
