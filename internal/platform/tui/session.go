package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/app"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// Screen identifies what the session is showing.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
	ScreenSettings
	ScreenScores
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenGame:
		return "game"
	case ScreenSettings:
		return "settings"
	case ScreenScores:
		return "scores"
	default:
		return "unknown"
	}
}

// SessionModel is the top-level model: the launcher plus whichever screen it
// opened. The launcher is suspended, not rebuilt, while a game runs, so its
// selection and scroll survive the round trip.
type SessionModel struct {
	ctx    *app.Context
	styles *Styles
	logger *log.Logger
	width  int
	height int

	screen   Screen
	menu     *MenuModel
	game     *GameModel
	settings *SettingsModel
	scores   *ScoreboardModel
}

// NewSessionModel creates a session on a width x height terminal. logger
// carries per-session fields; nil uses the context logger.
func NewSessionModel(ctx *app.Context, styles *Styles, logger *log.Logger, width, height int) *SessionModel {
	if logger == nil {
		logger = ctx.Logger
	}
	return &SessionModel{
		ctx:    ctx,
		styles: styles,
		logger: logger,
		width:  width,
		height: height,
		menu:   NewMenuModel(ctx, styles, width, height),
	}
}

// Screen reports the active screen.
func (m *SessionModel) Screen() Screen {
	return m.screen
}

// Init implements tea.Model.
func (m *SessionModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen and handles screen changes.
func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// The launcher keeps its geometry current while suspended.
		if m.screen != ScreenMenu {
			m.menu, _ = m.menu.Update(msg)
		}
	case launchMsg:
		return m, m.launch(msg.Entry)
	case openScoresMsg:
		m.scores = NewScoreboardModel(m.ctx, m.styles, m.width, m.height)
		m.switchTo(ScreenScores)
		return m, nil
	case exitGameMsg, backMsg:
		m.game, m.settings, m.scores = nil, nil, nil
		m.switchTo(ScreenMenu)
		return m, nil
	}

	switch m.screen {
	case ScreenGame:
		m.game, cmd = m.game.Update(msg)
	case ScreenSettings:
		m.settings, cmd = m.settings.Update(msg)
	case ScreenScores:
		m.scores, cmd = m.scores.Update(msg)
	default:
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

func (m *SessionModel) switchTo(s Screen) {
	m.logger.Debug("screen", "from", m.screen, "to", s)
	m.screen = s
}

// launch opens a launcher entry.
func (m *SessionModel) launch(e app.Entry) tea.Cmd {
	if e.Kind == app.KindSettings {
		m.settings = NewSettingsModel(m.ctx, m.styles, m.width)
		m.switchTo(ScreenSettings)
		return nil
	}
	game, err := registry.Create(e.Game.ID)
	if err != nil {
		m.logger.Error("cannot create game", "game", e.Game.ID, "error", err)
		return nil
	}
	m.game = NewGameModel(m.ctx, m.styles, game, m.width, m.height)
	m.switchTo(ScreenGame)
	return m.game.Init()
}

// View renders the active screen.
func (m *SessionModel) View() string {
	switch m.screen {
	case ScreenGame:
		return m.game.View()
	case ScreenSettings:
		return m.settings.View()
	case ScreenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run starts the launcher in the local terminal.
func Run(ctx *app.Context, width, height int) error {
	m := NewSessionModel(ctx, NewStyles(nil), nil, width, height)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: run menu: %w", err)
	}
	return nil
}
