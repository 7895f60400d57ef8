package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/app"
	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// exitGameMsg tells the session the player left the game.
type exitGameMsg struct{}

// GameModel runs one game: it collects key presses between ticks, steps the
// game once per tick and renders it.
type GameModel struct {
	ctx        *app.Context
	styles     *Styles
	game       registry.Game
	screen     *core.Screen
	runtime    core.RuntimeConfig
	input      core.InputFrame
	state      core.GameState
	keys       *KeyMapper
	loop       uint64
	ticks      int
	standalone bool // Esc quits the program instead of returning to a menu
	scoreSaved bool
	quitting   bool
}

// NewGameModel creates a model for game on a width x height terminal.
func NewGameModel(ctx *app.Context, styles *Styles, game registry.Game, width, height int) *GameModel {
	return &GameModel{
		ctx:     ctx,
		styles:  styles,
		game:    game,
		screen:  core.NewScreen(width, height),
		runtime: ctx.RuntimeFor(game.ID(), width, height),
		keys:    NewKeyMapper(),
	}
}

// Standalone makes Back quit the program.
func (m *GameModel) Standalone() *GameModel {
	m.standalone = true
	return m
}

func (m *GameModel) logger() *log.Logger {
	return m.ctx.Logger.With("game", m.game.ID())
}

// Init resets the game and starts a new tick loop.
func (m *GameModel) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.state = m.game.State()
	m.loop = newLoopID()
	m.logger().Info("game started", "difficulty", m.runtime.Difficulty, "seed", m.runtime.Seed,
		"width", m.runtime.ScreenW, "height", m.runtime.ScreenH)
	return tickCmd(m.loop, m.runtime.TickRate)
}

// Update handles keys, resizes and ticks.
func (m *GameModel) Update(msg tea.Msg) (*GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m *GameModel) handleKey(msg tea.KeyMsg) (*GameModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "r":
		m.restart()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// resize adopts a new terminal size. The layout is only rebuilt before the
// first tick; afterwards the game keeps its field and the screen clips.
func (m *GameModel) resize(w, h int) {
	m.screen.Resize(w, h)
	m.runtime.ScreenW, m.runtime.ScreenH = w, h
	if m.ticks == 0 {
		m.game.Reset(m.runtime)
		m.state = m.game.State()
	}
}

// restart starts a new round, with a fresh seed unless one was fixed.
func (m *GameModel) restart() {
	if m.ctx.Options.Seed == 0 {
		m.runtime.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.runtime)
	m.state = m.game.State()
	m.scoreSaved = false
	m.ticks = 0
	m.input.Clear()
	m.logger().Debug("game restarted", "seed", m.runtime.Seed)
}

func (m *GameModel) handleTick() (*GameModel, tea.Cmd) {
	res := m.game.Step(m.input)
	m.input.Clear()
	m.ticks++
	m.state = res.State

	if res.Outcome == core.OutcomeGameOver {
		m.saveScore()
	}
	if res.Outcome == core.OutcomeExitToMenu {
		m.logger().Info("game left", "score", m.state.Score, "ticks", m.ticks)
		m.saveScore()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, func() tea.Msg { return exitGameMsg{} }
	}
	return m, tickCmd(m.loop, m.runtime.TickRate)
}

// saveScore records a finished game's score once. A failed write is logged
// and play continues.
func (m *GameModel) saveScore() {
	if m.scoreSaved || !m.state.GameOver {
		return
	}
	m.scoreSaved = true
	if m.state.Score <= 0 {
		return
	}
	if m.ctx.Store == nil {
		m.logger().Debug("score not saved, no store", "score", m.state.Score)
		return
	}
	if _, err := m.ctx.Store.SaveScore(context.Background(), m.game.ID(), m.state.Score); err != nil {
		m.logger().Warn("cannot save score", "score", m.state.Score, "error", err)
		return
	}
	m.logger().Info("score saved", "score", m.state.Score, "won", m.state.Won)
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path, err := xdg.DataFile(filepath.Join(config.AppName, "screenshots", name))
	if err == nil {
		m.screen.Clear()
		m.game.Render(m.screen)
		err = os.WriteFile(path, []byte(m.screen.String()), 0o600)
	}
	if err != nil {
		m.logger().Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger().Info("screenshot saved", "path", path)
}

// State is the game state after the last tick.
func (m *GameModel) State() core.GameState {
	return m.state
}

// View renders the current frame.
func (m *GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return m.styles.RenderScreen(m.screen)
}

// gameProgram adapts a standalone GameModel to tea.Model.
type gameProgram struct {
	m *GameModel
}

func (p gameProgram) Init() tea.Cmd { return p.m.Init() }

func (p gameProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := p.m.Update(msg)
	return p, cmd
}

func (p gameProgram) View() string { return p.m.View() }

// RunGame plays one game in the local terminal until the player leaves.
func RunGame(ctx *app.Context, gameID string, width, height int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	m := NewGameModel(ctx, NewStyles(nil), game, width, height).Standalone()
	if _, err := tea.NewProgram(gameProgram{m: m}, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: run %s: %w", gameID, err)
	}
	return nil
}
