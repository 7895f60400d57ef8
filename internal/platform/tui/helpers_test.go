package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/app"
	"github.com/vovakirdan/classic-arcade/internal/assets"
	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/menu"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

const stubID = "stub-tui"

// stubGame ends with a score of 5 when Fire is pressed.
type stubGame struct {
	resets int
	steps  int
	last   core.InputFrame
	score  int
	over   bool
}

func (g *stubGame) ID() string    { return stubID }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.score, g.over = 0, false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	if in.Has(core.ActionFire) {
		g.score, g.over = 5, true
	}
	return core.Result(g.State(), in)
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf("STUB %d", g.score))
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func init() {
	registry.Register(stubID, func() registry.Game { return &stubGame{} })
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// gridContext builds a context with n placeholder games and a small layout:
// boxes 8 wide and 4 rows tall.
func gridContext(n int) *app.Context {
	layout := config.Layout{BoxSize: 8, HSpacing: 2, VSpacing: 1}
	size := menu.IconSize(layout)
	entries := make([]app.Entry, n)
	for i := range entries {
		entries[i] = app.Entry{
			Kind:  app.KindGame,
			Title: fmt.Sprintf("Game %d", i),
			Game:  registry.Descriptor{ID: fmt.Sprintf("g%d", i)},
			Icon:  assets.Placeholder(size, assets.PlaceholderGray),
		}
	}
	return &app.Context{Logger: quietLogger(), Layout: layout, Entries: entries}
}

// appContext builds a full context over temp files. dbPath "-" disables scores.
func appContext(t *testing.T, dbPath string) *app.Context {
	t.Helper()
	dir := t.TempDir()
	if dbPath == "" {
		dbPath = filepath.Join(dir, "scores.db")
	}
	ctx, err := app.New(app.Options{
		Seed:         7,
		DBPath:       dbPath,
		AssetsDir:    filepath.Join(dir, "assets"),
		SettingsPath: filepath.Join(dir, "settings.yaml"),
	}, quietLogger())
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// run executes cmd and returns its message, nil for a nil command.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func isQuit(cmd tea.Cmd) bool {
	_, ok := run(cmd).(tea.QuitMsg)
	return ok
}

func resize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
