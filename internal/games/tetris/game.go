package tetris

import (
	"fmt"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// ID is the registry key and asset directory name.
const ID = "tetris"

// LinePoints is the score for a single cleared line; n lines score n² times it.
const LinePoints = 100

const (
	hudHeight = 1
	blockW    = 2 // screen columns per board cell
)

// Mode selects between the start screen, solo play and two-player versus.
type Mode int

const (
	ModeSelect Mode = iota
	ModeSingle
	ModeVersus
)

// ParseMode maps a config value to a Mode. Unknown values show the start screen.
func ParseMode(s string) Mode {
	switch s {
	case "single":
		return ModeSingle
	case "versus":
		return ModeVersus
	default:
		return ModeSelect
	}
}

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeVersus:
		return "versus"
	default:
		return "select"
	}
}

var modeOptions = [...]struct {
	mode  Mode
	label string
}{
	{ModeSingle, "Single Player"},
	{ModeVersus, "2 Player (Versus)"},
}

// Game implements Tetris. The embedded Well is player one; rival is the
// second well in versus mode.
type Game struct {
	*Well

	cfg        config.TetrisConfig
	fixedCfg   bool
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	rival  *Well
	mode   Mode
	chosen Mode // survives restarts once picked on the start screen
	choice int
	paused bool
}

// New creates a Tetris game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Tetris game with explicit tuning.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset empties the wells and deals the first pieces.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.fixedCfg {
		cfg, err := config.LoadTetris(rc.ConfigPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		config.ApplyTetrisPreset(&cfg, config.ParsePreset(rc.Difficulty))
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.paused = false

	g.mode = g.chosen
	if g.mode == ModeSelect {
		g.mode = ParseMode(g.cfg.Mode)
	}
	g.start()
}

// start deals fresh wells for the current mode. Both players in versus
// get the same seed so they see the same piece sequence.
func (g *Game) start() {
	g.Well = newWell(g.cfg, g.difficulty, g.runtime.Seed)
	g.rival = nil
	if g.mode == ModeVersus {
		g.rival = newWell(g.cfg, g.difficulty, g.runtime.Seed)
	}
}

// Mode reports the active mode.
func (g *Game) Mode() Mode { return g.mode }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.mode == ModeSelect {
		g.stepSelect(in)
		return core.Result(g.State(), in)
	}
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.Result(g.State(), in)
	}
	if g.over() {
		return core.Result(g.State(), in)
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.Result(g.State(), in)
	}

	if g.rival == nil {
		g.Well.step(in, soloControls)
	} else {
		g.Well.step(in, arrowControls)
		g.rival.step(in, wasdControls)
	}
	return core.Result(g.State(), in)
}

func (g *Game) stepSelect(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.choice = (g.choice + len(modeOptions) - 1) % len(modeOptions)
	case in.Has(core.ActionDown):
		g.choice = (g.choice + 1) % len(modeOptions)
	case in.Has(core.ActionConfirm), in.Has(core.ActionFire):
		g.mode = modeOptions[g.choice].mode
		g.chosen = g.mode
		g.start()
	}
}

// over reports whether every well has topped out.
func (g *Game) over() bool {
	if g.mode == ModeSelect {
		return false
	}
	return g.Well.gameOver && (g.rival == nil || g.rival.gameOver)
}

// winner names the versus result once both wells are done.
func (g *Game) winner() string {
	switch {
	case g.Well.score > g.rival.score:
		return "PLAYER 1 WINS"
	case g.rival.score > g.Well.score:
		return "PLAYER 2 WINS"
	default:
		return "TIE"
	}
}

// Render draws the start screen or the wells with their side panels.
func (g *Game) Render(dst *core.Screen) {
	switch g.mode {
	case ModeSelect:
		g.renderSelect(dst)
		return
	case ModeVersus:
		g.renderVersus(dst)
	default:
		dst.DrawTextColored(1, 0, fmt.Sprintf("TETRIS  Score: %d  Level: %d  Lines: %d", g.score, g.level, g.lines), core.ColorBrightWhite)
		ox := max(0, (dst.Width()-g.Well.width())/2)
		g.Well.render(dst, ox, hudHeight, core.ColorGray)
	}

	switch {
	case g.over() && g.rival != nil:
		dst.DrawMessage("GAME OVER", g.winner(), fmt.Sprintf("P1: %d  P2: %d", g.Well.score, g.rival.score), "R restart  Esc menu")
	case g.over():
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d", g.score), "R restart  Esc menu")
	case g.paused:
		dst.DrawMessage("PAUSED", "P to resume")
	}
}

func (g *Game) renderSelect(dst *core.Screen) {
	top := max(0, dst.Height()/2-4)
	dst.DrawTextCenteredColored(top, "TETRIS", core.ColorBrightCyan)
	for i, opt := range modeOptions {
		label, c := "  "+opt.label+"  ", core.ColorGray
		if i == g.choice {
			label, c = "> "+opt.label+" <", core.ColorBrightWhite
		}
		dst.DrawTextCenteredColored(top+2+i, label, c)
	}
	dst.DrawTextCenteredColored(top+3+len(modeOptions), "P1: arrows   P2: WASD", core.ColorGray)
	dst.DrawTextCenteredColored(top+4+len(modeOptions), "Enter start  Esc menu", core.ColorGray)
}

func (g *Game) renderVersus(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("TETRIS VERSUS  P1: %d  P2: %d", g.Well.score, g.rival.score), core.ColorBrightWhite)
	half := dst.Width() / 2
	for i, w := range []*Well{g.Well, g.rival} {
		frame := core.ColorGray
		if w.gameOver {
			frame = core.ColorRed
		}
		ox := i*half + max(0, (half-w.width()-8)/2)
		w.render(dst, ox, hudHeight, frame)
		dst.DrawTextColored(ox+w.width()+2, hudHeight+7, fmt.Sprintf("P%d", i+1), core.ColorBrightWhite)
		dst.DrawTextColored(ox+w.width()+2, hudHeight+8, fmt.Sprintf("Lines %d", w.lines), core.ColorGray)
	}
}

// State returns the current game state. Versus reports the higher score
// and ends once both wells are full.
func (g *Game) State() core.GameState {
	score := g.Well.score
	if g.rival != nil {
		score = max(score, g.rival.score)
	}
	return core.GameState{
		Score:    score,
		GameOver: g.over(),
		Paused:   g.paused,
	}
}
