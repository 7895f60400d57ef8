package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW    int    // play field width in cells
	ScreenH    int    // play field height in cells
	TickRate   int    // simulation ticks per second
	Seed       int64  // RNG seed; 0 lets the platform pick one
	Difficulty string // preset name: easy, normal, hard, fixed
	ConfigPath string // optional YAML tuning file; empty uses the search path
}

// DefaultConfig returns an 80x24 field at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Difficulty: "normal",
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool
	Paused   bool
}

// Outcome tells the platform what to do after a step.
type Outcome int

const (
	OutcomeInProgress Outcome = iota // keep ticking
	OutcomeGameOver                  // game ended; awaits restart or exit
	OutcomeExitToMenu                // player asked to leave
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in-progress"
	case OutcomeGameOver:
		return "game-over"
	case OutcomeExitToMenu:
		return "exit-to-menu"
	default:
		return "unknown"
	}
}

// StepResult is returned from every Step call.
type StepResult struct {
	State   GameState
	Outcome Outcome
}

// Result builds a StepResult from a state, deriving the outcome.
// Back always wins so a finished game can still be left.
func Result(state GameState, in InputFrame) StepResult {
	switch {
	case in.Has(ActionBack):
		return StepResult{State: state, Outcome: OutcomeExitToMenu}
	case state.GameOver:
		return StepResult{State: state, Outcome: OutcomeGameOver}
	default:
		return StepResult{State: state, Outcome: OutcomeInProgress}
	}
}
