// Package tui runs the arcade in a terminal with Bubble Tea: the fixed-rate
// tick loop, key mapping, the launcher grid and the screens around it.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. Loop identifies the tick loop that
// scheduled it, so a loop that was abandoned stops on its next tick.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var loopSeq atomic.Uint64

// newLoopID returns a fresh tick loop identifier.
func newLoopID() uint64 {
	return loopSeq.Add(1)
}

// tickInterval is the fixed timestep for a tick rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next tick of loop.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
