// Package tui hosts Dark Path in a terminal through Bubble Tea: the tick
// loop, key bindings, held-key emulation, rendering, the level overview and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameTime returns the seconds elapsed between two ticks, clamped to
// (0, limit]. The first tick (zero last) uses the nominal tick interval.
func frameTime(last, now time.Time, tickRate int, limit float64) float64 {
	var dt float64
	if last.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		dt = 1 / float64(tickRate)
	} else {
		dt = now.Sub(last).Seconds()
	}
	if dt <= 0 {
		return 0
	}
	if limit > 0 && dt > limit {
		return limit
	}
	return dt
}
