// Package tui provides the Bubble Tea integration for cyber-snake.
// It handles the terminal UI loop, input mapping, and the variable-rate
// tick scheduling the speed system needs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires one tick after the
// given delay. Each tick re-arms with the delay the engine reports, so
// speed-ups and effects change the cadence between any two ticks.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
