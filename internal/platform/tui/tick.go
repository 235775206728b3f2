// Package tui drives the simulation from a Bubble Tea program. It handles
// the tick loop, maps terminal keys to paddle key codes and renders the
// screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends one tick message after delay. The
// next tick is only scheduled once this one has been handled, so slow
// frames stretch the interval instead of queueing ticks.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
