// Package tui provides the Bubble Tea host for Magic Tree.
// It runs the tick loop, maps keys to actions and draws the world.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. The simulation advances one fixed
// step per message, so a slow terminal slows the game rather than making
// it skip.
func tickCmd(tps int) tea.Cmd {
	if tps <= 0 {
		tps = 60
	}
	return tea.Tick(time.Second/time.Duration(tps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
