// Package tui is the terminal frontend of the kitchen: a Bubble Tea program
// that feeds mouse clicks, digit keys, resizes and frame ticks into a
// scene.Session and draws it with lipgloss. It can also be served over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
