package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives the control poll and the redraw.
type TickMsg time.Time

// ErrorMsg reports a failure from outside the UI, such as the audio sink.
type ErrorMsg struct {
	Err error
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
