package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// commitMsg runs the commit phase after a move request has been rendered.
type commitMsg struct{}

// settleMsg carries the generation of the commit ticket whose delay elapsed.
type settleMsg struct {
	gen uint64
}

// frameMsg advances the animator by one frame.
type frameMsg struct{}

// commitCmd is the constructor for [commitMsg]
func commitCmd() tea.Cmd {
	return func() tea.Msg { return commitMsg{} }
}

// settleCmd fires a [settleMsg] for gen after delay.
func settleCmd(gen uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return settleMsg{gen: gen} })
}

// frameCmd fires a [frameMsg] after one frame at fps.
func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg { return frameMsg{} })
}
