package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type statusMsg string

type errMsg struct {
	err error
}

type clearStatusMsg struct{}

func setStatus(s string) tea.Cmd {
	return func() tea.Msg { return statusMsg(s) }
}

func setError(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err: err} }
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
