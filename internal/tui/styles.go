package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Underline(true)

	selectedStyle = lipgloss.NewStyle().Reverse(true)
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	cellStyle       = lipgloss.NewStyle().Width(6).Align(lipgloss.Right)
	outOfMonthStyle = cellStyle.Faint(true)
	todayCellStyle  = cellStyle.Bold(true).Underline(true)
	selectedCell    = cellStyle.Reverse(true)
)
