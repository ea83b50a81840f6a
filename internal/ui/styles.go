package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	ColorBorder  = "240"
	ColorHeader  = "252"
	ColorID      = "214"
	ColorName    = "81"
	ColorRunning = "82"
	ColorStopped = "245"
	ColorMuted   = "240"
	ColorSuccess = "82"
	ColorError   = "196"
	ColorWarn    = "214"
)

// Shared styles
var (
	BorderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader)).Padding(0, 1)
	CellStyle    = lipgloss.NewStyle().Padding(0, 1)
	IDStyle      = CellStyle.Foreground(lipgloss.Color(ColorID))
	NameStyle    = CellStyle.Foreground(lipgloss.Color(ColorName))
	RunningStyle = CellStyle.Foreground(lipgloss.Color(ColorRunning))
	StoppedStyle = CellStyle.Foreground(lipgloss.Color(ColorStopped))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorError))
	WarnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWarn))
	LabelStyle   = lipgloss.NewStyle().Bold(true).Width(10)
)

// StateStyle picks the cell style for an instance state
func StateStyle(state string) lipgloss.Style {
	switch state {
	case "running":
		return RunningStyle
	case "stopped":
		return StoppedStyle
	default:
		return CellStyle
	}
}
