// Package ui holds the lipgloss styles shared by the watch loop and the
// command layer.
package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Vesper palette.
var (
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffc799"))
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#505050"))
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	BranchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffc799"))
	CommitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#99ffe4"))
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffc799"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8080"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0"))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#505050"))
)

// Timestamp renders the HH:MM:SS prefix for cycle output lines.
func Timestamp(t time.Time) string {
	return MutedStyle.Render("[" + t.Format("15:04:05") + "]")
}
