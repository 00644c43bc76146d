package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Layout constants.
const (
	defaultWidth         = 80
	filterInputCharLimit = 64
	filterInputWidth     = 40
	nameColumnWidth      = 28
)

// Styles used by the browser.
//
//nolint:gochecknoglobals // Immutable lipgloss styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	emailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	navEnabledStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	navDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// DisableColors makes every style render without color or other ANSI
// attributes.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
