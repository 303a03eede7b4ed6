package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/sani"
)

// Styles maps a Theme to lipgloss styles for pager chrome.
type Styles struct {
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t sani.Theme) Styles {
	return Styles{
		Muted:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
