package tui

import (
	"github.com/charmbracelet/lipgloss"

	"interest-form/pkg/models"
)

var (
	colorAccent = lipgloss.Color("#479DAF")
	colorText   = lipgloss.Color("#D1D0CE")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorError  = lipgloss.Color("#EF4444")
)

// Styles groups the lipgloss styles used by the form
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Field    lipgloss.Style
	Focused  lipgloss.Style
	Filled   lipgloss.Style
	Error    lipgloss.Style
	Button   lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the form's color scheme
func DefaultStyles() Styles {
	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorText).
		Padding(0, 1).
		Width(48)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		Subtitle: lipgloss.NewStyle().Foreground(colorText).Width(56),
		Label:    lipgloss.NewStyle().Foreground(colorWhite).Background(colorAccent).Padding(0, 1),
		Field:    field,
		Focused:  field.BorderForeground(colorAccent),
		Filled:   field.BorderForeground(colorWhite),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Button:   lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Border(lipgloss.NormalBorder()).BorderForeground(colorWhite).Padding(0, 4),
		Status:   lipgloss.NewStyle().Foreground(colorAccent),
		Help:     lipgloss.NewStyle().Foreground(colorText).Faint(true),
	}
}

// glyph resolves the closed icon set to a terminal symbol
func glyph(icon models.Icon) string {
	switch icon {
	case models.IconUser:
		return "◉"
	case models.IconMail:
		return "✉"
	case models.IconPhone:
		return "☎"
	case models.IconCurrency:
		return "$"
	case models.IconKey:
		return "⚷"
	}
	return " "
}
