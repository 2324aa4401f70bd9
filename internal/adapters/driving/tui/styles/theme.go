// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the status bar background.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Holiday marks public holidays.
	Holiday lipgloss.Color

	// RestDay marks weekends and other days off.
	RestDay lipgloss.Color

	// Workday marks regular and shortened workdays.
	Workday lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Background: lipgloss.Color("#181825"), // Dark gray
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Holiday:    lipgloss.Color("#FAB387"), // Peach
		RestDay:    lipgloss.Color("#89B4FA"), // Blue
		Workday:    lipgloss.Color("#A6E3A1"), // Green
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Holiday style for the status line of a public holiday.
	Holiday lipgloss.Style

	// RestDay style for the status line of a day off.
	RestDay lipgloss.Style

	// Workday style for the status line of a regular or shortened workday.
	Workday lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Background).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Holiday: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Holiday),

		RestDay: lipgloss.NewStyle().
			Foreground(theme.RestDay),

		Workday: lipgloss.NewStyle().
			Foreground(theme.Workday),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// ForStatus picks the style used to render a day status line.
func (s *Styles) ForStatus(kind domain.StatusKind) lipgloss.Style {
	switch {
	case kind == domain.StatusHoliday:
		return s.Holiday
	case kind.IsRestDay():
		return s.RestDay
	case kind.IsFailure():
		return s.Error
	case kind == domain.StatusWorkday || kind == domain.StatusShortened:
		return s.Workday
	default:
		return s.Muted
	}
}
