// Package tui provides the interactive terminal dashboard for agedash.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/agedash/internal/people"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - section headers
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - focus
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - status
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color

	ColorMale   = lipgloss.Color("#4d7cfe") // Blue bars
	ColorFemale = lipgloss.Color("#ff4d4d") // Red bars
)

// Sidebar styles
var (
	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderRight(true).
			BorderForeground(ColorBorder).
			Padding(1, 1)

	SidebarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Background(ColorBg).
				Padding(0, 1).
				MarginBottom(1)

	SidebarHelpStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				MarginTop(1).
				Padding(0, 1)
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Chart styles
var (
	AxisStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	AxisLabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	TickLabelStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MaleBarStyle = lipgloss.NewStyle().
			Foreground(ColorMale)

	FemaleBarStyle = lipgloss.NewStyle().
			Foreground(ColorFemale)

	UnmappedBarStyle = lipgloss.NewStyle()

	NoDataStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// barStyle returns the bar style for a display color.
func barStyle(c people.Color) lipgloss.Style {
	switch c {
	case people.ColorBlue:
		return MaleBarStyle
	case people.ColorRed:
		return FemaleBarStyle
	default:
		return UnmappedBarStyle
	}
}

// Section styles
var (
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	SectionFocusedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// Content area style
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)
