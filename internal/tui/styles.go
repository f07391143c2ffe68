package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/camset/internal/version"
)

// Application branding constants
const (
	AppName = "CAMERA SETTINGS"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Row layout. Columns are fixed so mouse hits can be mapped without
// measuring the rendered string.
const (
	cursorWidth = 2  // "> " or "  "
	titleWidth  = 18 // setting title column
	buttonWidth = 3  // "[+]" / "[-]"
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
)

var (
	// Title style - bold header line
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Cursor shown left of the focused row
	CursorStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Setting title column
	RowTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Width(titleWidth)

	// Setting title column of the focused row
	FocusedRowTitleStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true).
				Width(titleWidth)

	// Current value label
	EntryStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Align(lipgloss.Center)

	// Label forced by a scene mode
	OverriddenEntryStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Italic(true).
				Align(lipgloss.Center)

	// Visible step button
	ButtonStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Step button while it is held down
	PressedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true)

	// Status line
	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Status line for errors
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			PaddingTop(1)
)
