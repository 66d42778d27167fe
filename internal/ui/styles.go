package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorGreen   = lipgloss.Color("#00FF00")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorMagenta = lipgloss.Color("#FF00FF")
	ColorTeal    = lipgloss.Color("#1BA098")
	ColorAmber   = lipgloss.Color("#FFB350")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTeal)

	ModeStyle = lipgloss.NewStyle().
			Foreground(ColorAmber)

	RecordingDotStyle = lipgloss.NewStyle().
				Foreground(ColorRed).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	InfoTextStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	WarningTextStyle = lipgloss.NewStyle().
				Foreground(ColorYellow)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	UserLabelStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	BotLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTeal).
			Bold(true)

	SystemTextStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	FreshMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorMagenta).
				Bold(true)

	WelcomeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	SampleKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	ModalStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DisabledKeyStyle = lipgloss.NewStyle().
				Foreground(ColorDimGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)
)
