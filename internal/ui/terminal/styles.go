package terminal

import "github.com/charmbracelet/lipgloss"

var (
	ColorWork   = lipgloss.Color("#E5C07B")
	ColorBreak  = lipgloss.Color("#98C379")
	ColorFg     = lipgloss.Color("#ABB2BF")
	ColorMuted  = lipgloss.Color("#636B78")
	ColorBorder = lipgloss.Color("#3F4451")
)

var (
	FaceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 4).
			Align(lipgloss.Center)

	WorkStyle = lipgloss.NewStyle().
			Foreground(ColorWork).
			Bold(true)

	BreakStyle = lipgloss.NewStyle().
			Foreground(ColorBreak).
			Bold(true)

	ClockStyle = lipgloss.NewStyle().
			Foreground(ColorFg).
			Bold(true).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorFg).
			Bold(true).
			MarginBottom(1)
)
