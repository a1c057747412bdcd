package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaBackground = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaYellow     = lipgloss.AdaptiveColor{Light: "11", Dark: "11"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	// Header styles
	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(DraculaForeground)
	HeadingStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)
	SubtleStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)

	// Buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground).
			Padding(0, 1)
	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(DraculaBackground).
				Background(DraculaPink).
				Bold(true).
				Padding(0, 1)
	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true).
				Underline(true).
				Padding(0, 1)
	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Faint(true).
				Padding(0, 1)

	// Product card styles
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 1)
	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DraculaPink).
				Padding(0, 1)
	ProductNameStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Bold(true)
	ImageStyle = lipgloss.NewStyle().
			Foreground(DraculaPurple).
			Italic(true)

	// Price styles
	PriceStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen).
			Bold(true)
	OriginalPriceStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Strikethrough(true)
	BadgeStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground).
			Background(DraculaRed).
			Bold(true).
			Padding(0, 1)

	// Rating
	StarFilledStyle = lipgloss.NewStyle().
			Foreground(DraculaYellow)
	StarEmptyStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)

	// Sidebar
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 1)
	SidebarTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	SidebarSectionStyle = lipgloss.NewStyle().
				Foreground(DraculaForeground).
				Bold(true)
	SidebarCursorStyle = lipgloss.NewStyle().
				Foreground(DraculaPink)
	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(DraculaComment)
	SliderRangeStyle = lipgloss.NewStyle().
				Foreground(DraculaPink)

	// Quick view overlay
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaPink).
			Padding(1, 2)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)

	// Landing
	LandingDividerStyle = lipgloss.NewStyle().
				Foreground(DraculaPurple).
				Faint(true)
	LandingDotStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Blink(true)
)
