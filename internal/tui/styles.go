package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent     = lipgloss.Color("#FFD700") // Gold — prisoner highlight
	colorSuccess    = lipgloss.Color("#00E676") // Green — solved
	colorMuted      = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite      = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorSurface    = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim = lipgloss.Color("#181825") // Darkest surface — footer bg
)

// Status bar styles — solid background, one line above the board.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleStatusDone = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)
)

// Board pane styles.
var (
	styleBoard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleMoveLabel = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleMoveStart = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Footer styles — key/desc contrast over a dim background.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
