package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorAccent = lipgloss.Color("#FFA94D") // Orange for titles and buttons
	colorText   = lipgloss.Color("#F8F9FA")
	colorDim    = lipgloss.Color("#868E96")
	colorOwe    = lipgloss.Color("#E03131") // Red: user owes friend
	colorOwed   = lipgloss.Color("#66A80F") // Green: friend owes user
	colorRow    = lipgloss.Color("#495057") // Selected row background
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	NameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	DimmedStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	OweStyle = lipgloss.NewStyle().
			Foreground(colorOwe)

	OwedStyle = lipgloss.NewStyle().
			Foreground(colorOwed)

	EvenStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// Row under the cursor
	CursorStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Row selected for a split
	SelectedRowStyle = lipgloss.NewStyle().
				Background(colorRow)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#212529")).
			Background(colorAccent).
			Padding(0, 1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Width(22)

	FocusedLabelStyle = LabelStyle.
				Foreground(colorAccent)

	FormStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			MarginTop(1)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorOwe).
			Padding(1, 3).
			MarginTop(1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			MarginTop(1)
)
