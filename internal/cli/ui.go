package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the interactive preview.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for the preview heading.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleStatus for the width/mode status line.
	styleStatus = lipgloss.NewStyle().Foreground(colorGray)

	// styleHint for key binding hints.
	styleHint = lipgloss.NewStyle().Foreground(colorDim)

	// styleError for inline error messages.
	styleError = lipgloss.NewStyle().Foreground(colorRed)

	// styleFrame draws a border around the rendered output so padding
	// spaces stay visible.
	styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Foreground(colorWhite)
)
