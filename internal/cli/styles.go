package cli

import "github.com/charmbracelet/lipgloss"

// Adaptive colors for dashboard output.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

type styles struct {
	brand  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	hint   lipgloss.Style

	// Status badges.
	pending  lipgloss.Style
	approved lipgloss.Style
}

func newStyles(color bool) styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	if !color {
		return styles{
			brand:    lipgloss.NewStyle().Bold(true),
			label:    lipgloss.NewStyle(),
			value:    lipgloss.NewStyle(),
			header:   cell.Bold(true),
			cell:     cell,
			border:   lipgloss.NewStyle(),
			hint:     lipgloss.NewStyle(),
			pending:  cell,
			approved: cell,
		}
	}
	return styles{
		brand:    lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		label:    lipgloss.NewStyle().Foreground(colorDim),
		value:    lipgloss.NewStyle().Foreground(colorWhite),
		header:   cell.Bold(true).Foreground(colorCyan),
		cell:     cell.Foreground(colorWhite),
		border:   lipgloss.NewStyle().Foreground(colorDim),
		hint:     lipgloss.NewStyle().Foreground(colorDim),
		pending:  cell.Bold(true).Foreground(colorYellow),
		approved: cell.Foreground(colorGreen),
	}
}
