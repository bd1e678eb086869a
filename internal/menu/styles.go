package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleColor   = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#89B4FA"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B7950B", Dark: "#FECA57"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
)

// Styles holds the styles for one output. Colors are dropped when the
// output is not a terminal.
type Styles struct {
	Title   lipgloss.Style
	Option  lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds styles for out.
func NewStyles(out io.Writer) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(TitleColor),
		Option:  r.NewStyle(),
		Prompt:  r.NewStyle().Foreground(MutedColor),
		Success: r.NewStyle().Foreground(SuccessColor),
		Warning: r.NewStyle().Foreground(WarningColor),
		Error:   r.NewStyle().Bold(true).Foreground(ErrorColor),
	}
}
