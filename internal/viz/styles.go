package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) captionStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text).Italic(true).PaddingLeft(2)
}

// ProgressBar renders the fraction of the frame interval that has passed.
func (t Theme) ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	done := lipgloss.NewStyle().Foreground(t.Bar).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
	return done + rest
}

// FrameDots renders one dot per frame with the current one highlighted.
func (t Theme) FrameDots(current, total int) string {
	var b strings.Builder
	for i := 0; i < total; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == current {
			b.WriteString(lipgloss.NewStyle().Foreground(t.Bar).Render("●"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(t.Muted).Render("○"))
		}
	}
	return b.String()
}
