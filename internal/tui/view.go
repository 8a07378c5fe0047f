package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lander/internal/throttle"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	idleStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Foreground(lipgloss.Color("242")).Padding(0, 2)
	activeStyle = idleStyle.BorderForeground(lipgloss.Color("220")).Foreground(lipgloss.Color("220")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var engineLabels = map[throttle.Throttle]string{
	throttle.Left:   "◀ left",
	throttle.Bottom: "▲ bottom",
	throttle.Right:  "right ▶",
}

func (h *Host) View() string {
	s := h.last
	var b strings.Builder

	b.WriteString(headerStyle.Render("LANDER"))
	b.WriteString("\n")

	engines := make([]string, 0, 3)
	for _, t := range []throttle.Throttle{throttle.Left, throttle.Bottom, throttle.Right} {
		style := idleStyle
		if s.Held.Has(t) {
			style = activeStyle
		}
		engines = append(engines, style.Render(engineLabels[t]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, engines...))
	b.WriteString("\n")

	b.WriteString(row("frames", fmt.Sprintf("%d", s.Frames)))
	b.WriteString(row("canvas", fmt.Sprintf("%dx%d", h.canvas.Width, h.canvas.Height)))
	for _, t := range throttle.All() {
		b.WriteString(row(t.String(), fmt.Sprintf("%d presses", s.Presses[t])))
	}

	if len(s.History) > 1 {
		graph := asciigraph.Plot(s.History,
			asciigraph.Height(4),
			asciigraph.Width(graphWidth(h.width)),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(3),
			asciigraph.Caption("engines firing"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("←/↑/→ fire engines · click: top band bottom, lower half left/right · q quit"))
	return b.String()
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func graphWidth(termWidth int) int {
	w := termWidth - 12
	if w < 10 {
		return 10
	}
	if w > 120 {
		return 120
	}
	return w
}
