package canvas

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/text-style-control/internal/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Rows returns how many terminal rows one text line occupies at the given
// line height multiplier.
func Rows(multiplier float64) int {
	rows := int(math.Round(multiplier))
	if rows < 1 {
		return 1
	}
	return rows
}

// Align maps a justification onto lipgloss alignment.
func Align(j style.Justification) lipgloss.Position {
	switch j {
	case style.Center:
		return lipgloss.Center
	case style.Right:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Title describes the element's font for the panel header.
func Title(s style.Snapshot) string {
	var attrs []string
	if s.Bold {
		attrs = append(attrs, "bold")
	}
	if s.Italic {
		attrs = append(attrs, "italic")
	}
	title := fmt.Sprintf("%s %dpt", s.FontFamily, s.FontSize)
	if len(attrs) > 0 {
		title += " " + strings.Join(attrs, " ")
	}
	return title
}

// Render draws the element into a width by height block of terminal text.
// Point size cannot be shown in a terminal so it only appears in the title.
func (c *Canvas) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	snap := c.model.Snapshot()
	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(snap.Color.Hex())).
		Bold(snap.Bold).
		Italic(snap.Italic)
	lineStyle := lipgloss.NewStyle().Width(width).Align(Align(snap.Justification))

	rows := Rows(snap.LineHeight)
	out := make([]string, 0, height)
	for i, line := range strings.Split(snap.Text, "\n") {
		if i > 0 {
			for gap := 1; gap < rows; gap++ {
				out = append(out, "")
			}
		}
		line = truncate.String(line, uint(width))
		out = append(out, lineStyle.Render(textStyle.Render(line)))
	}
	if len(out) > height {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}
