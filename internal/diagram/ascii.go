package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aminghali/structural-engineering-notebooks/internal/beam"
	"github.com/aminghali/structural-engineering-notebooks/internal/rebar"
	"github.com/guptarohit/asciigraph"
)

// ForcePreview renders the shear and bending moment diagrams as terminal
// charts. Moment is drawn positive downward, as on the PDF figure.
func ForcePreview(span beam.SimpleSpan, samples int) string {
	stations := span.Sample(samples)
	shear := make([]float64, len(stations))
	moment := make([]float64, len(stations))
	for i, st := range stations {
		shear[i] = st.Shear
		moment[i] = -st.Moment
	}

	width := len(stations)
	if width > 60 {
		width = 60
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(shear,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("Shear Force (kN), Vmax = %.1f", span.MaxShear())),
	))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(moment,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("Bending Moment (kN·m, positive down), Mmax = %.1f", span.MaxMoment())),
	))
	sb.WriteString("\n")
	return sb.String()
}

// DrawSectionSketch draws the section outline with the bar row marked.
func DrawSectionSketch(l *rebar.Layout) string {
	const widthChars, heightChars = 30, 12

	row := heightChars - 1 - int(l.Cover/l.Height*float64(heightChars-2))
	if row < 1 {
		row = 1
	}
	if row > heightChars-2 {
		row = heightChars - 2
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  SECTION %g × %g mm\n", l.Width, l.Height))
	sb.WriteString("  " + strings.Repeat("─", 17) + "\n")

	for i := 0; i < heightChars; i++ {
		switch i {
		case 0:
			sb.WriteString("  ┌" + strings.Repeat("─", widthChars) + "┐\n")
		case heightChars - 1:
			sb.WriteString("  └" + strings.Repeat("─", widthChars) + "┘\n")
		case row:
			fill := []rune(strings.Repeat(" ", widthChars))
			for _, bar := range l.Bars {
				col := int(bar.X / l.Width * float64(widthChars-1))
				fill[col] = '●'
			}
			sb.WriteString(fmt.Sprintf("  │%s│ ◄─ %d × Ø%g @ %g mm cover\n", string(fill), l.Count, l.BarDiameter, l.Cover))
		default:
			sb.WriteString("  │" + strings.Repeat(" ", widthChars) + "│\n")
		}
	}

	if l.Count > 1 {
		sb.WriteString(fmt.Sprintf("  Bar spacing: %.1f mm c/c\n", l.Spacing))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-utf8.RuneCountInString(s))
	}

	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
