package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/f3rmion/agedash/internal/layout"
	"github.com/mattn/go-runewidth"
)

// Terminal cells per spacing unit. The bar takes its layout share of the
// slot, rounded to whole cells.
const slotCells = 6

var barCells = max(1, int(math.Round(slotCells*layout.BarWidth/layout.Spacing)))

// chartFixedLines counts the non-plot lines of a rendered chart: title,
// y label, axis, two tick label lines and legend.
const chartFixedLines = 6

// visibleBars returns how many bar slots fit in width cells.
func visibleBars(width int, c layout.Chart) int {
	n := (width - gutterWidth(c)) / slotCells
	return max(1, n)
}

func gutterWidth(c layout.Chart) int {
	return max(runewidth.StringWidth(formatValue(c.MaxHeight())), runewidth.StringWidth(c.YLabel)) + 2
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderChart draws c as vertical block bars within width x height cells,
// starting at bar index offset.
func renderChart(c layout.Chart, width, height, offset int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(c.Title))
	b.WriteString("\n")

	if len(c.Bars) == 0 {
		b.WriteString("\n")
		b.WriteString(NoDataStyle.Render("No rows match the current filters."))
		b.WriteString("\n\n")
		b.WriteString(renderLegend(c))
		return b.String()
	}

	rows := max(3, height-chartFixedLines)
	gutter := gutterWidth(c)
	n := visibleBars(width, c)
	offset = clampOffset(offset, len(c.Bars), n)
	end := min(len(c.Bars), offset+n)
	bars := c.Bars[offset:end]

	top := c.MaxHeight()
	if top <= 0 {
		top = 1
	}

	b.WriteString(AxisLabelStyle.Render(runewidth.FillRight(c.YLabel, gutter)))
	b.WriteString("\n")

	pad := (slotCells - barCells) / 2
	for row := rows - 1; row >= 0; row-- {
		label := ""
		switch row {
		case rows - 1:
			label = formatValue(c.MaxHeight())
		case 0:
			label = "0"
		}
		b.WriteString(AxisLabelStyle.Render(runewidth.FillLeft(label, gutter-2)))
		b.WriteString(AxisStyle.Render(" │"))

		for _, bar := range bars {
			cells := 0.0
			if !math.IsNaN(bar.Height) && bar.Height > 0 {
				cells = bar.Height / top * float64(rows)
			}

			glyph := " "
			switch {
			case cells >= float64(row+1):
				glyph = "█"
			case cells >= float64(row)+0.5:
				glyph = "▄"
			}

			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(barStyle(bar.Color).Render(strings.Repeat(glyph, barCells)))
			b.WriteString(strings.Repeat(" ", slotCells-pad-barCells))
		}
		b.WriteString("\n")
	}

	// Axis with scroll markers
	axis := strings.Repeat(" ", gutter-1) + "└" + strings.Repeat("─", len(bars)*slotCells)
	b.WriteString(AxisStyle.Render(axis))
	if offset > 0 {
		b.WriteString(HelpStyle.Render(fmt.Sprintf(" ◀ %d", offset)))
	}
	if end < len(c.Bars) {
		b.WriteString(HelpStyle.Render(fmt.Sprintf(" ▶ %d", len(c.Bars)-end)))
	}
	b.WriteString("\n")

	// Tick labels: one line per label line ("Country", "Gender").
	labels := make([][]string, len(bars))
	for i, bar := range bars {
		labels[i] = strings.SplitN(tickLabel(c, bar), "\n", 2)
	}
	for line := 0; line < 2; line++ {
		b.WriteString(strings.Repeat(" ", gutter))
		for _, parts := range labels {
			text := ""
			if line < len(parts) {
				text = parts[line]
			}
			text = runewidth.Truncate(text, slotCells-1, "…")
			b.WriteString(TickLabelStyle.Render(runewidth.FillRight(text, slotCells)))
		}
		b.WriteString("\n")
	}

	b.WriteString(renderLegend(c))
	return b.String()
}

// tickLabel finds the tick at a bar's position.
func tickLabel(c layout.Chart, bar layout.Bar) string {
	for _, t := range c.Ticks {
		if t.Position == bar.X {
			return t.Label
		}
	}
	return ""
}

func renderLegend(c layout.Chart) string {
	parts := []string{AxisLabelStyle.Render(c.LegendTitle + ":")}
	for _, e := range c.Legend {
		parts = append(parts, barStyle(e.Color).Render("■")+" "+TickLabelStyle.Render(e.Label))
	}
	return strings.Join(parts, "  ")
}

// clampOffset keeps a scroll offset within the bars that can be shown.
func clampOffset(offset, total, visible int) int {
	if offset > total-visible {
		offset = total - visible
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
