package plot

import (
	"github.com/f3rmion/agedash/internal/layout"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	legendFontSize = 10
	legendSwatch   = 12
	legendPad      = 8
	legendGap      = 6
	legendMargin   = 10
)

// legend returns an element that draws the chart's fixed legend in the top
// right corner of the canvas.
func legend(c layout.Chart, font *truetype.Font) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		f := font
		if f == nil {
			f = defaults.Font
		}
		r.SetFont(f)
		r.SetFontSize(legendFontSize)

		lines := []string{c.LegendTitle}
		for _, e := range c.Legend {
			lines = append(lines, e.Label)
		}

		textWidth, lineHeight := 0, 0
		for _, l := range lines {
			tb := r.MeasureText(l)
			if tb.Width() > textWidth {
				textWidth = tb.Width()
			}
			if tb.Height() > lineHeight {
				lineHeight = tb.Height()
			}
		}
		if lineHeight < legendSwatch {
			lineHeight = legendSwatch
		}

		width := legendPad*2 + legendSwatch + legendGap + textWidth
		height := legendPad*2 + len(lines)*(lineHeight+legendGap) - legendGap
		left := canvas.Right - width - legendMargin
		top := canvas.Top + legendMargin

		r.SetFillColor(drawing.ColorWhite)
		r.SetStrokeColor(colorFrame)
		r.SetStrokeWidth(1)
		rect(r, left, top, left+width, top+height)
		r.FillStroke()

		y := top + legendPad + lineHeight
		r.SetFontColor(colorText)
		r.Text(c.LegendTitle, left+legendPad, y)

		for _, e := range c.Legend {
			y += lineHeight + legendGap
			col := fill(e.Color)
			r.SetFillColor(col)
			r.SetStrokeColor(col)
			r.SetStrokeWidth(0)
			rect(r, left+legendPad, y-legendSwatch, left+legendPad+legendSwatch, y)
			r.Fill()

			r.SetFontColor(colorText)
			r.Text(e.Label, left+legendPad+legendSwatch+legendGap, y)
		}
	}
}
