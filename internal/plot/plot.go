// Package plot draws chart descriptions as PNG or SVG images with go-chart.
package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/agedash/internal/layout"
	"github.com/f3rmion/agedash/internal/people"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Default canvas size: a 14x6 inch figure at 100 DPI.
const (
	DefaultWidth  = 1400
	DefaultHeight = 600
)

// ErrUnknownFormat is returned for formats other than png and svg.
var ErrUnknownFormat = errors.New("unknown image format")

// Options controls rendering.
type Options struct {
	Format Format
	Width  int
	Height int
	Font   *truetype.Font // nil uses the go-chart default font
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = FormatPNG
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

var (
	colorBlue  = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	colorRed   = drawing.Color{R: 255, G: 0, B: 0, A: 255}
	colorText  = drawing.Color{R: 51, G: 51, B: 51, A: 255}
	colorFrame = drawing.Color{R: 204, G: 204, B: 204, A: 255}

	// go-chart replaces all-zero colors with palette colors, so the
	// invisible color needs a non-zero channel.
	colorNone = drawing.Color{R: 255, G: 255, B: 255, A: 0}
)

// fill maps a display color to a drawing color. Unmapped colors are
// transparent.
func fill(c people.Color) drawing.Color {
	switch c {
	case people.ColorBlue:
		return colorBlue
	case people.ColorRed:
		return colorRed
	default:
		return colorNone
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// LoadFont parses a TrueType font file.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return f, nil
}

// Render draws c to w.
func Render(w io.Writer, c layout.Chart, opts Options) error {
	opts = opts.withDefaults()

	var rp chart.RendererProvider
	switch opts.Format {
	case FormatPNG:
		rp = chart.PNG
	case FormatSVG:
		rp = chart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	font := opts.Font
	if font == nil {
		f, err := chart.GetDefaultFont()
		if err != nil {
			return fmt.Errorf("loading default font: %w", err)
		}
		font = f
	}

	// go-chart refuses bar charts without bars.
	if len(c.Bars) == 0 {
		return renderEmpty(w, rp, c, opts, font)
	}

	bc := barChart(c, opts, font)
	if err := bc.Render(rp, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// RenderPNG renders c as PNG bytes.
func RenderPNG(c layout.Chart, width, height int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, c, Options{Format: FormatPNG, Width: width, Height: height}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders c into a file, picking the format from its extension
// unless opts.Format is set.
func WriteFile(path string, c layout.Chart, opts Options) error {
	if opts.Format == "" {
		format, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		opts.Format = format
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Render(f, c, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

const (
	padTop    = 60
	padLeft   = 20
	padRight  = 20
	padBottom = 20

	// Room left of and below the empty chart's axes for ticks and the axis name.
	emptyAxisMargin = 40
)

func barChart(c layout.Chart, opts Options, font *truetype.Font) chart.BarChart {
	bars := make([]chart.Value, len(c.Bars))
	labels := make(map[float64]string, len(c.Ticks))
	for _, t := range c.Ticks {
		labels[t.Position] = t.Label
	}
	for i, b := range c.Bars {
		h := b.Height
		if math.IsNaN(h) || math.IsInf(h, 0) {
			h = 0
		}
		col := fill(b.Color)
		bars[i] = chart.Value{
			Value: h,
			Label: labels[b.X],
			Style: chart.Style{
				FillColor:   col,
				StrokeColor: col,
				StrokeWidth: 0,
			},
		}
	}

	// One slot per spacing unit; the bar takes its layout share of the slot.
	plotWidth := opts.Width - padLeft - padRight - 60
	slot := float64(plotWidth) / (float64(len(c.Bars)) * layout.Spacing)
	barWidth := int(slot * layout.BarWidth / layout.Spacing)
	if barWidth < 1 {
		barWidth = 1
	}
	spacing := int(slot) - barWidth
	if spacing < 1 {
		spacing = 1
	}

	max := c.MaxHeight()
	if max <= 0 {
		max = 1
	}

	return chart.BarChart{
		Title:      c.Title,
		TitleStyle: chart.Style{FontSize: 14, FontColor: colorText},
		Width:      opts.Width,
		Height:     opts.Height,
		Font:       font,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{
			Padding: chart.Box{Top: padTop, Left: padLeft, Right: padRight, Bottom: padBottom},
		},
		XAxis: chart.Style{
			FontSize:            9,
			TextRotationDegrees: c.TickRotation,
		},
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: max * 1.05},
		},
		Bars:     bars,
		Elements: []chart.Renderable{legend(c, font)},
	}
}

// renderEmpty draws the title and legend on a blank canvas.
func renderEmpty(w io.Writer, rp chart.RendererProvider, c layout.Chart, opts Options, font *truetype.Font) error {
	r, err := rp(opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeColor(drawing.ColorWhite)
	r.SetStrokeWidth(0)
	rect(r, 0, 0, opts.Width, opts.Height)
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(colorText)
	r.SetFontSize(14)
	tb := r.MeasureText(c.Title)
	r.Text(c.Title, (opts.Width-tb.Width())/2, padTop/2+tb.Height()/2)

	canvas := chart.Box{Top: padTop, Left: padLeft, Right: opts.Width - padRight, Bottom: opts.Height - padBottom}
	emptyAxes(r, c, canvas, font)
	legend(c, font)(r, canvas, chart.Style{Font: font})

	if err := r.Save(w); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	return nil
}

// emptyAxes draws the x and y axis lines, a zero tick and the y axis name
// for a chart without bars.
func emptyAxes(r chart.Renderer, c layout.Chart, canvas chart.Box, font *truetype.Font) {
	left := canvas.Left + emptyAxisMargin
	bottom := canvas.Bottom - emptyAxisMargin

	r.SetStrokeColor(colorText)
	r.SetStrokeWidth(1)
	r.MoveTo(left, canvas.Top)
	r.LineTo(left, bottom)
	r.LineTo(canvas.Right, bottom)
	r.Stroke()

	tickStyle := chart.Style{Font: font, FontSize: 9, FontColor: colorText}
	tb := chart.Draw.MeasureText(r, "0", tickStyle)
	chart.Draw.Text(r, "0", left-tb.Width()-4, bottom+tb.Height()/2, tickStyle)

	nameStyle := chart.Style{Font: font, FontSize: 10, FontColor: colorText, TextRotationDegrees: 90}
	nb := chart.Draw.MeasureText(r, c.YLabel, nameStyle)
	chart.Draw.Text(r, c.YLabel, canvas.Left+nb.Width(), canvas.Top+(bottom-canvas.Top)/2, nameStyle)
}

func rect(r chart.Renderer, left, top, right, bottom int) {
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.LineTo(left, top)
	r.Close()
}
