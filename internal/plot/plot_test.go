package plot

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/agedash/internal/filter"
	"github.com/f3rmion/agedash/internal/layout"
	"github.com/f3rmion/agedash/internal/people"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioChart() layout.Chart {
	return layout.Build(filter.View{Rows: []people.Record{
		people.NewRecord("FR", "M", "40"),
		people.NewRecord("US", "F", "25"),
		people.NewRecord("US", "M", "30"),
	}})
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func hasColor(img image.Image, r8, g8, b8 uint8) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if uint8(r>>8) == r8 && uint8(g>>8) == g8 && uint8(bl>>8) == b8 {
				return true
			}
		}
	}
	return false
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(scenarioChart(), 800, 400)
	require.NoError(t, err)

	img := decode(t, data)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
	assert.True(t, hasColor(img, 0, 0, 255), "expected blue bars")
	assert.True(t, hasColor(img, 255, 0, 0), "expected red bars")
}

func TestRenderEmptyChartKeepsLegend(t *testing.T) {
	data, err := RenderPNG(layout.Build(filter.View{}), 600, 300)
	require.NoError(t, err)

	img := decode(t, data)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.True(t, hasColor(img, 0, 0, 255), "expected male swatch")
	assert.True(t, hasColor(img, 255, 0, 0), "expected female swatch")
}

func TestRenderEmptyChartKeepsAxisName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, layout.Build(filter.View{}), Options{Format: FormatSVG, Width: 600, Height: 300}))

	svg := buf.String()
	assert.Contains(t, svg, ">"+layout.YLabel+"<")
	assert.Contains(t, svg, ">0<")
	assert.Contains(t, svg, ">"+layout.Title+"<")
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, scenarioChart(), Options{Format: FormatSVG}))
	assert.True(t, strings.Contains(buf.String(), "<svg"))
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, scenarioChart(), Options{Format: "gif"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "chart.png")
	require.NoError(t, WriteFile(path, scenarioChart(), Options{}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img := decode(t, data)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())

	err = WriteFile(filepath.Join(dir, "chart.bmp"), scenarioChart(), Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	f, err = FormatFromPath("out/chart.svg")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)

	_, err = ParseFormat("")
	assert.Error(t, err)
}

func TestLoadFontMissing(t *testing.T) {
	_, err := LoadFont(filepath.Join(t.TempDir(), "none.ttf"))
	assert.Error(t, err)
}
