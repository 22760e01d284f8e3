package halfblock

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderDimensions(t *testing.T) {
	out := Render(filled(100, 80, color.White), 10, 4)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 10, strings.Count(l, "▀"))
	}
}

func TestRenderInvalidSize(t *testing.T) {
	assert.Empty(t, Render(filled(4, 4, color.White), 0, 3))
	assert.Empty(t, Render(nil, 3, 3))
	assert.Empty(t, RenderMono(filled(4, 4, color.White), 3, 0))
}

func TestRenderMonoWhiteIsBlank(t *testing.T) {
	out := RenderMono(filled(40, 40, color.White), 4, 2)
	assert.Equal(t, "    \n    ", out)
}

func TestRenderMonoTopHalfInk(t *testing.T) {
	img := filled(40, 40, color.White)
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.Black)
		}
	}

	out := RenderMono(img, 4, 2)
	assert.Equal(t, "████\n    ", out)
}

func TestRenderMonoSplitCell(t *testing.T) {
	img := filled(10, 20, color.White)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	assert.Equal(t, "▀", RenderMono(img, 1, 1))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", hex(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, "#0a0b0c", hex(color.RGBA{R: 10, G: 11, B: 12, A: 255}))
}
