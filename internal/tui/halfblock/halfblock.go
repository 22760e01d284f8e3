// Package halfblock renders raster images as terminal art using half-block
// characters, two vertical pixels per cell.
package halfblock

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Render draws img in cols x rows cells. Each cell is an upper half block
// whose foreground is the top pixel and background the bottom pixel.
func Render(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	scaled := scale(img, cols, rows*2)

	var result strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := scaled.RGBAAt(col, row*2)
			bottom := scaled.RGBAAt(col, row*2+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom)))
			result.WriteString(style.Render("▀"))
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

// RenderMono draws img with ink characters only (▀▄█ and space), for
// terminals without color. Dark pixels are ink.
func RenderMono(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	scaled := scale(img, cols, rows*2)

	var result strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := isInk(scaled.RGBAAt(col, row*2))
			bottomOn := isInk(scaled.RGBAAt(col, row*2+1))

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

// scale resizes img to exactly width x height pixels.
func scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Threshold for "ink" on a light background.
const inkThreshold = 200

func isInk(c color.RGBA) bool {
	if c.A == 0 {
		return false
	}
	lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	return lum < inkThreshold
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
