// Package chart renders dashboard views as PNG images.
package chart

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorText       = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	colorMuted      = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	colorGrid       = color.RGBA{R: 225, G: 225, B: 225, A: 255}
	colorBar        = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	colorToday      = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

var face = basicfont.Face7x13

// NoData is drawn on charts with nothing to show.
const NoData = "Sin datos para la selección"

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	return img
}

// emptyChart is a titled canvas with the no-data hint in the middle.
func emptyChart(title string, w, h int) *image.RGBA {
	img := blank(w, h)
	drawText(img, (w-textWidth(title))/2, 24, title, colorText)
	drawText(img, (w-textWidth(NoData))/2, h/2, NoData, colorMuted)
	return img
}

func textWidth(s string) int {
	d := &font.Drawer{Face: face}
	return d.MeasureString(s).Ceil()
}

// drawText writes s with its baseline at y.
func drawText(dst draw.Image, x, y int, s string, c color.Color) {
	if strings.TrimSpace(s) == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// hexColor parses "#rrggbb" (or "rrggbb") into a go-chart colour.
func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
