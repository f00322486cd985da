package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/KaramelBytes/autoreport/internal/analyze"
)

const (
	heatCellW   = 48
	heatCellH   = 28
	heatLeft    = 130
	heatTop     = 26
	heatPad     = 10
	heatMaxCols = 12
)

var (
	heatNeg  = color.NRGBA{R: 59, G: 76, B: 192, A: 255}
	heatPos  = color.NRGBA{R: 180, G: 4, B: 38, A: 255}
	heatZero = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// renderHeatmap rasters the correlation matrix as a diverging blue-white-red
// grid. go-chart has no heatmap primitive, so this composes the image
// directly; rows are labeled by name, columns by their row number.
func renderHeatmap(c *analyze.Correlation, opt Options) (Image, error) {
	n := len(c.Columns)
	if n < 2 {
		return Image{}, fmt.Errorf("need at least two numeric columns")
	}
	if n > heatMaxCols {
		n = heatMaxCols
	}

	w := heatLeft + n*heatCellW + heatPad
	h := heatTop + n*heatCellH + heatPad
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r := c.Matrix[i][j]
			x0 := heatLeft + j*heatCellW
			y0 := heatTop + i*heatCellH
			cell := image.Rect(x0, y0, x0+heatCellW-1, y0+heatCellH-1)
			draw.Draw(img, cell, image.NewUniform(divergingColor(r)), image.Point{}, draw.Src)

			label := fmt.Sprintf("%.2f", r)
			tc := color.NRGBA{R: 40, G: 40, B: 40, A: 255}
			if r > 0.6 || r < -0.6 {
				tc = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
			}
			drawText(img, label, x0+(heatCellW-7*len(label))/2, y0+heatCellH/2+4, tc)
		}
	}

	// Row labels (names) and column headers (row numbers).
	dark := color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%d. %s", i+1, truncateLabel(c.Columns[i], 15))
		drawText(img, name, 6, heatTop+i*heatCellH+heatCellH/2+4, dark)
		num := fmt.Sprintf("%d", i+1)
		drawText(img, num, heatLeft+i*heatCellW+(heatCellW-7*len(num))/2, heatTop-8, dark)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Image{}, fmt.Errorf("encode png: %w", err)
	}
	return Image{Name: "heatmap", Title: "Correlation matrix", PNG: buf.Bytes()}, nil
}

// divergingColor maps r in [-1, 1] onto blue-white-red.
func divergingColor(r float64) color.NRGBA {
	if r < -1 {
		r = -1
	} else if r > 1 {
		r = 1
	}
	if r < 0 {
		return lerpColor(heatZero, heatNeg, -r)
	}
	return lerpColor(heatZero, heatPos, r)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

func drawText(img draw.Image, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
