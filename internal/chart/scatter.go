package chart

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/KaramelBytes/autoreport/internal/analyze"
)

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// renderScatter plots the strongest correlated numeric pair.
func renderScatter(c *analyze.Correlation, opt Options) (Image, error) {
	if len(c.Pairs) == 0 || len(c.TopPoints) < 2 {
		return Image{}, fmt.Errorf("not enough paired observations")
	}
	top := c.Pairs[0]
	xs := make([]float64, len(c.TopPoints))
	ys := make([]float64, len(c.TopPoints))
	for i, pt := range c.TopPoints {
		xs[i] = pt.X
		ys[i] = pt.Y
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("%s vs %s (r=%.3f)", top.A, top.B, top.R),
		Width:      opt.Width,
		Height:     opt.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 12}},
		XAxis:      chart.XAxis{Name: top.A},
		YAxis:      chart.YAxis{Name: top.B},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(palette[0]),
			},
		},
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return Image{}, fmt.Errorf("render: %w", err)
	}
	return Image{Name: "scatter", Title: ch.Title, PNG: buf.Bytes()}, nil
}
