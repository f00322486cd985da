package chart

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/KaramelBytes/autoreport/internal/analyze"
)

var histogramFill = drawing.Color{R: 66, G: 133, B: 244, A: 255}

// renderHistogram bins a numeric column and draws the counts as a bar chart.
func renderHistogram(p analyze.NumericProfile, opt Options) (Image, error) {
	if len(p.Values) < 2 || p.Range == 0 {
		return Image{}, fmt.Errorf("not enough distinct values")
	}

	bins := sturges(len(p.Values), opt.Bins)
	width := p.Range / float64(bins)
	counts := make([]int, bins)
	for _, v := range p.Values {
		i := int((v - p.Min) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	bars := make([]chart.Value, bins)
	for i, n := range counts {
		lo := p.Min + float64(i)*width
		bars[i] = chart.Value{
			Value: float64(n),
			Label: fmt.Sprintf("%.3g", lo+width/2),
			Style: chart.Style{FillColor: histogramFill, StrokeWidth: 0},
		}
	}

	bc := chart.BarChart{
		Title:      fmt.Sprintf("Distribution of %s", p.Name),
		Width:      opt.Width,
		Height:     opt.Height,
		BarWidth:   barWidth(opt.Width, bins),
		BarSpacing: 4,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 12, Right: 12, Bottom: 12}},
		Bars:       bars,
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return Image{}, fmt.Errorf("render: %w", err)
	}
	return Image{Name: "hist_" + p.Name, Title: bc.Title, PNG: buf.Bytes()}, nil
}

// sturges picks the bin count by Sturges' rule, clamped to [5, cap].
func sturges(n, capBins int) int {
	k := int(math.Ceil(math.Log2(float64(n)))) + 1
	if k < 5 {
		k = 5
	}
	if capBins > 0 && k > capBins {
		k = capBins
	}
	return k
}

func barWidth(chartWidth, bins int) int {
	w := (chartWidth - 60) / bins
	if w < 8 {
		w = 8
	}
	if w > 60 {
		w = 60
	}
	return w
}
