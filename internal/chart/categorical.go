package chart

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/KaramelBytes/autoreport/internal/analyze"
)

var palette = []drawing.Color{
	{R: 66, G: 133, B: 244, A: 255},
	{R: 219, G: 68, B: 55, A: 255},
	{R: 244, G: 180, B: 0, A: 255},
	{R: 15, G: 157, B: 88, A: 255},
	{R: 171, G: 71, B: 188, A: 255},
	{R: 0, G: 172, B: 193, A: 255},
	{R: 255, G: 112, B: 67, A: 255},
	{R: 158, G: 157, B: 36, A: 255},
}

// renderBar draws the top category frequencies of one column.
func renderBar(p analyze.CategoricalProfile, opt Options) (Image, error) {
	values := p.Values
	if len(values) == 0 {
		return Image{}, fmt.Errorf("no categories")
	}
	if opt.TopN > 0 && len(values) > opt.TopN {
		values = values[:opt.TopN]
	}

	bars := make([]chart.Value, len(values))
	for i, v := range values {
		bars[i] = chart.Value{
			Value: float64(v.Count),
			Label: truncateLabel(v.Value, 14),
			Style: chart.Style{FillColor: palette[i%len(palette)], StrokeWidth: 0},
		}
	}
	bc := chart.BarChart{
		Title:      fmt.Sprintf("Top values of %s", p.Name),
		Width:      opt.Width,
		Height:     opt.Height,
		BarWidth:   barWidth(opt.Width, len(bars)),
		BarSpacing: 8,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 12, Right: 12, Bottom: 12}},
		Bars:       bars,
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return Image{}, fmt.Errorf("render: %w", err)
	}
	return Image{Name: "bar_" + p.Name, Title: bc.Title, PNG: buf.Bytes()}, nil
}

// renderPie draws the category share of one column. Categories beyond TopN
// collapse into an "other" slice so the chart stays readable.
func renderPie(p analyze.CategoricalProfile, opt Options) (Image, error) {
	if len(p.Values) < 2 {
		return Image{}, fmt.Errorf("need at least two categories")
	}
	values := p.Values
	topN := opt.TopN
	if topN <= 0 {
		topN = 8
	}
	var slices []chart.Value
	shown := 0
	for i, v := range values {
		if i >= topN {
			break
		}
		slices = append(slices, chart.Value{Value: float64(v.Count), Label: truncateLabel(v.Value, 14)})
		shown += v.Count
	}
	if rest := p.Count - shown; rest > 0 {
		slices = append(slices, chart.Value{Value: float64(rest), Label: "other"})
	}

	size := opt.Height
	pc := chart.PieChart{
		Title:  fmt.Sprintf("Share of %s", p.Name),
		Width:  size,
		Height: size,
		Values: slices,
	}
	var buf bytes.Buffer
	if err := pc.Render(chart.PNG, &buf); err != nil {
		return Image{}, fmt.Errorf("render: %w", err)
	}
	return Image{Name: "pie_" + p.Name, Title: pc.Title, PNG: buf.Bytes()}, nil
}

// truncateLabel shortens a label to n runes, never splitting a multi-byte
// character.
func truncateLabel(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
