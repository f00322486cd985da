// Package chart renders analysis results as in-memory PNG images using
// go-chart, plus a manually rastered correlation heatmap.
package chart

import (
	"fmt"

	"github.com/KaramelBytes/autoreport/internal/analyze"
)

// Options controls chart rendering.
type Options struct {
	Width  int
	Height int
	// Bins caps histogram bin count; the actual count follows Sturges' rule.
	Bins int
	// MaxHistograms limits how many numeric columns get a histogram.
	MaxHistograms int
	// TopN limits bar/pie chart categories.
	TopN int
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{Width: 640, Height: 400, Bins: 20, MaxHistograms: 6, TopN: 8}
}

// Image is one rendered chart.
type Image struct {
	// Name is a short identifier, unique within one run.
	Name  string
	Title string
	PNG   []byte
}

// Render produces every chart the analysis supports. Charts with too little
// data are skipped with a note rather than failing the run.
func Render(a *analyze.Analysis, opt Options) (images []Image, skipped []string) {
	if opt.Width <= 0 || opt.Height <= 0 {
		def := DefaultOptions()
		opt.Width, opt.Height = def.Width, def.Height
	}

	count := 0
	for _, p := range a.Numeric {
		if opt.MaxHistograms > 0 && count >= opt.MaxHistograms {
			skipped = append(skipped, fmt.Sprintf("histogram cap reached, skipped %d numeric column(s)", len(a.Numeric)-count))
			break
		}
		img, err := renderHistogram(p, opt)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("histogram %s: %v", p.Name, err))
			continue
		}
		images = append(images, img)
		count++
	}

	if len(a.Category) > 0 {
		if img, err := renderBar(a.Category[0], opt); err != nil {
			skipped = append(skipped, fmt.Sprintf("bar chart %s: %v", a.Category[0].Name, err))
		} else {
			images = append(images, img)
		}
		if img, err := renderPie(a.Category[0], opt); err != nil {
			skipped = append(skipped, fmt.Sprintf("pie chart %s: %v", a.Category[0].Name, err))
		} else {
			images = append(images, img)
		}
	}

	if a.Corr != nil {
		if img, err := renderHeatmap(a.Corr, opt); err != nil {
			skipped = append(skipped, fmt.Sprintf("correlation heatmap: %v", err))
		} else {
			images = append(images, img)
		}
		if img, err := renderScatter(a.Corr, opt); err != nil {
			skipped = append(skipped, fmt.Sprintf("scatter plot: %v", err))
		} else {
			images = append(images, img)
		}
	}
	return images, skipped
}
