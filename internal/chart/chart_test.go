package chart

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/KaramelBytes/autoreport/internal/analyze"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func checkPNG(t *testing.T, img Image) {
	t.Helper()
	if !bytes.HasPrefix(img.PNG, pngMagic) {
		t.Fatalf("%s: not a PNG (%d bytes)", img.Name, len(img.PNG))
	}
}

func sampleProfile(name string) analyze.NumericProfile {
	vals := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 8, 2.5, 3.5, 4.5, 1.5, 6, 7}
	return analyze.NumericProfile{
		Name:   name,
		Count:  len(vals),
		Min:    1,
		Max:    8,
		Range:  7,
		Values: vals,
	}
}

func sampleCategory() analyze.CategoricalProfile {
	return analyze.CategoricalProfile{
		Name:   "region",
		Count:  10,
		Unique: 3,
		Values: []analyze.CategoryCount{
			{Value: "north", Count: 5},
			{Value: "south", Count: 3},
			{Value: "west", Count: 2},
		},
	}
}

func sampleCorr() *analyze.Correlation {
	return &analyze.Correlation{
		Columns: []string{"x", "y"},
		Matrix:  [][]float64{{1, 0.9}, {0.9, 1}},
		Pairs:   []analyze.CorrPair{{A: "x", B: "y", R: 0.9, Strength: "very strong"}},
		TopPoints: []analyze.Point{
			{X: 1, Y: 2}, {X: 2, Y: 4.1}, {X: 3, Y: 5.9}, {X: 4, Y: 8.2},
		},
	}
}

func TestRenderHistogram(t *testing.T) {
	img, err := renderHistogram(sampleProfile("v"), DefaultOptions())
	if err != nil {
		t.Fatalf("renderHistogram: %v", err)
	}
	if img.Name != "hist_v" || !strings.Contains(img.Title, "v") {
		t.Fatalf("image = %q / %q", img.Name, img.Title)
	}
	checkPNG(t, img)
}

func TestRenderHistogramConstantColumn(t *testing.T) {
	p := analyze.NumericProfile{Name: "flat", Values: []float64{5, 5, 5}, Min: 5, Max: 5}
	if _, err := renderHistogram(p, DefaultOptions()); err == nil {
		t.Fatal("expected error for zero-range column")
	}
}

func TestSturges(t *testing.T) {
	cases := []struct {
		n, cap, want int
	}{
		{16, 20, 5},
		{1000, 20, 11},
		{1 << 30, 20, 20}, // clamped to cap
		{2, 20, 5},        // floor of 5
	}
	for _, c := range cases {
		if got := sturges(c.n, c.cap); got != c.want {
			t.Fatalf("sturges(%d, %d) = %d, want %d", c.n, c.cap, got, c.want)
		}
	}
}

func TestRenderBarAndPie(t *testing.T) {
	opt := DefaultOptions()
	bar, err := renderBar(sampleCategory(), opt)
	if err != nil {
		t.Fatalf("renderBar: %v", err)
	}
	checkPNG(t, bar)

	pie, err := renderPie(sampleCategory(), opt)
	if err != nil {
		t.Fatalf("renderPie: %v", err)
	}
	checkPNG(t, pie)
}

func TestRenderPieSingleCategory(t *testing.T) {
	p := analyze.CategoricalProfile{
		Name:   "status",
		Count:  5,
		Unique: 1,
		Values: []analyze.CategoryCount{{Value: "done", Count: 5}},
	}
	if _, err := renderPie(p, DefaultOptions()); err == nil {
		t.Fatal("expected error for single-category pie")
	}
}

func TestRenderHeatmap(t *testing.T) {
	img, err := renderHeatmap(sampleCorr(), DefaultOptions())
	if err != nil {
		t.Fatalf("renderHeatmap: %v", err)
	}
	checkPNG(t, img)
}

func TestRenderScatter(t *testing.T) {
	img, err := renderScatter(sampleCorr(), DefaultOptions())
	if err != nil {
		t.Fatalf("renderScatter: %v", err)
	}
	checkPNG(t, img)
	if !strings.Contains(img.Title, "x vs y") {
		t.Fatalf("title = %q", img.Title)
	}
}

func TestRenderScatterTooFewPoints(t *testing.T) {
	c := sampleCorr()
	c.TopPoints = c.TopPoints[:1]
	if _, err := renderScatter(c, DefaultOptions()); err == nil {
		t.Fatal("expected error with a single point")
	}
}

func TestRenderFull(t *testing.T) {
	a := &analyze.Analysis{
		Numeric:  []analyze.NumericProfile{sampleProfile("a"), sampleProfile("b")},
		Category: []analyze.CategoricalProfile{sampleCategory()},
		Corr:     sampleCorr(),
	}
	images, skipped := Render(a, DefaultOptions())
	// 2 histograms + bar + pie + heatmap + scatter.
	if len(images) != 6 {
		t.Fatalf("images = %d, skipped = %v", len(images), skipped)
	}
	for _, img := range images {
		checkPNG(t, img)
	}
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v", skipped)
	}
}

func TestRenderHistogramCap(t *testing.T) {
	a := &analyze.Analysis{}
	for _, n := range []string{"a", "b", "c"} {
		a.Numeric = append(a.Numeric, sampleProfile(n))
	}
	opt := DefaultOptions()
	opt.MaxHistograms = 2
	images, skipped := Render(a, opt)
	if len(images) != 2 {
		t.Fatalf("images = %d", len(images))
	}
	if len(skipped) != 1 || !strings.Contains(skipped[0], "cap") {
		t.Fatalf("skipped = %v", skipped)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 14); got != "short" {
		t.Fatalf("got %q", got)
	}
	got := truncateLabel("électroménagers haut de gamme", 14)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) != 14 {
		t.Fatalf("rune count = %d, want 14 (%q)", utf8.RuneCountInString(got), got)
	}
	if !strings.HasPrefix(got, "électroménage") {
		t.Fatalf("got %q", got)
	}
}

func TestRenderSkipsBadChartsWithoutFailing(t *testing.T) {
	a := &analyze.Analysis{
		Numeric: []analyze.NumericProfile{{Name: "flat", Values: []float64{1, 1}, Min: 1, Max: 1}},
	}
	images, skipped := Render(a, DefaultOptions())
	if len(images) != 0 || len(skipped) != 1 {
		t.Fatalf("images=%d skipped=%v", len(images), skipped)
	}
}
