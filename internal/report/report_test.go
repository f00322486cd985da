package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/KaramelBytes/autoreport/internal/analyze"
	"github.com/KaramelBytes/autoreport/internal/chart"
	"github.com/KaramelBytes/autoreport/internal/loader"
)

func sampleInput(t *testing.T) Input {
	t.Helper()
	tab := &loader.Table{
		Name:   "sales.csv",
		Header: []string{"Region", "Revenue", "Units", "Booked"},
		Rows: [][]string{
			{"North", "120", "10", "2024-01-05"},
			{"South", "95", "8", "2024-01-12"},
			{"North", "133", "11", "2024-02-02"},
			{"East", "87", "7", "2024-02-20"},
			{"West", "101", "9", "2024-03-01"},
			{"South", "99", "", "2024-03-15"},
		},
	}
	meta := &loader.Meta{Format: loader.FormatCSV, Filename: "sales.csv", HumanSize: "1.2 KB"}
	a, err := analyze.Analyze(tab, meta, analyze.DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(a.Datetime) != 1 {
		t.Fatalf("fixture should carry one datetime column, got %d", len(a.Datetime))
	}
	images, skipped := chart.Render(a, chart.DefaultOptions())
	return Input{Meta: meta, Analysis: a, Charts: images, Skipped: skipped}
}

func TestBuildProducesPDF(t *testing.T) {
	opt := DefaultOptions()
	opt.RunID = "run-1234"
	pdf, err := Build(sampleInput(t), opt)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("output does not start with PDF header (%d bytes)", len(pdf))
	}
	if len(pdf) < 10000 {
		t.Fatalf("suspiciously small document: %d bytes", len(pdf))
	}
}

func TestBuildWithoutCharts(t *testing.T) {
	in := sampleInput(t)
	in.Charts = nil
	in.Skipped = nil
	pdf, err := Build(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatal("not a PDF")
	}
}

func TestBuildCategoricalOnly(t *testing.T) {
	tab := &loader.Table{
		Header: []string{"Name", "Grade"},
		Rows:   [][]string{{"a", "A"}, {"b", "B"}, {"c", "A"}},
	}
	a, err := analyze.Analyze(tab, nil, analyze.DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.Corr != nil {
		t.Fatal("unexpected correlation")
	}
	pdf, err := Build(Input{Analysis: a}, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatal("not a PDF")
	}
}

func TestBuildTextReport(t *testing.T) {
	meta := &loader.Meta{
		Format:   loader.FormatText,
		Filename: "notes.txt",
		Text:     "First sentence here. Second sentence follows! A third one?",
	}
	a, err := analyze.Analyze(&loader.Table{}, meta, analyze.DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	pdf, err := Build(Input{Meta: meta, Analysis: a}, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatal("not a PDF")
	}
}

func TestBuildLetterPageSize(t *testing.T) {
	opt := DefaultOptions()
	opt.PageSize = "Letter"
	if _, err := Build(sampleInput(t), opt); err != nil {
		t.Fatalf("Build: %v", err)
	}
}

func TestFormatSpan(t *testing.T) {
	if got := formatSpan(62 * 24 * time.Hour); got != "62d" {
		t.Fatalf("formatSpan = %q", got)
	}
	if got := formatSpan(90 * time.Minute); got != "1h30m0s" {
		t.Fatalf("formatSpan = %q", got)
	}
}

func TestNumFormatting(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12.5, "12.5"},
		{1234567, "1.235e+06"},
		{0.00012344, "0.0001234"},
	}
	for _, c := range cases {
		if got := num(c.in); got != c.want {
			t.Fatalf("num(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
