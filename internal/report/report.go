// Package report lays out the analysis as a paginated PDF document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/KaramelBytes/autoreport/internal/analyze"
	"github.com/KaramelBytes/autoreport/internal/chart"
	"github.com/KaramelBytes/autoreport/internal/loader"
)

// Options controls document metadata and layout.
type Options struct {
	Title    string
	Author   string
	RunID    string
	PageSize string // "A4" or "Letter"
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{Title: "Data Analysis Report", Author: "autoreport", PageSize: "A4"}
}

// Input bundles everything the document needs.
type Input struct {
	Meta     *loader.Meta
	Analysis *analyze.Analysis
	Charts   []chart.Image
	Skipped  []string
}

type builder struct {
	doc *fpdf.Fpdf
	tr  func(string) string
	opt Options
}

// Build renders the full report and returns the PDF bytes. Sections with no
// content are omitted entirely.
func Build(in Input, opt Options) ([]byte, error) {
	if opt.PageSize == "" {
		opt.PageSize = "A4"
	}
	doc := fpdf.New("P", "mm", opt.PageSize, "")
	b := &builder{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor(""), opt: opt}

	doc.SetTitle(opt.Title, true)
	doc.SetAuthor(opt.Author, true)
	if in.Meta != nil {
		doc.SetSubject("Automated analysis of "+in.Meta.Filename, true)
	}
	doc.SetMargins(14, 16, 14)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(130, 130, 130)
		doc.CellFormat(0, 8, b.tr(opt.RunID), "", 0, "L", false, 0, "")
		doc.SetX(-40)
		doc.CellFormat(26, 8, fmt.Sprintf("Page %d/{nb}", doc.PageNo()), "", 0, "R", false, 0, "")
	})

	b.cover(in)
	a := in.Analysis
	if a.Text != nil {
		b.textSection(a.Text)
	} else {
		b.overview(a.Overview)
		b.numericSection(a.Numeric)
		b.datetimeSection(a.Datetime)
		b.categoricalSection(a.Category)
		b.missingSection(a.Missing)
		b.correlationSection(a.Corr)
	}
	b.chartSection(in.Charts, in.Skipped)
	b.insightSection(a.Insights)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *builder) cover(in Input) {
	doc := b.doc
	doc.AddPage()
	doc.SetY(70)
	doc.SetFont("Helvetica", "B", 26)
	doc.SetTextColor(30, 30, 30)
	doc.CellFormat(0, 14, b.tr(b.opt.Title), "", 1, "C", false, 0, "")

	doc.Ln(8)
	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(90, 90, 90)
	if m := in.Meta; m != nil {
		b.coverLine("Source", m.Filename)
		b.coverLine("Format", string(m.Format))
		b.coverLine("Size", m.HumanSize)
		if m.Sheet != "" {
			b.coverLine("Sheet", m.Sheet)
		}
	}
	b.coverLine("Generated", in.Analysis.Generated.Format(time.RFC1123))
	if b.opt.RunID != "" {
		b.coverLine("Run ID", b.opt.RunID)
	}
}

func (b *builder) coverLine(label, value string) {
	doc := b.doc
	doc.SetX(55)
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(30, 7, label, "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, b.tr(value), "", 1, "L", false, 0, "")
}

// sectionTitle starts a new section, breaking the page when fewer than a few
// rows would fit below it.
func (b *builder) sectionTitle(title string) {
	doc := b.doc
	_, ph := doc.GetPageSize()
	if doc.GetY() > ph-60 {
		doc.AddPage()
	} else if doc.PageNo() == 1 {
		doc.AddPage()
	}
	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(30, 30, 30)
	doc.CellFormat(0, 9, b.tr(title), "", 1, "L", false, 0, "")
	doc.SetDrawColor(66, 133, 244)
	doc.SetLineWidth(0.6)
	x := doc.GetX()
	y := doc.GetY()
	doc.Line(x, y, x+40, y)
	doc.Ln(4)
}

// tableHeader draws one header row of a striped table.
func (b *builder) tableHeader(widths []float64, labels []string) {
	doc := b.doc
	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(66, 133, 244)
	doc.SetTextColor(255, 255, 255)
	for i, l := range labels {
		doc.CellFormat(widths[i], 7, b.tr(l), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)
	doc.SetTextColor(40, 40, 40)
	doc.SetFont("Helvetica", "", 8)
}

// tableRow draws one body row; stripe alternates the fill.
func (b *builder) tableRow(widths []float64, cells []string, stripe bool) {
	doc := b.doc
	if stripe {
		doc.SetFillColor(235, 240, 250)
	} else {
		doc.SetFillColor(255, 255, 255)
	}
	for i, c := range cells {
		align := "R"
		if i == 0 {
			align = "L"
		}
		doc.CellFormat(widths[i], 6, b.tr(c), "1", 0, align, true, 0, "")
	}
	doc.Ln(-1)
}
