package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/KaramelBytes/autoreport/internal/analyze"
	"github.com/KaramelBytes/autoreport/internal/chart"
)

func (b *builder) overview(ov analyze.Overview) {
	b.sectionTitle("Overview")
	widths := []float64{60, 122}
	rows := [][2]string{
		{"Rows", strconv.Itoa(ov.Rows)},
		{"Columns", strconv.Itoa(ov.Columns)},
		{"Numeric columns", strconv.Itoa(ov.NumericCols)},
		{"Datetime columns", strconv.Itoa(ov.DatetimeCols)},
		{"Categorical columns", strconv.Itoa(ov.CategoryCols)},
		{"Text columns", strconv.Itoa(ov.TextCols)},
		{"Total cells", strconv.Itoa(ov.TotalCells)},
		{"Missing cells", fmt.Sprintf("%d (%.2f%%)", ov.MissingCells, ov.MissingPct)},
		{"Duplicate rows", strconv.Itoa(ov.DuplicateRows)},
	}
	b.tableHeader(widths, []string{"Metric", "Value"})
	for i, r := range rows {
		b.tableRow(widths, []string{r[0], r[1]}, i%2 == 1)
	}
}

func (b *builder) numericSection(profiles []analyze.NumericProfile) {
	if len(profiles) == 0 {
		return
	}
	b.sectionTitle("Numeric Statistics")
	widths := []float64{30, 12, 18, 18, 18, 18, 18, 16, 13, 13, 8}
	labels := []string{"Column", "N", "Mean", "Median", "Std", "Min", "Max", "IQR", "Skew", "Kurt", "Out"}
	b.tableHeader(widths, labels)
	for i, p := range profiles {
		b.pageBreakTable(widths, labels)
		b.tableRow(widths, []string{
			p.Name,
			strconv.Itoa(p.Count),
			num(p.Mean), num(p.Median), num(p.Std),
			num(p.Min), num(p.Max), num(p.IQR),
			fmt.Sprintf("%.2f", p.Skewness),
			fmt.Sprintf("%.2f", p.Kurtosis),
			strconv.Itoa(p.OutlierCount),
		}, i%2 == 1)
	}

	// Second table with the distribution detail that does not fit above.
	b.doc.Ln(4)
	widths2 := []float64{30, 18, 18, 18, 18, 18, 16, 16, 15, 15}
	labels2 := []string{"Column", "Mode", "Range", "Q1", "Q3", "CV %", "Zeros", "Neg", "Miss", "Out %"}
	b.tableHeader(widths2, labels2)
	for i, p := range profiles {
		b.pageBreakTable(widths2, labels2)
		b.tableRow(widths2, []string{
			p.Name,
			num(p.Mode), num(p.Range), num(p.Q1), num(p.Q3),
			fmt.Sprintf("%.1f", p.CV),
			strconv.Itoa(p.Zeros),
			strconv.Itoa(p.Negatives),
			strconv.Itoa(p.Missing),
			fmt.Sprintf("%.1f", p.OutlierPct),
		}, i%2 == 1)
	}
}

func (b *builder) datetimeSection(profiles []analyze.DatetimeProfile) {
	if len(profiles) == 0 {
		return
	}
	b.sectionTitle("Datetime Columns")
	widths := []float64{48, 14, 40, 40, 24, 16}
	labels := []string{"Column", "N", "Earliest", "Latest", "Span", "Miss"}
	b.tableHeader(widths, labels)
	for i, p := range profiles {
		b.pageBreakTable(widths, labels)
		b.tableRow(widths, []string{
			p.Name,
			strconv.Itoa(p.Count),
			p.Min.Format("2006-01-02 15:04"),
			p.Max.Format("2006-01-02 15:04"),
			formatSpan(p.Span),
			strconv.Itoa(p.Missing),
		}, i%2 == 1)
	}
}

func formatSpan(d time.Duration) string {
	if days := int(d.Hours() / 24); days >= 1 {
		return fmt.Sprintf("%dd", days)
	}
	return d.Round(time.Minute).String()
}

func (b *builder) categoricalSection(profiles []analyze.CategoricalProfile) {
	if len(profiles) == 0 {
		return
	}
	b.sectionTitle("Categorical Columns")
	for _, p := range profiles {
		doc := b.doc
		_, ph := doc.GetPageSize()
		if doc.GetY() > ph-70 {
			doc.AddPage()
		}
		doc.SetFont("Helvetica", "B", 10)
		doc.SetTextColor(40, 40, 40)
		doc.CellFormat(0, 7, b.tr(p.Name), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(90, 90, 90)
		summary := fmt.Sprintf("%d values, %d unique", p.Count, p.Unique)
		if p.TopValue != "" {
			summary += fmt.Sprintf("; most frequent: %q (%d, %.1f%%)", p.TopValue, p.TopFreq, p.TopPct)
		}
		doc.CellFormat(0, 6, b.tr(summary), "", 1, "L", false, 0, "")

		widths := []float64{90, 30, 30}
		b.tableHeader(widths, []string{"Value", "Count", "Percent"})
		for i, v := range p.Values {
			pct := 0.0
			if p.Count > 0 {
				pct = float64(v.Count) * 100 / float64(p.Count)
			}
			b.tableRow(widths, []string{v.Value, strconv.Itoa(v.Count), fmt.Sprintf("%.1f", pct)}, i%2 == 1)
		}
		doc.Ln(4)
	}
}

func (b *builder) missingSection(cols []analyze.MissingColumn) {
	if len(cols) == 0 {
		return
	}
	b.sectionTitle("Missing Data")
	widths := []float64{70, 30, 30, 32}
	labels := []string{"Column", "Missing", "Percent", "Severity"}
	b.tableHeader(widths, labels)
	for i, m := range cols {
		b.pageBreakTable(widths, labels)
		b.tableRow(widths, []string{m.Name, strconv.Itoa(m.Count), fmt.Sprintf("%.2f", m.Pct), string(m.Severity)}, i%2 == 1)
	}
}

func (b *builder) correlationSection(c *analyze.Correlation) {
	if c == nil || len(c.Pairs) == 0 {
		return
	}
	b.sectionTitle("Correlations")
	widths := []float64{10, 55, 55, 25, 35}
	labels := []string{"#", "Column A", "Column B", "r", "Strength"}
	b.tableHeader(widths, labels)
	limit := len(c.Pairs)
	if limit > 15 {
		limit = 15
	}
	for i := 0; i < limit; i++ {
		b.pageBreakTable(widths, labels)
		p := c.Pairs[i]
		b.tableRow(widths, []string{
			strconv.Itoa(i + 1), p.A, p.B, fmt.Sprintf("%.3f", p.R), p.Strength,
		}, i%2 == 1)
	}
}

func (b *builder) chartSection(images []chart.Image, skipped []string) {
	if len(images) == 0 && len(skipped) == 0 {
		return
	}
	b.sectionTitle("Charts")
	doc := b.doc
	pw, ph := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	maxW := pw - left - right

	for _, img := range images {
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		info := doc.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.PNG))
		if doc.Err() {
			// A bad image should not sink the whole report.
			skipped = append(skipped, fmt.Sprintf("embed %s: %v", img.Name, doc.Error()))
			doc.ClearError()
			continue
		}
		w := maxW
		if w > 150 {
			w = 150
		}
		h := w * info.Height() / info.Width()
		if doc.GetY()+h+14 > ph-18 {
			doc.AddPage()
		}
		x := left + (maxW-w)/2
		doc.ImageOptions(img.Name, x, doc.GetY(), w, h, false, opts, 0, "")
		doc.SetY(doc.GetY() + h + 2)
		doc.SetFont("Helvetica", "I", 9)
		doc.SetTextColor(110, 110, 110)
		doc.CellFormat(0, 6, b.tr(img.Title), "", 1, "C", false, 0, "")
		doc.Ln(3)
	}

	if len(skipped) > 0 {
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(130, 130, 130)
		for _, s := range skipped {
			doc.CellFormat(0, 5, b.tr("Skipped: "+s), "", 1, "L", false, 0, "")
		}
	}
}

func (b *builder) insightSection(insights []analyze.Insight) {
	if len(insights) == 0 {
		return
	}
	b.sectionTitle("Insights")
	doc := b.doc
	_, ph := doc.GetPageSize()
	for i, in := range insights {
		if doc.GetY() > ph-35 {
			doc.AddPage()
		}
		doc.SetFont("Helvetica", "B", 10)
		if in.Severity == "warning" {
			doc.SetTextColor(200, 80, 0)
		} else {
			doc.SetTextColor(40, 90, 180)
		}
		doc.CellFormat(0, 7, b.tr(fmt.Sprintf("%d. %s", i+1, in.Title)), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(60, 60, 60)
		doc.SetX(doc.GetX() + 6)
		doc.MultiCell(170, 5.5, b.tr(in.Detail), "", "L", false)
		doc.Ln(1.5)
	}
}

func (b *builder) textSection(ts *analyze.TextStats) {
	b.sectionTitle("Text Statistics")
	widths := []float64{60, 122}
	rows := [][2]string{
		{"Characters", strconv.Itoa(ts.CharCount)},
		{"Words", strconv.Itoa(ts.WordCount)},
		{"Unique words", strconv.Itoa(ts.UniqueWords)},
		{"Sentences", strconv.Itoa(ts.SentenceCount)},
		{"Lines", strconv.Itoa(ts.LineCount)},
		{"Avg word length", fmt.Sprintf("%.2f", ts.AvgWordLength)},
		{"Avg sentence length", fmt.Sprintf("%.2f", ts.AvgSentenceLen)},
		{"Lexical diversity", fmt.Sprintf("%.4f", ts.LexicalDiversity)},
	}
	b.tableHeader(widths, []string{"Metric", "Value"})
	for i, r := range rows {
		b.tableRow(widths, []string{r[0], r[1]}, i%2 == 1)
	}

	if len(ts.TopWords) > 0 {
		b.doc.Ln(4)
		widths := []float64{90, 30}
		b.tableHeader(widths, []string{"Word", "Count"})
		for i, w := range ts.TopWords {
			b.tableRow(widths, []string{w.Value, strconv.Itoa(w.Count)}, i%2 == 1)
		}
	}
}

// pageBreakTable re-draws the header when a row is about to spill off the page.
func (b *builder) pageBreakTable(widths []float64, labels []string) {
	doc := b.doc
	_, ph := doc.GetPageSize()
	if doc.GetY() > ph-26 {
		doc.AddPage()
		b.tableHeader(widths, labels)
	}
}

// num formats a statistic compactly.
func num(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
