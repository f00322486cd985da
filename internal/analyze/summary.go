package analyze

import (
	"fmt"
	"strings"
)

// Summary renders a compact plain-text view of the analysis, used by the
// inspect command and handy for quick terminal checks.
func (a *Analysis) Summary() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if a.Source != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", a.Source))
	}

	if a.Text != nil {
		writeTextSummary(&b, a.Text)
	} else {
		writeTableSummary(&b, a)
	}

	if len(a.Insights) > 0 {
		b.WriteString("\n[INSIGHTS]\n")
		for _, in := range a.Insights {
			b.WriteString(fmt.Sprintf("- [%s] %s: %s\n", in.Severity, in.Title, in.Detail))
		}
	}
	if len(a.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range a.Warnings {
			b.WriteString("- " + w + "\n")
		}
	}
	return b.String()
}

func writeTableSummary(b *strings.Builder, a *Analysis) {
	ov := a.Overview
	b.WriteString(fmt.Sprintf("Rows: %d\nColumns: %d (numeric %d, datetime %d, categorical %d, text %d)\n",
		ov.Rows, ov.Columns, ov.NumericCols, ov.DatetimeCols, ov.CategoryCols, ov.TextCols))
	if ov.MissingCells > 0 {
		b.WriteString(fmt.Sprintf("Missing cells: %d (%.2f%%)\n", ov.MissingCells, ov.MissingPct))
	}
	if ov.DuplicateRows > 0 {
		b.WriteString(fmt.Sprintf("Duplicate rows: %d\n", ov.DuplicateRows))
	}

	if len(a.Numeric) > 0 {
		b.WriteString("\n[NUMERIC COLUMNS]\n")
		for _, p := range a.Numeric {
			b.WriteString(fmt.Sprintf("- %s: n=%d, mean %.4g, median %.4g, std %.4g, min %.4g, max %.4g",
				p.Name, p.Count, p.Mean, p.Median, p.Std, p.Min, p.Max))
			b.WriteString(fmt.Sprintf(", IQR %.4g, skew %.2f, kurt %.2f", p.IQR, p.Skewness, p.Kurtosis))
			if p.OutlierCount > 0 {
				b.WriteString(fmt.Sprintf("; outliers %d (%.1f%%)", p.OutlierCount, p.OutlierPct))
			}
			b.WriteString("\n")
		}
	}

	if len(a.Datetime) > 0 {
		b.WriteString("\n[DATETIME COLUMNS]\n")
		for _, p := range a.Datetime {
			b.WriteString(fmt.Sprintf("- %s: n=%d, from %s to %s\n",
				p.Name, p.Count, p.Min.Format("2006-01-02"), p.Max.Format("2006-01-02")))
		}
	}

	if len(a.Category) > 0 {
		b.WriteString("\n[CATEGORICAL COLUMNS]\n")
		for _, p := range a.Category {
			b.WriteString(fmt.Sprintf("- %s: unique=%d", p.Name, p.Unique))
			if p.TopValue != "" {
				b.WriteString(fmt.Sprintf(", top %s (%d, %.1f%%)", p.TopValue, p.TopFreq, p.TopPct))
			}
			b.WriteString("\n")
		}
	}

	if len(a.Missing) > 0 {
		b.WriteString("\n[MISSING DATA]\n")
		for _, m := range a.Missing {
			b.WriteString(fmt.Sprintf("- %s: %d missing (%.2f%%, %s)\n", m.Name, m.Count, m.Pct, m.Severity))
		}
	}

	if a.Corr != nil && len(a.Corr.Pairs) > 0 {
		b.WriteString("\n[CORRELATIONS]\n")
		limit := 10
		if len(a.Corr.Pairs) < limit {
			limit = len(a.Corr.Pairs)
		}
		for _, pair := range a.Corr.Pairs[:limit] {
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f (%s)\n", pair.A, pair.B, pair.R, pair.Strength))
		}
	}
}

func writeTextSummary(b *strings.Builder, ts *TextStats) {
	b.WriteString(fmt.Sprintf("Text document: %d chars, %d words (%d unique), %d sentences, %d lines\n",
		ts.CharCount, ts.WordCount, ts.UniqueWords, ts.SentenceCount, ts.LineCount))
	b.WriteString(fmt.Sprintf("Avg word length %.2f, avg sentence length %.2f, lexical diversity %.4f\n",
		ts.AvgWordLength, ts.AvgSentenceLen, ts.LexicalDiversity))
	if len(ts.TopWords) > 0 {
		b.WriteString("Top words: ")
		for i, w := range ts.TopWords {
			if i >= 10 {
				break
			}
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s(%d)", w.Value, w.Count))
		}
		b.WriteString("\n")
	}
}
