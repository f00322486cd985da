package analyze

import (
	"fmt"
	"math"
)

// Insight is one generated observation about the dataset.
type Insight struct {
	Title    string
	Detail   string
	Severity string // "info" or "warning"
}

const maxInsights = 12

// generateInsights runs the fixed rule checks over a finished analysis. The
// rules are deliberately static; re-running on identical input yields the
// same insights in the same order.
func generateInsights(a *Analysis) []Insight {
	var out []Insight
	add := func(sev, title, detail string) {
		out = append(out, Insight{Title: title, Detail: detail, Severity: sev})
	}

	ov := a.Overview
	if ov.Rows > 100000 {
		add("info", "Large Dataset", fmt.Sprintf("Dataset has %d rows — well suited for statistical modeling.", ov.Rows))
	} else if ov.Rows > 0 && ov.Rows < 30 {
		add("warning", "Small Sample", fmt.Sprintf("Only %d rows detected — interpret statistics cautiously.", ov.Rows))
	}

	if ov.MissingPct > 20 {
		add("warning", "High Missing Data", fmt.Sprintf("%.1f%% of cells are missing — consider imputation.", ov.MissingPct))
	} else if ov.MissingPct > 5 {
		add("info", "Moderate Missing Data", fmt.Sprintf("%.1f%% missing cells detected.", ov.MissingPct))
	}

	if ov.DuplicateRows > 0 {
		add("warning", "Duplicate Rows", fmt.Sprintf("%d duplicate rows found — deduplication recommended.", ov.DuplicateRows))
	}

	for _, p := range a.Numeric {
		if p.OutlierPct > 10 {
			add("warning", "Outliers Detected", fmt.Sprintf("Column '%s' has %.1f%% outliers (IQR method).", p.Name, p.OutlierPct))
		}
	}

	for _, p := range a.Numeric {
		if math.Abs(p.Skewness) > 2 {
			dir := "positively"
			if p.Skewness < 0 {
				dir = "negatively"
			}
			add("info", "Skewed Distribution", fmt.Sprintf("'%s' is strongly %s skewed (skewness=%.2f).", p.Name, dir, p.Skewness))
		}
	}

	if a.Corr != nil {
		shown := 0
		for _, pair := range a.Corr.Pairs {
			if shown >= 3 {
				break
			}
			if math.Abs(pair.R) >= 0.8 {
				add("info", "Strong Correlation", fmt.Sprintf("'%s' and '%s' are strongly correlated (r=%.3f).", pair.A, pair.B, pair.R))
				shown++
			}
		}
	}

	for _, p := range a.Category {
		if p.TopPct > 70 {
			add("info", "Dominant Category", fmt.Sprintf("'%s' dominates '%s' at %.1f%%.", p.TopValue, p.Name, p.TopPct))
		}
	}

	if a.Text != nil {
		if a.Text.LexicalDiversity < 0.3 {
			add("info", "Low Lexical Diversity", fmt.Sprintf("Text has low diversity (%.2f) — possibly repetitive.", a.Text.LexicalDiversity))
		}
		add("info", "Document Size", fmt.Sprintf("%d words across %d sentences.", a.Text.WordCount, a.Text.SentenceCount))
	}

	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}
