// Package analyze computes descriptive statistics, correlations, and derived
// insights over a loaded table, or word-level statistics for plain text.
package analyze

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/KaramelBytes/autoreport/internal/loader"
)

// ErrNoData indicates the input carried neither a table nor analyzable text.
var ErrNoData = errors.New("no analyzable data in input")

// Options controls analysis behavior.
type Options struct {
	// TopN limits categorical frequency tables.
	TopN int
	// MaxCategorical caps how many categorical columns are profiled.
	MaxCategorical int
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{TopN: 10, MaxCategorical: 20}
}

// Analysis is the read-only result consumed by chart and report rendering.
type Analysis struct {
	Source    string
	Generated time.Time
	Overview  Overview
	Numeric   []NumericProfile
	Datetime  []DatetimeProfile
	Category  []CategoricalProfile
	Missing   []MissingColumn
	Corr      *Correlation
	Text      *TextStats
	Insights  []Insight
	Warnings  []string
}

// Overview summarizes the table shape.
type Overview struct {
	Rows          int
	Columns       int
	NumericCols   int
	DatetimeCols  int
	CategoryCols  int
	TextCols      int
	TotalCells    int
	MissingCells  int
	MissingPct    float64
	DuplicateRows int
	ColumnNames   []string
}

// NumericProfile holds descriptive statistics for one numeric column.
type NumericProfile struct {
	Name       string
	Count      int
	Missing    int
	MissingPct float64
	Mean       float64
	Median     float64
	Mode       float64
	Std        float64
	Min        float64
	Max        float64
	Range      float64
	Q1         float64
	Q3         float64
	IQR        float64
	Skewness   float64
	Kurtosis   float64
	CV         float64
	Zeros      int
	Negatives  int
	// IQR fences; a value is an outlier iff it lies outside them.
	LowerFence   float64
	UpperFence   float64
	OutlierCount int
	OutlierPct   float64
	// Values holds the parsed values in row order and feeds histogram
	// rendering downstream.
	Values []float64
}

// CategoricalProfile holds frequency statistics for one categorical column.
type CategoricalProfile struct {
	Name     string
	Count    int
	Missing  int
	Unique   int
	TopValue string
	TopFreq  int
	TopPct   float64
	Values   []CategoryCount
}

// CategoryCount is one entry of a frequency table.
type CategoryCount struct {
	Value string
	Count int
}

// Analyze profiles every column of t. Text-only inputs (empty table with
// meta text) produce a TextStats analysis instead. ErrNoData is returned
// only when there is nothing at all to analyze.
func Analyze(t *loader.Table, meta *loader.Meta, opt Options) (*Analysis, error) {
	if opt.TopN <= 0 {
		opt.TopN = 10
	}
	if opt.MaxCategorical <= 0 {
		opt.MaxCategorical = 20
	}
	a := &Analysis{Generated: time.Now()}
	if meta != nil {
		a.Source = meta.Filename
	}

	switch {
	case !t.Empty():
		a.Warnings = append(a.Warnings, t.Warnings...)
		analyzeTable(a, t, opt)
	case meta != nil && strings.TrimSpace(meta.Text) != "":
		a.Text = analyzeText(meta.Text)
	default:
		return nil, ErrNoData
	}

	a.Insights = generateInsights(a)
	return a, nil
}

func analyzeTable(a *Analysis, t *loader.Table, opt Options) {
	ncol := t.ColumnCount()
	nrow := t.RowCount()

	a.Overview = Overview{
		Rows:        nrow,
		Columns:     ncol,
		TotalCells:  nrow * ncol,
		ColumnNames: append([]string(nil), t.Header...),
	}

	catLeft := opt.MaxCategorical
	var numericCols []string
	var numericIdx []int

	for i := 0; i < ncol; i++ {
		cells := t.Column(i)
		vals, times, missing, numCnt, dateCnt, catCnt, txtCnt := classify(cells)
		a.Overview.MissingCells += missing

		switch kind(numCnt, dateCnt, catCnt, txtCnt) {
		case kindNumeric:
			a.Overview.NumericCols++
			p := numericProfile(t.Header[i], vals, missing)
			a.Numeric = append(a.Numeric, p)
			numericCols = append(numericCols, t.Header[i])
			numericIdx = append(numericIdx, i)
			appendMissing(a, t.Header[i], missing, nrow)
		case kindDatetime:
			a.Overview.DatetimeCols++
			a.Datetime = append(a.Datetime, datetimeProfile(t.Header[i], times, missing))
			appendMissing(a, t.Header[i], missing, nrow)
		case kindCategorical:
			a.Overview.CategoryCols++
			if catLeft > 0 {
				catLeft--
				a.Category = append(a.Category, categoricalProfile(t.Header[i], cells, missing, opt.TopN))
			}
			appendMissing(a, t.Header[i], missing, nrow)
		default:
			a.Overview.TextCols++
			appendMissing(a, t.Header[i], missing, nrow)
		}
	}

	if a.Overview.TotalCells > 0 {
		a.Overview.MissingPct = round2(float64(a.Overview.MissingCells) * 100 / float64(a.Overview.TotalCells))
	}
	a.Overview.DuplicateRows = duplicateRows(t)

	// Correlations need at least two numeric columns; with fewer the section
	// is omitted rather than failing the run.
	if len(numericIdx) >= 2 {
		a.Corr = correlate(t, numericCols, numericIdx)
	}
}

type colKind int

const (
	kindNumeric colKind = iota
	kindDatetime
	kindCategorical
	kindText
)

// kind decides a column's type by its predominant parsed cell type.
func kind(numCnt, dateCnt, catCnt, txtCnt int) colKind {
	switch {
	case numCnt > 0 && numCnt >= dateCnt && numCnt >= catCnt && numCnt >= txtCnt:
		return kindNumeric
	case dateCnt > 0 && dateCnt >= catCnt && dateCnt >= txtCnt:
		return kindDatetime
	case catCnt >= txtCnt && catCnt > 0:
		return kindCategorical
	default:
		return kindText
	}
}

// classify parses every cell of a column once. Short tokens that are neither
// numbers nor timestamps count as categorical, long ones as free text.
func classify(cells []string) (vals []float64, times []time.Time, missing, numCnt, dateCnt, catCnt, txtCnt int) {
	for _, c := range cells {
		if c == "" {
			missing++
			continue
		}
		if x, ok := parseNumeric(c); ok {
			numCnt++
			vals = append(vals, x)
			continue
		}
		if ts, ok := parseDatetime(c); ok {
			dateCnt++
			times = append(times, ts)
			continue
		}
		if len(c) <= 64 {
			catCnt++
		} else {
			txtCnt++
		}
	}
	return
}

func appendMissing(a *Analysis, name string, missing, rows int) {
	if missing == 0 || rows == 0 {
		return
	}
	pct := float64(missing) * 100 / float64(rows)
	a.Missing = append(a.Missing, MissingColumn{
		Name:     name,
		Count:    missing,
		Pct:      round2(pct),
		Severity: severityFor(pct),
	})
}

func duplicateRows(t *loader.Table) int {
	seen := make(map[string]int, t.RowCount())
	dups := 0
	for _, row := range t.Rows {
		key := strings.Join(row, "\x1f")
		if seen[key] > 0 {
			dups++
		}
		seen[key]++
	}
	return dups
}

func categoricalProfile(name string, cells []string, missing, topN int) CategoricalProfile {
	counts := map[string]int{}
	total := 0
	for _, c := range cells {
		if c == "" {
			continue
		}
		counts[c]++
		total++
	}
	values := make([]CategoryCount, 0, len(counts))
	for v, n := range counts {
		values = append(values, CategoryCount{Value: v, Count: n})
	}
	sort.Slice(values, func(i, j int) bool {
		if values[i].Count == values[j].Count {
			return values[i].Value < values[j].Value
		}
		return values[i].Count > values[j].Count
	})

	p := CategoricalProfile{Name: name, Count: total, Missing: missing, Unique: len(values)}
	if len(values) > 0 {
		p.TopValue = values[0].Value
		p.TopFreq = values[0].Count
		if total > 0 {
			p.TopPct = round2(float64(values[0].Count) * 100 / float64(total))
		}
	}
	if len(values) > topN {
		values = values[:topN]
	}
	p.Values = values
	return p
}
