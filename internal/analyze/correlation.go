package analyze

import (
	"math"
	"sort"

	"github.com/KaramelBytes/autoreport/internal/loader"
)

// Correlation holds the pairwise Pearson matrix over numeric columns plus a
// ranked pair list.
type Correlation struct {
	Columns []string
	// Matrix is symmetric with a unit diagonal, row-major over Columns.
	Matrix [][]float64
	// Pairs is every column pair ordered by |r| descending.
	Pairs []CorrPair
	// TopPoints are the aligned (x, y) observations of the strongest pair,
	// kept for scatter rendering.
	TopPoints []Point
}

// Point is one paired observation.
type Point struct {
	X, Y float64
}

// CorrPair is one correlation entry with its qualitative strength label.
type CorrPair struct {
	A, B     string
	R        float64
	Strength string
}

// strengthLabel maps |r| to the fixed qualitative scale.
func strengthLabel(r float64) string {
	abs := math.Abs(r)
	switch {
	case abs < 0.2:
		return "very weak"
	case abs < 0.4:
		return "weak"
	case abs < 0.6:
		return "moderate"
	case abs < 0.8:
		return "strong"
	default:
		return "very strong"
	}
}

// correlate computes pairwise Pearson r across numeric columns. Columns are
// addressed by table index so duplicate header names stay unambiguous; rows
// missing either value of a pair are excluded from that pair only.
func correlate(t *loader.Table, names []string, idx []int) *Correlation {
	n := len(idx)
	type acc struct {
		n, sx, sy, sxx, syy, sxy float64
	}
	accs := make([][]acc, n)
	for i := range accs {
		accs[i] = make([]acc, n)
	}

	row := make([]float64, n)
	ok := make([]bool, n)
	for _, rec := range t.Rows {
		for a, col := range idx {
			ok[a] = false
			if col < len(rec) && rec[col] != "" {
				if x, valid := parseNumeric(rec[col]); valid {
					row[a] = x
					ok[a] = true
				}
			}
		}
		for a := 0; a < n; a++ {
			if !ok[a] {
				continue
			}
			for b := a + 1; b < n; b++ {
				if !ok[b] {
					continue
				}
				p := &accs[a][b]
				x, y := row[a], row[b]
				p.n++
				p.sx += x
				p.sy += y
				p.sxx += x * x
				p.syy += y * y
				p.sxy += x * y
			}
		}
	}

	c := &Correlation{Columns: append([]string(nil), names...)}
	c.Matrix = make([][]float64, n)
	for i := range c.Matrix {
		c.Matrix[i] = make([]float64, n)
		c.Matrix[i][i] = 1
	}
	type ranked struct {
		pair   CorrPair
		ia, ib int
	}
	var order []ranked
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			r := pearson(accs[a][b].n, accs[a][b].sx, accs[a][b].sy, accs[a][b].sxx, accs[a][b].syy, accs[a][b].sxy)
			c.Matrix[a][b] = r
			c.Matrix[b][a] = r
			order = append(order, ranked{
				pair: CorrPair{A: names[a], B: names[b], R: r, Strength: strengthLabel(r)},
				ia:   idx[a],
				ib:   idx[b],
			})
		}
	}
	sort.Slice(order, func(i, j int) bool {
		ai, aj := math.Abs(order[i].pair.R), math.Abs(order[j].pair.R)
		if ai == aj {
			return order[i].pair.A+order[i].pair.B < order[j].pair.A+order[j].pair.B
		}
		return ai > aj
	})
	c.Pairs = make([]CorrPair, len(order))
	for i, o := range order {
		c.Pairs[i] = o.pair
	}

	if len(order) > 0 {
		c.TopPoints = pairPoints(t, order[0].ia, order[0].ib)
	}
	return c
}

// pairPoints re-reads the table to collect the aligned observations of one
// column pair, skipping rows where either side is missing.
func pairPoints(t *loader.Table, ia, ib int) []Point {
	var out []Point
	for _, rec := range t.Rows {
		if ia >= len(rec) || ib >= len(rec) {
			continue
		}
		x, okx := parseNumeric(rec[ia])
		y, oky := parseNumeric(rec[ib])
		if okx && oky {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// pearson evaluates r from running sums, clamped to [-1, 1]; degenerate
// pairs yield 0.
func pearson(n, sx, sy, sxx, syy, sxy float64) float64 {
	if n < 2 {
		return 0
	}
	denom := math.Sqrt((n*sxx - sx*sx) * (n*syy - sy*sy))
	if denom == 0 {
		return 0
	}
	r := (n*sxy - sx*sy) / denom
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
