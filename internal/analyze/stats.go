package analyze

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// numericProfile computes the full descriptive battery for one column.
func numericProfile(name string, vals []float64, missing int) NumericProfile {
	p := NumericProfile{Name: name, Count: len(vals), Missing: missing}
	total := len(vals) + missing
	if total > 0 {
		p.MissingPct = round2(float64(missing) * 100 / float64(total))
	}
	if len(vals) == 0 {
		return p
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	p.Min = sorted[0]
	p.Max = sorted[len(sorted)-1]
	p.Range = p.Max - p.Min
	p.Mean = mean(vals)
	p.Median = quantile(sorted, 0.5)
	p.Mode = mode(sorted)
	p.Std = sampleStd(vals, p.Mean)
	p.Q1 = quantile(sorted, 0.25)
	p.Q3 = quantile(sorted, 0.75)
	p.IQR = p.Q3 - p.Q1
	p.Skewness = skewness(vals, p.Mean, p.Std)
	p.Kurtosis = kurtosis(vals, p.Mean, p.Std)
	if p.Mean != 0 {
		p.CV = round2(p.Std / p.Mean * 100)
	}
	for _, v := range vals {
		if v == 0 {
			p.Zeros++
		}
		if v < 0 {
			p.Negatives++
		}
	}

	p.LowerFence = p.Q1 - 1.5*p.IQR
	p.UpperFence = p.Q3 + 1.5*p.IQR
	for _, v := range vals {
		if v < p.LowerFence || v > p.UpperFence {
			p.OutlierCount++
		}
	}
	p.OutlierPct = round2(float64(p.OutlierCount) * 100 / float64(len(vals)))
	p.Values = vals
	return p
}

func mean(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s / float64(len(vals))
}

// sampleStd is the n-1 standard deviation; 0 for fewer than two values.
func sampleStd(vals []float64, m float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	s := 0.0
	for _, v := range vals {
		d := v - m
		s += d * d
	}
	return math.Sqrt(s / float64(len(vals)-1))
}

// quantile interpolates linearly between order statistics. sorted must be in
// ascending order.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// mode returns the most frequent value; ties resolve to the smallest value,
// which the ascending scan gives us for free.
func mode(sorted []float64) float64 {
	best := sorted[0]
	bestRun := 0
	run := 1
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i] == sorted[i-1] {
			run++
			continue
		}
		if run > bestRun {
			bestRun = run
			best = sorted[i-1]
		}
		run = 1
	}
	return best
}

// skewness is the adjusted Fisher-Pearson estimator; 0 when n <= 2 or the
// distribution is degenerate.
func skewness(vals []float64, m, std float64) float64 {
	n := float64(len(vals))
	if len(vals) <= 2 || std == 0 {
		return 0
	}
	s := 0.0
	for _, v := range vals {
		z := (v - m) / std
		s += z * z * z
	}
	return n / ((n - 1) * (n - 2)) * s
}

// kurtosis is the sample-adjusted excess kurtosis; 0 when n <= 3 or the
// distribution is degenerate.
func kurtosis(vals []float64, m, std float64) float64 {
	n := float64(len(vals))
	if len(vals) <= 3 || std == 0 {
		return 0
	}
	s := 0.0
	for _, v := range vals {
		z := (v - m) / std
		s += z * z * z * z
	}
	return n*(n+1)/((n-1)*(n-2)*(n-3))*s - 3*(n-1)*(n-1)/((n-2)*(n-3))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// parseNumeric accepts plain and locale-formatted numbers: decimal comma,
// thousands separators (',' '.' space), percent suffix, scientific notation.
func parseNumeric(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, " ", " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	// Decide the decimal separator: with both present the rightmost wins.
	dec := '.'
	cpos := strings.LastIndex(raw, ",")
	dpos := strings.LastIndex(raw, ".")
	switch {
	case cpos >= 0 && dpos >= 0:
		if cpos > dpos {
			dec = ','
		}
	case cpos >= 0:
		dec = ','
	}
	for _, sep := range []rune{',', '.', ' '} {
		if sep != dec {
			raw = strings.ReplaceAll(raw, string(sep), "")
		}
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
