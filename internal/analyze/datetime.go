package analyze

import "time"

// DatetimeProfile summarizes a column of timestamps.
type DatetimeProfile struct {
	Name       string
	Count      int
	Missing    int
	MissingPct float64
	Min        time.Time
	Max        time.Time
	Span       time.Duration
}

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// parseDatetime tries the known layouts in order.
func parseDatetime(s string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func datetimeProfile(name string, times []time.Time, missing int) DatetimeProfile {
	p := DatetimeProfile{Name: name, Count: len(times), Missing: missing}
	total := len(times) + missing
	if total > 0 {
		p.MissingPct = round2(float64(missing) * 100 / float64(total))
	}
	if len(times) == 0 {
		return p
	}
	p.Min, p.Max = times[0], times[0]
	for _, ts := range times[1:] {
		if ts.Before(p.Min) {
			p.Min = ts
		}
		if ts.After(p.Max) {
			p.Max = ts
		}
	}
	p.Span = p.Max.Sub(p.Min)
	return p
}
