package analyze

// Severity grades how much of a column is missing.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// MissingColumn reports missing cells for one column.
type MissingColumn struct {
	Name     string
	Count    int
	Pct      float64
	Severity Severity
}

// severityFor maps a missing percentage to its ordinal label. The thresholds
// are monotonic: a higher percentage never yields a lower severity.
func severityFor(pct float64) Severity {
	switch {
	case pct < 5:
		return SeverityLow
	case pct < 15:
		return SeverityModerate
	case pct < 30:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}
