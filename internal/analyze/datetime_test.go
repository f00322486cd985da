package analyze

import (
	"strings"
	"testing"
	"time"

	"github.com/KaramelBytes/autoreport/internal/loader"
)

func TestParseDatetime(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-03-04", true},
		{"2024-03-04 15:30:00", true},
		{"2024-03-04 15:30", true},
		{"2024-03-04T15:30:00Z", true},
		{"2024/03/04", true},
		{"03/04/2024", true},
		{"04.03.2024", true},
		{"Mar 4, 2024", true},
		{"4 Mar 2024", true},
		{"not a date", false},
		{"2024-13-40", false},
		{"", false},
	}
	for _, c := range cases {
		_, ok := parseDatetime(c.in)
		if ok != c.ok {
			t.Fatalf("parseDatetime(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
	}
}

func TestAnalyzeDatetimeColumn(t *testing.T) {
	tab := &loader.Table{
		Header: []string{"when", "v"},
		Rows: [][]string{
			{"2024-01-02", "1"},
			{"2024-03-04", "2"},
			{"", "3"},
			{"2024-02-03", "4"},
		},
	}
	a, err := Analyze(tab, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.Overview.DatetimeCols != 1 || len(a.Datetime) != 1 {
		t.Fatalf("overview = %+v, datetime = %d", a.Overview, len(a.Datetime))
	}
	p := a.Datetime[0]
	if p.Name != "when" || p.Count != 3 || p.Missing != 1 {
		t.Fatalf("profile = %+v", p)
	}
	if p.Min.Format("2006-01-02") != "2024-01-02" || p.Max.Format("2006-01-02") != "2024-03-04" {
		t.Fatalf("range = %v .. %v", p.Min, p.Max)
	}
	if p.Span != 62*24*time.Hour {
		t.Fatalf("span = %v", p.Span)
	}
	// A datetime column never joins the correlation set.
	if a.Corr != nil {
		t.Fatal("unexpected correlation with one numeric column")
	}
}

func TestSummaryDatetimeSection(t *testing.T) {
	tab := &loader.Table{
		Header: []string{"when", "x", "y"},
		Rows: [][]string{
			{"2024-01-02", "1", "2"},
			{"2024-02-03", "2", "4"},
			{"2024-03-04", "3", "6"},
		},
	}
	a, err := Analyze(tab, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	s := a.Summary()
	if want := "[DATETIME COLUMNS]"; !strings.Contains(s, want) {
		t.Fatalf("summary missing %q:\n%s", want, s)
	}
	if want := "from 2024-01-02 to 2024-03-04"; !strings.Contains(s, want) {
		t.Fatalf("summary missing %q:\n%s", want, s)
	}
}
