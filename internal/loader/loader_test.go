package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	content := "Name, Score ,Grade\n" +
		"alpha,10,A\n" +
		"beta,12,B\n" +
		"gamma,,A\n" +
		"\n" +
		"delta,14,B\n"
	path := writeFile(t, "scores.csv", []byte(content))

	tab, meta, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Format != FormatCSV {
		t.Fatalf("format = %q, want csv", meta.Format)
	}
	if meta.Filename != "scores.csv" {
		t.Fatalf("filename = %q", meta.Filename)
	}
	if tab.RowCount() != 4 {
		t.Fatalf("rows = %d, want 4 (empty line dropped)", tab.RowCount())
	}
	if tab.ColumnCount() != 3 {
		t.Fatalf("cols = %d, want 3", tab.ColumnCount())
	}
	if tab.Header[1] != "Score" {
		t.Fatalf("header not trimmed: %q", tab.Header[1])
	}
	if got := tab.Column(1); got[2] != "" {
		t.Fatalf("missing cell = %q, want empty", got[2])
	}
}

func TestLoadCSVMaxRows(t *testing.T) {
	var b strings.Builder
	b.WriteString("id,v\n")
	for i := 0; i < 20; i++ {
		b.WriteString("x,1\n")
	}
	path := writeFile(t, "long.csv", []byte(b.String()))

	opt := DefaultOptions()
	opt.MaxRows = 5
	tab, _, err := Load(path, opt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tab.RowCount() != 5 {
		t.Fatalf("rows = %d, want 5", tab.RowCount())
	}
	if len(tab.Warnings) == 0 || !strings.Contains(tab.Warnings[0], "first 5") {
		t.Fatalf("warnings = %#v", tab.Warnings)
	}
}

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		line string
		want rune
	}{
		{"a,b,c", ','},
		{"a;b;c", ';'},
		{"a\tb\tc", '\t'},
		{"a|b|c", '|'},
		{"single", ','},
		{"x;y;z,w", ';'},
	}
	for _, c := range cases {
		if got := sniffDelimiter(c.line); got != c.want {
			t.Fatalf("sniffDelimiter(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestLoadTSV(t *testing.T) {
	path := writeFile(t, "data.tsv", []byte("a\tb\n1\t2\n"))
	tab, meta, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Format != FormatTSV {
		t.Fatalf("format = %q, want tsv", meta.Format)
	}
	if tab.ColumnCount() != 2 || tab.RowCount() != 1 {
		t.Fatalf("shape = %dx%d", tab.RowCount(), tab.ColumnCount())
	}
}

func TestEncodingFallback(t *testing.T) {
	// 0xE9 is é in latin-1 and invalid UTF-8.
	raw := []byte("name,city\nJos\xe9,Lyon\n")
	path := writeFile(t, "latin.csv", raw)

	tab, _, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tab.Column(0)[0]; got != "José" {
		t.Fatalf("decoded = %q, want José", got)
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	if _, _, err := decode([]byte("x"), []string{"koi8-r"}); err == nil {
		t.Fatal("expected error for unknown encoding name")
	}
}

func TestLoadUnknownExtensionFallsBackToCSV(t *testing.T) {
	path := writeFile(t, "export.dat", []byte("a,b\n1,2\n"))
	tab, meta, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Format != FormatCSV {
		t.Fatalf("format = %q, want csv fallback", meta.Format)
	}
	if tab.ColumnCount() != 2 {
		t.Fatalf("cols = %d", tab.ColumnCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.csv"), DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTableDropsEmptyColumns(t *testing.T) {
	tab := newTable("t", []string{"a", "", "c"}, [][]string{
		{"1", "", "x"},
		{"2", "", "y"},
	})
	if tab.ColumnCount() != 2 {
		t.Fatalf("cols = %d, want 2 after dropping empty column", tab.ColumnCount())
	}
	if tab.Header[0] != "a" || tab.Header[1] != "c" {
		t.Fatalf("header = %#v", tab.Header)
	}
}

func TestTableNamesUnnamedColumns(t *testing.T) {
	tab := newTable("t", []string{"", "b"}, [][]string{{"1", "2"}})
	if tab.Header[0] != "Column 1" {
		t.Fatalf("header = %q, want Column 1", tab.Header[0])
	}
}

func TestHumanSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{512, "512.0 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, c := range cases {
		if got := humanSize(c.in); got != c.want {
			t.Fatalf("humanSize(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestErrUnsupportedFormat(t *testing.T) {
	// A header-only blob with an unknown extension yields no usable columns
	// from the CSV fallback.
	path := writeFile(t, "blob.bin", []byte{0x00, 0x01, 0x02})
	_, _, err := Load(path, DefaultOptions())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}
