package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// loadCSV reads a delimited text file. forced is the delimiter implied by the
// extension (tab for .tsv); Options.Delimiter overrides, otherwise the
// delimiter is sniffed from the first line.
func loadCSV(path string, opt Options, forced rune) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	text, _, err := decode(raw, opt.Encodings)
	if err != nil {
		return nil, err
	}

	delim := opt.Delimiter
	if delim == 0 {
		delim = forced
	}
	if delim == 0 {
		delim = sniffDelimiter(text)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{Name: filepath.Base(path)}, nil
		}
		return nil, fmt.Errorf("parse csv header: %w", err)
	}

	maxRows := opt.MaxRows
	var rows [][]string
	var skipped, truncated int
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// Mirror pandas' on_bad_lines="skip": keep going past bad rows.
			skipped++
			continue
		}
		if maxRows > 0 && len(rows) >= maxRows {
			truncated++
			continue
		}
		row := make([]string, len(rec))
		copy(row, rec)
		rows = append(rows, row)
	}

	t := newTable(filepath.Base(path), header, rows)
	if skipped > 0 {
		t.Warnings = append(t.Warnings, fmt.Sprintf("skipped %d malformed row(s)", skipped))
	}
	if truncated > 0 {
		t.Warnings = append(t.Warnings, fmt.Sprintf("read only first %d of %d rows", maxRows, maxRows+truncated))
	}
	return t, nil
}

// sniffDelimiter picks the candidate delimiter occurring most often in the
// first non-empty line.
func sniffDelimiter(text string) rune {
	var line string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			line = l
			break
		}
	}
	best := ','
	bestCount := 0
	for _, cand := range []rune{',', ';', '\t', '|'} {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best = cand
			bestCount = n
		}
	}
	return best
}
