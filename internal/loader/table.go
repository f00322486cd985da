package loader

import (
	"fmt"
	"strings"
)

// Table is an ordered set of named columns over string cells. An empty cell
// is a missing value. All columns share the same row count and row order is
// preserved from the source.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
	// Warnings collects non-fatal load notes (skipped rows, padding).
	Warnings []string
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.Header) }

// Column returns the cells of column i in row order.
func (t *Table) Column(i int) []string {
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			out[r] = row[i]
		}
	}
	return out
}

// Empty reports whether the table holds no usable data.
func (t *Table) Empty() bool {
	return t == nil || len(t.Header) == 0 || len(t.Rows) == 0
}

// newTable normalizes a raw header+rows grid into a clean Table: headers are
// trimmed (unnamed ones get positional names), ragged rows are padded or
// truncated to the header width, and fully-empty rows and columns dropped.
func newTable(name string, header []string, rows [][]string) *Table {
	ncol := len(header)
	clean := make([]string, ncol)
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
		}
		clean[i] = h
	}

	norm := make([][]string, 0, len(rows))
	for _, rec := range rows {
		row := make([]string, ncol)
		for j := 0; j < ncol && j < len(rec); j++ {
			row[j] = strings.TrimSpace(rec[j])
		}
		if rowEmpty(row) {
			continue
		}
		norm = append(norm, row)
	}

	// Drop columns that are empty across every row.
	keep := make([]int, 0, ncol)
	for j := 0; j < ncol; j++ {
		empty := true
		for _, row := range norm {
			if row[j] != "" {
				empty = false
				break
			}
		}
		if !empty {
			keep = append(keep, j)
		}
	}
	if len(keep) < ncol {
		header2 := make([]string, len(keep))
		for i, j := range keep {
			header2[i] = clean[j]
		}
		rows2 := make([][]string, len(norm))
		for r, row := range norm {
			nr := make([]string, len(keep))
			for i, j := range keep {
				nr[i] = row[j]
			}
			rows2[r] = nr
		}
		return &Table{Name: name, Header: header2, Rows: rows2}
	}
	return &Table{Name: name, Header: clean, Rows: norm}
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
