// Package loader reads tabular and text data files into an in-memory Table.
// Format is selected by file extension; unknown extensions fall back to a CSV
// attempt before failing.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors surfaced to the CLI.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEncoding          = errors.New("could not decode file with any supported encoding")
)

// Format identifies the detected input format.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
	FormatExcel Format = "excel"
	FormatJSON  Format = "json"
	FormatText  Format = "txt"
	FormatPDF   Format = "pdf"
)

// Options controls loading behavior.
type Options struct {
	// MaxRows limits data rows read; 0 means unlimited.
	MaxRows int
	// Delimiter for CSV/TSV. If 0, auto-detects among ',', ';', '\t', '|'.
	Delimiter rune
	// Sheet selects an XLSX sheet by name. Empty means the first sheet.
	Sheet string
	// Encodings is the decode fallback chain for text formats.
	Encodings []string
}

// DefaultOptions returns reasonable defaults for report generation.
func DefaultOptions() Options {
	return Options{
		MaxRows:   100000,
		Encodings: []string{"utf-8", "latin-1", "cp1252"},
	}
}

// Meta describes the loaded file alongside its Table.
type Meta struct {
	Format    Format
	Filename  string
	Size      int64
	HumanSize string
	// Sheets lists workbook sheet names for Excel sources.
	Sheets []string
	// Sheet is the sheet actually loaded.
	Sheet string
	// Text holds raw text content for text-only inputs (and a pretty-printed
	// excerpt for JSON).
	Text string
}

// Load reads the file at path and returns its Table plus format metadata.
// Text files that contain no recoverable table return a nil-column Table and
// populate Meta.Text instead.
func Load(path string, opt Options) (*Table, *Meta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat input: %w", err)
	}
	meta := &Meta{
		Filename:  filepath.Base(path),
		Size:      info.Size(),
		HumanSize: humanSize(info.Size()),
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		meta.Format = FormatCSV
		t, err := loadCSV(path, opt, 0)
		return t, meta, err
	case ".tsv":
		meta.Format = FormatTSV
		t, err := loadCSV(path, opt, '\t')
		return t, meta, err
	case ".xlsx", ".xls":
		meta.Format = FormatExcel
		t, sheets, sheet, err := loadXLSX(path, opt)
		if err != nil {
			return nil, nil, err
		}
		meta.Sheets = sheets
		meta.Sheet = sheet
		return t, meta, nil
	case ".json":
		meta.Format = FormatJSON
		t, excerpt, err := loadJSON(path, opt)
		if err != nil {
			return nil, nil, err
		}
		meta.Text = excerpt
		return t, meta, nil
	case ".pdf":
		meta.Format = FormatPDF
		t, text, err := loadPDF(path, opt)
		if err != nil {
			return nil, nil, err
		}
		meta.Text = text
		return t, meta, nil
	case ".txt", ".md", ".log":
		meta.Format = FormatText
		t, text, err := loadText(path, opt)
		if err != nil {
			return nil, nil, err
		}
		meta.Text = text
		return t, meta, nil
	default:
		// Last resort: many exports carry odd extensions but are plain CSV.
		if t, err := loadCSV(path, opt, 0); err == nil && t.ColumnCount() > 0 {
			meta.Format = FormatCSV
			return t, meta, nil
		}
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func humanSize(b int64) string {
	s := float64(b)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if s < 1024 {
			return fmt.Sprintf("%.1f %s", s, unit)
		}
		s /= 1024
	}
	return fmt.Sprintf("%.1f TB", s)
}
