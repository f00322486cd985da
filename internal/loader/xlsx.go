package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// loadXLSX reads a workbook via excelize. The sheet is chosen by name when
// Options.Sheet is set (error lists the available sheets on a miss),
// otherwise the first sheet is used.
func loadXLSX(path string, opt Options) (*Table, []string, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, "", fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, "", fmt.Errorf("parse xlsx: workbook %s has no sheets", filepath.Base(path))
	}

	target := sheets[0]
	if opt.Sheet != "" {
		target = ""
		for _, s := range sheets {
			if strings.EqualFold(s, opt.Sheet) {
				target = s
				break
			}
		}
		if target == "" {
			return nil, nil, "", fmt.Errorf("sheet %q not found in %s (available: %s)",
				opt.Sheet, filepath.Base(path), strings.Join(sheets, ", "))
		}
	}

	rows, err := f.GetRows(target)
	if err != nil {
		return nil, nil, "", fmt.Errorf("read sheet %q: %w", target, err)
	}
	if len(rows) == 0 {
		return &Table{Name: filepath.Base(path)}, sheets, target, nil
	}

	header := rows[0]
	data := rows[1:]
	if opt.MaxRows > 0 && len(data) > opt.MaxRows {
		data = data[:opt.MaxRows]
	}
	t := newTable(filepath.Base(path), header, data)
	if opt.MaxRows > 0 && len(rows)-1 > opt.MaxRows {
		t.Warnings = append(t.Warnings, fmt.Sprintf("read only first %d of %d rows", opt.MaxRows, len(rows)-1))
	}
	return t, sheets, target, nil
}
