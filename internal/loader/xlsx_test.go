package loader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Sales"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if _, err := f.NewSheet("Notes"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	rows := [][]any{
		{"Region", "Revenue"},
		{"North", 120},
		{"South", 95},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sales", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t)

	tab, meta, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Format != FormatExcel {
		t.Fatalf("format = %q", meta.Format)
	}
	if meta.Sheet != "Sales" || len(meta.Sheets) != 2 {
		t.Fatalf("sheets = %#v, active %q", meta.Sheets, meta.Sheet)
	}
	if tab.RowCount() != 2 || tab.ColumnCount() != 2 {
		t.Fatalf("table = %dx%d", tab.RowCount(), tab.ColumnCount())
	}
	if tab.Header[0] != "Region" || tab.Rows[0][1] != "120" {
		t.Fatalf("header %#v rows %#v", tab.Header, tab.Rows)
	}
}

func TestLoadXLSXSheetSelection(t *testing.T) {
	path := writeWorkbook(t)

	opt := DefaultOptions()
	opt.Sheet = "sales" // case-insensitive match
	_, meta, err := Load(path, opt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Sheet != "Sales" {
		t.Fatalf("sheet = %q", meta.Sheet)
	}

	opt.Sheet = "Inventory"
	_, _, err = Load(path, opt)
	if err == nil || !strings.Contains(err.Error(), "available: Sales, Notes") {
		t.Fatalf("err = %v, want available-sheets listing", err)
	}
}
