package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// loadText decodes a plain-text file and attempts to recover an embedded
// delimited table from it. When no table shape is found the Table is empty
// and the caller analyzes the raw text instead.
func loadText(path string, opt Options) (*Table, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read text: %w", err)
	}
	text, _, err := decode(raw, opt.Encodings)
	if err != nil {
		return nil, "", err
	}
	t := textToTable(filepath.Base(path), text, opt)
	return t, text, nil
}

// textToTable parses delimited lines out of plain text. A table is accepted
// only when the first lines agree on a field count greater than one.
func textToTable(name, text string, opt Options) *Table {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimRight(l, "\r"))
		}
	}
	if len(lines) < 2 {
		return &Table{Name: name}
	}
	for _, sep := range []string{",", "\t", ";", "|"} {
		if !strings.Contains(lines[0], sep) {
			continue
		}
		width := len(strings.Split(lines[0], sep))
		if width < 2 {
			continue
		}
		consistent := true
		probe := len(lines)
		if probe > 5 {
			probe = 5
		}
		for _, l := range lines[1:probe] {
			if len(strings.Split(l, sep)) != width {
				consistent = false
				break
			}
		}
		if !consistent {
			continue
		}
		data := lines[1:]
		if opt.MaxRows > 0 && len(data) > opt.MaxRows {
			data = data[:opt.MaxRows]
		}
		rows := make([][]string, len(data))
		for i, l := range data {
			rows[i] = strings.Split(l, sep)
		}
		return newTable(name, strings.Split(lines[0], sep), rows)
	}
	return &Table{Name: name}
}
