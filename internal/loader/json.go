package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

const jsonExcerptLimit = 5000

// loadJSON normalizes a JSON document into a table. An array of objects maps
// keys to columns; an object whose first value is an array is unwrapped to
// that array; a flat object becomes a one-row table. Column order is sorted
// key order so repeated runs are deterministic.
func loadJSON(path string, opt Options) (*Table, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read json: %w", err)
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, "", fmt.Errorf("parse json: %w", err)
	}

	excerpt := ""
	if pretty, err := json.MarshalIndent(doc, "", "  "); err == nil {
		excerpt = string(pretty)
		if len(excerpt) > jsonExcerptLimit {
			excerpt = excerpt[:jsonExcerptLimit]
		}
	}

	records := normalizeJSON(doc)
	if len(records) == 0 {
		return &Table{Name: filepath.Base(path)}, excerpt, nil
	}
	if opt.MaxRows > 0 && len(records) > opt.MaxRows {
		records = records[:opt.MaxRows]
	}

	// Union of keys across records, sorted.
	keySet := map[string]bool{}
	for _, rec := range records {
		for k := range rec {
			keySet[k] = true
		}
	}
	header := make([]string, 0, len(keySet))
	for k := range keySet {
		header = append(header, k)
	}
	sort.Strings(header)

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(header))
		for j, k := range header {
			if v, ok := rec[k]; ok {
				row[j] = jsonScalar(v)
			}
		}
		rows[i] = row
	}
	return newTable(filepath.Base(path), header, rows), excerpt, nil
}

// normalizeJSON flattens the top-level document into object records.
func normalizeJSON(doc any) []map[string]any {
	switch v := doc.(type) {
	case []any:
		var out []map[string]any
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case map[string]any:
		// Unwrap the first array-valued key, scanning keys in sorted order.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if arr, ok := v[k].([]any); ok {
				return normalizeJSON(arr)
			}
		}
		return []map[string]any{v}
	default:
		return nil
	}
}

func jsonScalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	}
}
