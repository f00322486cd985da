package loader

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/ledongthuc/pdf"
)

// loadPDF extracts the text layer of a PDF and probes it for an embedded
// delimited table, the same way plain text inputs are handled. Scanned PDFs
// with no text layer come back empty.
func loadPDF(path string, opt Options) (*Table, string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	content, err := r.GetPlainText()
	if err != nil {
		return nil, "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return nil, "", fmt.Errorf("extract pdf text: %w", err)
	}
	text := buf.String()
	t := textToTable(filepath.Base(path), text, opt)
	return t, text, nil
}
