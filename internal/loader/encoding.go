package loader

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decode tries each encoding in order and returns the decoded text plus the
// encoding that succeeded. UTF-8 is validated rather than transcoded; the
// single-byte charmaps are decoded via x/text.
func decode(b []byte, encodings []string) (string, string, error) {
	if len(encodings) == 0 {
		encodings = DefaultOptions().Encodings
	}
	for _, name := range encodings {
		switch name {
		case "utf-8", "utf8":
			if utf8.Valid(b) {
				return string(b), "utf-8", nil
			}
		case "latin-1", "iso-8859-1":
			if s, err := charmap.ISO8859_1.NewDecoder().Bytes(b); err == nil {
				return string(s), "latin-1", nil
			}
		case "cp1252", "windows-1252":
			if s, err := charmap.Windows1252.NewDecoder().Bytes(b); err == nil {
				return string(s), "cp1252", nil
			}
		default:
			return "", "", fmt.Errorf("unknown encoding %q", name)
		}
	}
	return "", "", ErrEncoding
}
