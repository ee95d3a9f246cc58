package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// WriteRows writes all rows to path as a properly quoted delimited file.
// Values containing the delimiter, quotes, or newlines are escaped by
// encoding/csv. The file is written to a temporary sibling first and renamed
// into place, so a failed run never leaves partial output behind.
func WriteRows(path string, rows [][]string, delimiter string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	comma, _ := utf8.DecodeRuneInString(delimiter)
	if comma != utf8.RuneError {
		writer.Comma = comma
	}

	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write rows: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename output: %w", err)
	}

	return nil
}
