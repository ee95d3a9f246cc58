package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/csvmend/csvmend/internal/errors"
	"github.com/csvmend/csvmend/internal/models"
)

// Document is a delimited file loaded into memory: the header row plus all
// non-blank data rows, each split naively on the delimiter.
type Document struct {
	// FileName is the base name of the source file
	FileName string

	// Header contains the column names from the first line
	Header []string

	// Records contains all non-blank data rows in file order
	Records []*models.Record

	// Delimiter is the field separator the file was split with
	Delimiter string
}

// ExpectedColumns returns the column count declared by the header
func (d *Document) ExpectedColumns() int {
	return len(d.Header)
}

// Empty reports whether the file contained no lines at all
func (d *Document) Empty() bool {
	return d.Header == nil
}

// ColumnIndex returns the index of the first header column with the given
// name, or -1 if the name does not occur.
func (d *Document) ColumnIndex(name string) int {
	for i, col := range d.Header {
		if col == name {
			return i
		}
	}
	return -1
}

// Split splits a line into fields strictly on the delimiter, with no quote
// or escape semantics. Consecutive delimiters yield empty fields.
func Split(line, delimiter string) []string {
	return strings.Split(line, delimiter)
}

// Load reads a delimited file into a Document. The first line is the header;
// blank data lines are skipped. Line numbers are 1-based file positions, so
// the header is line 1 and skipped blanks still advance the count.
func Load(filename, delimiter string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewProcessingError("load", filename, 0, errors.ErrFileNotFound)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc := &Document{
		FileName:  filename,
		Delimiter: delimiter,
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return doc, nil
	}

	doc.Header = Split(lines[0], delimiter)

	for i, line := range lines[1:] {
		if line == "" {
			continue
		}
		lineNumber := i + 2
		doc.Records = append(doc.Records, models.NewRecord(
			lineNumber,
			filename,
			line,
			Split(line, delimiter),
		))
	}

	return doc, nil
}

// splitLines splits file content into lines, stripping CR/LF terminators.
// A trailing newline does not produce a final empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	return lines
}
