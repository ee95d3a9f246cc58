package models

// Record represents a single data row of a delimited file
type Record struct {
	// LineNumber is the original line number in the file (1-indexed, header is line 1)
	LineNumber int

	// FileName is the source file name
	FileName string

	// Raw contains the fields produced by naive delimiter splitting
	Raw []string

	// Line is the original unsplit text of the row
	Line string
}

// NewRecord creates a new Record instance
func NewRecord(lineNumber int, fileName, line string, raw []string) *Record {
	return &Record{
		LineNumber: lineNumber,
		FileName:   fileName,
		Line:       line,
		Raw:        raw,
	}
}

// FieldCount returns the number of raw fields in this record
func (r *Record) FieldCount() int {
	return len(r.Raw)
}

// Field returns the value at the specified column index
// Returns empty string if index is out of bounds
func (r *Record) Field(index int) string {
	if index < 0 || index >= len(r.Raw) {
		return ""
	}
	return r.Raw[index]
}
