package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrNoColumns indicates no text column name was provided
	ErrNoColumns = errors.New("at least one text column must be provided")

	// ErrFileNotFound indicates the file doesn't exist
	ErrFileNotFound = errors.New("file not found")

	// ErrNoSelection indicates no interactive selection could be obtained
	ErrNoSelection = errors.New("no interactive selection available")
)

// ColumnNotFoundError indicates a declared text column is absent from the header.
// It is raised before any data row is processed.
type ColumnNotFoundError struct {
	// Column is the name that was not found
	Column string
}

// Error implements the error interface
func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column '%s' not found in header", e.Column)
}

// NewColumnNotFoundError creates a new ColumnNotFoundError
func NewColumnNotFoundError(column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Column: column}
}

// IsColumnNotFound reports whether err is a ColumnNotFoundError
func IsColumnNotFound(err error) bool {
	var cnf *ColumnNotFoundError
	return errors.As(err, &cnf)
}

// AmbiguousRowError indicates a row had multiple plausible repairs and no
// interactive selection was available to choose between them.
type AmbiguousRowError struct {
	// FileName is the file being repaired
	FileName string

	// LineNumber is the 1-based line of the ambiguous row (header is line 1)
	LineNumber int

	// Err is the underlying cause, if any
	Err error
}

// Error implements the error interface
func (e *AmbiguousRowError) Error() string {
	if e.FileName != "" {
		return fmt.Sprintf("ambiguous row at line %d in %s: provide interactive input to choose a repair", e.LineNumber, e.FileName)
	}
	return fmt.Sprintf("ambiguous row at line %d: provide interactive input to choose a repair", e.LineNumber)
}

// Unwrap returns the underlying error
func (e *AmbiguousRowError) Unwrap() error {
	return e.Err
}

// NewAmbiguousRowError creates a new AmbiguousRowError
func NewAmbiguousRowError(fileName string, lineNumber int, err error) *AmbiguousRowError {
	return &AmbiguousRowError{
		FileName:   fileName,
		LineNumber: lineNumber,
		Err:        err,
	}
}

// IsAmbiguousRow reports whether err is an AmbiguousRowError
func IsAmbiguousRow(err error) bool {
	var amb *AmbiguousRowError
	return errors.As(err, &amb)
}

// ProcessingError wraps errors with additional context
type ProcessingError struct {
	// Op is the operation that failed
	Op string

	// FileName is the file being processed
	FileName string

	// LineNumber is the line where the error occurred
	LineNumber int

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *ProcessingError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("%s: %s:%d: %v", e.Op, e.FileName, e.LineNumber, e.Err)
	}
	if e.FileName != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.FileName, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError creates a new ProcessingError
func NewProcessingError(op, fileName string, lineNumber int, err error) *ProcessingError {
	return &ProcessingError{
		Op:         op,
		FileName:   fileName,
		LineNumber: lineNumber,
		Err:        err,
	}
}
