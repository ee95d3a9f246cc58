package prompt

import (
	"fmt"
	"strings"

	"github.com/csvmend/csvmend/internal/models"
)

// MaxOptions is the maximum number of candidates presented for one row
const MaxOptions = 4

// Request describes one ambiguous row needing a human decision
type Request struct {
	// FileName is the file being repaired
	FileName string

	// LineNumber is the 1-based line of the ambiguous row
	LineNumber int

	// RawLine is the original unsplit text of the row
	RawLine string

	// Header contains the column names
	Header []string

	// Candidates are the possible repairs, ordered best-first.
	// Only the first MaxOptions are presented.
	Candidates []models.Candidate
}

// Options returns the candidates capped to MaxOptions
func (r Request) Options() []models.Candidate {
	if len(r.Candidates) > MaxOptions {
		return r.Candidates[:MaxOptions]
	}
	return r.Candidates
}

// Chooser obtains a selection among candidate repairs for an ambiguous row.
// It returns the index into Request.Candidates of the chosen repair, or
// errors.ErrNoSelection when no selection can be obtained. Implementations
// must not block indefinitely on a channel that can never respond.
type Chooser interface {
	Choose(req Request) (int, error)
}

// ChooserFunc is a function type that implements the Chooser interface
type ChooserFunc func(req Request) (int, error)

// Choose calls the function itself
func (f ChooserFunc) Choose(req Request) (int, error) {
	return f(req)
}

// TargetColumn returns the header name of a candidate's merge column
func TargetColumn(header []string, c models.Candidate) string {
	if c.MergeIndex >= 0 && c.MergeIndex < len(header) {
		return header[c.MergeIndex]
	}
	return fmt.Sprintf("#%d", c.MergeIndex)
}

// Preview renders a name=value listing of every field of a candidate row
func Preview(header, row []string) string {
	pairs := make([]string, 0, len(row))
	for i, value := range row {
		name := fmt.Sprintf("#%d", i)
		if i < len(header) {
			name = header[i]
		}
		pairs = append(pairs, name+"="+value)
	}
	return strings.Join(pairs, " | ")
}
