package repair

import (
	"sort"
	"strings"

	"github.com/csvmend/csvmend/internal/models"
)

// MergeAt reconstructs an overflowing row by merging the middle span back
// into the column at mergeIndex. The first mergeIndex fields and the last
// trailing fields are kept unchanged; everything between them is joined with
// the delimiter into a single field. When mergeIndex is the last column the
// merged field absorbs everything to the row's end.
func MergeAt(raw []string, expectedColumns, mergeIndex int, delimiter string) []string {
	trailing := expectedColumns - mergeIndex - 1

	row := make([]string, 0, expectedColumns)
	row = append(row, raw[:mergeIndex]...)

	if trailing == 0 {
		return append(row, strings.Join(raw[mergeIndex:], delimiter))
	}

	middle := raw[mergeIndex : len(raw)-trailing]
	row = append(row, strings.Join(middle, delimiter))
	return append(row, raw[len(raw)-trailing:]...)
}

// Generate produces one candidate per possible merge index. Every column is
// tried, not only the caller-declared text columns, since the corruption may
// sit in a column the caller did not anticipate.
func (e *Engine) Generate(raw []string) []models.Candidate {
	candidates := make([]models.Candidate, 0, e.expected)

	for idx := 0; idx < e.expected; idx++ {
		row := MergeAt(raw, e.expected, idx, e.delimiter)
		candidates = append(candidates, models.Candidate{
			MergeIndex: idx,
			Row:        row,
			Score:      e.Score(row, idx),
		})
	}

	// Stable so equal scores keep merge-index order, which makes the
	// presented ranking deterministic.
	sort.Stable(models.ByScore(candidates))

	return candidates
}
