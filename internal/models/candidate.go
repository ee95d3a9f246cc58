package models

// Candidate is one possible reconstruction of an overflowing row,
// anchored at a specific merge column index.
type Candidate struct {
	// MergeIndex is the column the middle span was joined into
	MergeIndex int

	// Row is the repaired row, always exactly the expected column count
	Row []string

	// Score is the candidate's cost; lower is a better fit
	Score float64
}

// ByScore implements sort.Interface, ordering candidates best-first
type ByScore []Candidate

func (s ByScore) Len() int           { return len(s) }
func (s ByScore) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s ByScore) Less(i, j int) bool { return s[i].Score < s[j].Score }
