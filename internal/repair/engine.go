package repair

import (
	"github.com/csvmend/csvmend/internal/errors"
	"github.com/csvmend/csvmend/internal/models"
	"github.com/csvmend/csvmend/internal/profile"
	"github.com/csvmend/csvmend/internal/prompt"
)

// scoreGapThreshold is the absolute score gap below which two candidates
// are considered tied.
const scoreGapThreshold = 0.1

// relativeGapThreshold is the near-tie bound for the generic ambiguity
// test: second-best within 15% of best.
const relativeGapThreshold = 1.15

// Engine repairs individual rows against an immutable column profile. It is
// a pure per-row stage: all file-level state (header, expected column count,
// profile, preferred columns) is fixed at construction.
type Engine struct {
	header    []string
	expected  int
	profile   *profile.Profile
	preferred map[int]bool
	delimiter string
	chooser   prompt.Chooser
}

// Config holds configuration for the repair engine
type Config struct {
	// Header contains the column names; its length is the expected count
	Header []string

	// Profile holds the per-column statistics, built once per file
	Profile *profile.Profile

	// PreferredIndices are the caller-declared text column indices
	PreferredIndices []int

	// Delimiter is the field separator
	Delimiter string

	// Chooser resolves ambiguous rows; nil means escalation must fail
	Chooser prompt.Chooser
}

// NewEngine creates a new repair engine
func NewEngine(config Config) *Engine {
	preferred := make(map[int]bool, len(config.PreferredIndices))
	for _, idx := range config.PreferredIndices {
		preferred[idx] = true
	}

	return &Engine{
		header:    config.Header,
		expected:  len(config.Header),
		profile:   config.Profile,
		preferred: preferred,
		delimiter: config.Delimiter,
		chooser:   config.Chooser,
	}
}

// Repair brings one record to exactly the expected column count. Rows that
// already match pass through untouched, short rows are right-padded on the
// assumption that trailing fields were dropped, and overflowing rows go
// through candidate generation, scoring, and the ambiguity policy.
func (e *Engine) Repair(record *models.Record) (*models.RowResult, error) {
	switch {
	case record.FieldCount() == e.expected:
		return &models.RowResult{
			Record:     record,
			Action:     models.ActionPass,
			Row:        record.Raw,
			MergeIndex: -1,
		}, nil

	case record.FieldCount() < e.expected:
		row := make([]string, e.expected)
		copy(row, record.Raw)
		return &models.RowResult{
			Record:     record,
			Action:     models.ActionPad,
			Row:        row,
			MergeIndex: -1,
		}, nil

	default:
		return e.repairOverflow(record)
	}
}

// repairOverflow resolves a row with more raw fields than the header declares
func (e *Engine) repairOverflow(record *models.Record) (*models.RowResult, error) {
	candidates := e.Generate(record.Raw)

	valid := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if e.Valid(c.Row) {
			valid = append(valid, c)
		}
	}

	switch {
	case len(valid) == 1:
		return accepted(record, valid[0], models.ActionMerge), nil

	case len(valid) >= 2:
		if e.contested(valid) {
			return e.escalate(record, valid)
		}
		return accepted(record, valid[0], models.ActionMerge), nil

	default:
		// No candidate survived the hard expectations; fall back to
		// the full ranking and only escalate on a near-tie.
		if ambiguous(candidates) {
			return e.escalate(record, candidates)
		}
		return accepted(record, candidates[0], models.ActionMerge), nil
	}
}

// contested decides whether a set of two or more valid candidates needs a
// human choice: more than one plausible merge among the declared text
// columns, a best candidate that disagrees with the caller's hint, or a
// score gap too small to trust.
func (e *Engine) contested(valid []models.Candidate) bool {
	preferredHits := 0
	for _, c := range valid {
		if e.preferred[c.MergeIndex] {
			preferredHits++
		}
	}
	if preferredHits > 1 {
		return true
	}

	if !e.preferred[valid[0].MergeIndex] {
		return true
	}

	return valid[1].Score-valid[0].Score <= scoreGapThreshold
}

// ambiguous is the generic near-tie test applied to an unfiltered ranking
func ambiguous(candidates []models.Candidate) bool {
	if len(candidates) < 2 {
		return false
	}

	best := candidates[0].Score
	second := candidates[1].Score

	if second-best <= scoreGapThreshold {
		return true
	}

	if best == 0 && second == 0 {
		return true
	}

	return best > 0 && second/best <= relativeGapThreshold
}

// escalate hands the ranked candidates to the chooser. Without a chooser, or
// when the chooser's channel cannot produce an answer, the row surfaces as a
// typed ambiguous-row failure carrying its line number.
func (e *Engine) escalate(record *models.Record, candidates []models.Candidate) (*models.RowResult, error) {
	if e.chooser == nil {
		return nil, errors.NewAmbiguousRowError(record.FileName, record.LineNumber, errors.ErrNoSelection)
	}

	choice, err := e.chooser.Choose(prompt.Request{
		FileName:   record.FileName,
		LineNumber: record.LineNumber,
		RawLine:    record.Line,
		Header:     e.header,
		Candidates: candidates,
	})
	if err != nil {
		return nil, errors.NewAmbiguousRowError(record.FileName, record.LineNumber, err)
	}

	return accepted(record, candidates[choice], models.ActionPrompt), nil
}

// accepted wraps a chosen candidate into a row result
func accepted(record *models.Record, c models.Candidate, action models.RepairAction) *models.RowResult {
	return &models.RowResult{
		Record:     record,
		Action:     action,
		Row:        c.Row,
		MergeIndex: c.MergeIndex,
		Score:      c.Score,
	}
}
