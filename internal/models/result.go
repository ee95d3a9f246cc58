package models

import (
	"time"
)

// RepairAction describes how a row was brought to the expected column count
type RepairAction string

const (
	// ActionPass means the row already had the expected column count
	ActionPass RepairAction = "PASS"

	// ActionPad means the row was right-padded with empty fields
	ActionPad RepairAction = "PAD"

	// ActionMerge means a scored candidate was accepted automatically
	ActionMerge RepairAction = "MERGE"

	// ActionPrompt means the repair was chosen interactively
	ActionPrompt RepairAction = "PROMPT"
)

// RowResult is the outcome of repairing a single record
type RowResult struct {
	// Record is the original record that was repaired
	Record *Record

	// Action indicates how the row was resolved
	Action RepairAction

	// Row is the final row, always exactly the expected column count
	Row []string

	// MergeIndex is the column a middle span was merged into, or -1
	MergeIndex int

	// Score is the accepted candidate's score (0 for PASS and PAD)
	Score float64
}

// Summary aggregates the outcome of one repair run
type Summary struct {
	// TotalRows is the number of data rows processed
	TotalRows int

	// PassedCount is the number of rows emitted unchanged
	PassedCount int

	// PaddedCount is the number of short rows padded with empty fields
	PaddedCount int

	// MergedCount is the number of rows repaired by an accepted candidate
	MergedCount int

	// PromptedCount is the number of rows resolved interactively
	PromptedCount int

	// StartTime is when processing started
	StartTime time.Time

	// EndTime is when processing completed
	EndTime time.Time

	// Duration is the total processing time
	Duration time.Duration
}

// NewSummary creates a new Summary instance
func NewSummary() *Summary {
	return &Summary{
		StartTime: time.Now(),
	}
}

// AddResult updates the summary with a new row result
func (s *Summary) AddResult(result *RowResult) {
	s.TotalRows++

	switch result.Action {
	case ActionPass:
		s.PassedCount++
	case ActionPad:
		s.PaddedCount++
	case ActionMerge:
		s.MergedCount++
	case ActionPrompt:
		s.PromptedCount++
	}
}

// RepairedCount returns the number of rows that needed any repair
func (s *Summary) RepairedCount() int {
	return s.PaddedCount + s.MergedCount + s.PromptedCount
}

// Finalize completes the summary calculation
func (s *Summary) Finalize() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}
