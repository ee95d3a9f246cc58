package repair

import (
	"math"

	"github.com/csvmend/csvmend/internal/profile"
)

// Scoring thresholds and penalties. Scores are purely comparative: lower is
// a better fit, and totals are never normalized to probabilities.
const (
	// numericHighThreshold marks a column as expected to be numeric
	numericHighThreshold = 0.8

	// numericLowThreshold marks a column as almost never numeric
	numericLowThreshold = 0.2

	// nonEmptyThreshold marks a column as expected to be non-empty
	nonEmptyThreshold = 0.95

	// preferredLengthWeight discounts length deviation in declared text columns
	preferredLengthWeight = 0.6

	// nonNumericPenalty applies when a numeric-heavy column gets a non-number
	nonNumericPenalty = 5.0

	// unexpectedNumericPenalty applies when a rarely-numeric column gets a number
	unexpectedNumericPenalty = 2.5

	// emptyPenalty applies when an always-filled column gets an empty value
	emptyPenalty = 2.0

	// offPreferredPenalty biases mildly toward merging at a declared text column
	offPreferredPenalty = 0.5
)

// Score computes the cost of a candidate row merged at mergeIndex against
// the column profile. Columns without a profile entry contribute nothing.
func (e *Engine) Score(row []string, mergeIndex int) float64 {
	score := 0.0

	for idx, value := range row {
		stats, ok := e.profile.Column(idx)
		if !ok {
			continue
		}

		lengthPenalty := math.Abs(float64(len(value))-stats.MeanLength) / (stats.MeanLength + 1.0)
		weight := 1.0
		if e.preferred[idx] {
			weight = preferredLengthWeight
		}
		score += weight * lengthPenalty

		numeric := profile.IsNumeric(value, e.delimiter)

		if stats.NumericRatio >= numericHighThreshold && !numeric {
			score += nonNumericPenalty
		}

		if stats.NumericRatio <= numericLowThreshold && numeric {
			score += unexpectedNumericPenalty
		}

		if stats.NonEmptyRatio >= nonEmptyThreshold && value == "" {
			score += emptyPenalty
		}
	}

	if !e.preferred[mergeIndex] {
		score += offPreferredPenalty
	}

	return score
}

// Valid reports whether a candidate row breaks no hard expectation: a
// numeric-heavy column holding a non-number or an always-filled column
// holding an empty value makes the candidate implausible.
func (e *Engine) Valid(row []string) bool {
	for idx, value := range row {
		stats, ok := e.profile.Column(idx)
		if !ok {
			continue
		}

		if stats.NumericRatio >= numericHighThreshold && !profile.IsNumeric(value, e.delimiter) {
			return false
		}

		if stats.NonEmptyRatio >= nonEmptyThreshold && value == "" {
			return false
		}
	}

	return true
}
