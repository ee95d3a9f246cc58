package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csvmend/csvmend/internal/models"
	"github.com/csvmend/csvmend/internal/profile"
	"github.com/csvmend/csvmend/internal/prompt"
)

// newTestEngine builds an engine whose profile is derived from the given
// well-formed sample rows.
func newTestEngine(header []string, samples [][]string, preferred []int, chooser prompt.Chooser) *Engine {
	records := make([]*models.Record, 0, len(samples))
	for i, fields := range samples {
		records = append(records, models.NewRecord(i+2, "test.csv", "", fields))
	}

	return NewEngine(Config{
		Header:           header,
		Profile:          profile.Build(records, len(header), ","),
		PreferredIndices: preferred,
		Delimiter:        ",",
		Chooser:          chooser,
	})
}

func numericColumnEngine(preferred []int) *Engine {
	return newTestEngine(
		[]string{"N"},
		[][]string{{"1"}, {"2"}, {"3"}},
		preferred,
		nil,
	)
}

func TestScore_LengthPenaltyOnly(t *testing.T) {
	engine := numericColumnEngine(nil)

	// "4" matches the mean length of 1 exactly; only the off-preferred
	// merge penalty remains.
	assert.InDelta(t, 0.5, engine.Score([]string{"4"}, 0), 1e-9)
}

func TestScore_NonNumericInNumericColumn(t *testing.T) {
	engine := numericColumnEngine(nil)

	// |3-1|/(1+1) = 1.0 length penalty, 5.0 hard violation, 0.5 flat.
	assert.InDelta(t, 6.5, engine.Score([]string{"abc"}, 0), 1e-9)
}

func TestScore_EmptyInAlwaysFilledColumn(t *testing.T) {
	engine := numericColumnEngine(nil)

	// 0.5 length + 5.0 non-numeric + 2.0 empty + 0.5 flat.
	assert.InDelta(t, 8.0, engine.Score([]string{""}, 0), 1e-9)
}

func TestScore_NumericInRarelyNumericColumn(t *testing.T) {
	engine := newTestEngine(
		[]string{"T"},
		[][]string{{"ab"}, {"cd"}},
		nil,
		nil,
	)

	// Mean length 2 matches; 2.5 for a number where numbers almost never
	// occur, plus the flat penalty.
	assert.InDelta(t, 3.0, engine.Score([]string{"12"}, 0), 1e-9)
}

func TestScore_PreferredColumnWeightAndNoFlatPenalty(t *testing.T) {
	preferred := newTestEngine([]string{"T"}, [][]string{{"ab"}, {"cd"}}, []int{0}, nil)
	plain := newTestEngine([]string{"T"}, [][]string{{"ab"}, {"cd"}}, nil, nil)

	// |4-2|/(2+1) = 2/3 length penalty, weighted 0.6 on the preferred
	// column and unweighted plus 0.5 flat otherwise.
	assert.InDelta(t, 0.6*2.0/3.0, preferred.Score([]string{"abcd"}, 0), 1e-9)
	assert.InDelta(t, 2.0/3.0+0.5, plain.Score([]string{"abcd"}, 0), 1e-9)
}

func TestScore_UnprofiledColumnUnconstrained(t *testing.T) {
	engine := NewEngine(Config{
		Header:           []string{"a", "b"},
		Profile:          profile.Build(nil, 2, ","),
		PreferredIndices: []int{0},
		Delimiter:        ",",
	})

	assert.Equal(t, 0.0, engine.Score([]string{"anything at all", ""}, 0))
}

func TestValid(t *testing.T) {
	engine := newTestEngine(
		[]string{"N", "T"},
		[][]string{{"1", "x"}, {"2", "y"}, {"3", "z"}},
		nil,
		nil,
	)

	assert.True(t, engine.Valid([]string{"7", "anything"}))
	assert.False(t, engine.Valid([]string{"not a number", "x"}))
	assert.False(t, engine.Valid([]string{"7", ""}))
}

func TestValid_GroupedNumberSatisfiesNumericColumn(t *testing.T) {
	engine := numericColumnEngine(nil)

	assert.True(t, engine.Valid([]string{"1,234.56"}))
	assert.False(t, engine.Valid([]string{"1,23,4"}))
}
