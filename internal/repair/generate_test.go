package repair

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csvmend/csvmend/internal/models"
	"github.com/csvmend/csvmend/internal/profile"
)

func TestMergeAt(t *testing.T) {
	raw := []string{"1", "Widget", "Nice", " red", " and shiny", "9.99"}

	tests := []struct {
		name       string
		mergeIndex int
		want       []string
	}{
		{
			name:       "first column",
			mergeIndex: 0,
			want:       []string{"1,Widget,Nice", " red", " and shiny", "9.99"},
		},
		{
			name:       "middle column",
			mergeIndex: 2,
			want:       []string{"1", "Widget", "Nice, red, and shiny", "9.99"},
		},
		{
			name:       "last column absorbs the tail",
			mergeIndex: 3,
			want:       []string{"1", "Widget", "Nice", " red, and shiny,9.99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeAt(raw, 4, tt.mergeIndex, ","))
		})
	}
}

func TestMergeAt_CustomDelimiter(t *testing.T) {
	raw := []string{"1", "a", "b", "c"}
	assert.Equal(t, []string{"1", "a;b", "c"}, MergeAt(raw, 3, 1, ";"))
}

func TestGenerate_OneCandidatePerColumn(t *testing.T) {
	engine := NewEngine(Config{
		Header:    []string{"a", "b", "c", "d"},
		Profile:   profile.Build(nil, 4, ","),
		Delimiter: ",",
	})

	candidates := engine.Generate([]string{"1", "2", "3", "4", "5", "6"})
	require.Len(t, candidates, 4)

	// Every merge index occurs exactly once.
	indices := make([]int, 0, len(candidates))
	for _, c := range candidates {
		assert.Len(t, c.Row, 4)
		indices = append(indices, c.MergeIndex)
	}
	sort.Ints(indices)
	assert.Equal(t, []int{0, 1, 2, 3}, indices)

	// Ranking is ascending by score.
	assert.True(t, sort.IsSorted(models.ByScore(candidates)))
}

func TestGenerate_TiesKeepMergeIndexOrder(t *testing.T) {
	// Empty profile and no preferred columns: every candidate scores the
	// same flat penalty, so the ranking must fall back to column order.
	engine := NewEngine(Config{
		Header:    []string{"a", "b", "c"},
		Profile:   profile.Build(nil, 3, ","),
		Delimiter: ",",
	})

	candidates := engine.Generate([]string{"w", "x", "y", "z"})
	require.Len(t, candidates, 3)
	assert.Equal(t, 0, candidates[0].MergeIndex)
	assert.Equal(t, 1, candidates[1].MergeIndex)
	assert.Equal(t, 2, candidates[2].MergeIndex)
}
