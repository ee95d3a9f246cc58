package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csvmend/csvmend/internal/models"
)

func record(line int, fields ...string) *models.Record {
	return models.NewRecord(line, "test.csv", "", fields)
}

func TestBuild_BasicStats(t *testing.T) {
	records := []*models.Record{
		record(2, "1", "Widget", "9.99"),
		record(3, "2", "Gadget", "19.99"),
		record(4, "30", "Gizmo", ""),
	}

	prof := Build(records, 3, ",")
	require.Equal(t, 3, prof.Len())

	id, ok := prof.Column(0)
	require.True(t, ok)
	assert.InDelta(t, 4.0/3.0, id.MeanLength, 1e-9)
	assert.Equal(t, 1.0, id.NumericRatio)
	assert.Equal(t, 1.0, id.NonEmptyRatio)

	name, ok := prof.Column(1)
	require.True(t, ok)
	assert.Equal(t, 0.0, name.NumericRatio)
	assert.Equal(t, 1.0, name.NonEmptyRatio)

	price, ok := prof.Column(2)
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, price.NumericRatio, 1e-9)
	assert.InDelta(t, 2.0/3.0, price.NonEmptyRatio, 1e-9)
}

func TestBuild_SkipsMismatchedRows(t *testing.T) {
	records := []*models.Record{
		record(2, "1", "ok", "9.99"),
		// Overflowing row must not contribute samples.
		record(3, "2", "bad", "extra", "9.99"),
		// Short row must not contribute either.
		record(4, "3"),
	}

	prof := Build(records, 3, ",")
	require.Equal(t, 3, prof.Len())

	id, ok := prof.Column(0)
	require.True(t, ok)
	assert.Equal(t, 1.0, id.MeanLength)
}

func TestBuild_NoValidSamples(t *testing.T) {
	records := []*models.Record{
		record(2, "only", "two"),
		record(3, "a", "b", "c", "d"),
	}

	prof := Build(records, 3, ",")
	assert.Equal(t, 0, prof.Len())

	_, ok := prof.Column(0)
	assert.False(t, ok)
}

func TestBuild_EmptyInput(t *testing.T) {
	prof := Build(nil, 4, ",")
	assert.Equal(t, 0, prof.Len())
}
