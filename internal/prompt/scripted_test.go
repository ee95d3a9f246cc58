package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csvmend/csvmend/internal/errors"
)

func TestScriptedChooser_ConsumesAnswersInOrder(t *testing.T) {
	chooser := NewScriptedChooser(2, 1)

	choice, err := chooser.Choose(testRequest(3))
	require.NoError(t, err)
	assert.Equal(t, 1, choice)

	choice, err = chooser.Choose(testRequest(3))
	require.NoError(t, err)
	assert.Equal(t, 0, choice)

	_, err = chooser.Choose(testRequest(3))
	assert.ErrorIs(t, err, errors.ErrNoSelection)
}

func TestScriptedChooser_OutOfRangeAnswer(t *testing.T) {
	chooser := NewScriptedChooser(3)

	_, err := chooser.Choose(testRequest(2))
	assert.ErrorIs(t, err, errors.ErrNoSelection)
}

func TestScriptedChooser_RespectsOptionCap(t *testing.T) {
	// Answer 5 is out of range even though 6 candidates exist, because
	// only MaxOptions are ever presented.
	chooser := NewScriptedChooser(5)

	_, err := chooser.Choose(testRequest(6))
	assert.ErrorIs(t, err, errors.ErrNoSelection)
}
