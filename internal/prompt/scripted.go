package prompt

import (
	"github.com/csvmend/csvmend/internal/errors"
)

// ScriptedChooser answers each request from a fixed list of 1-based
// selections. It lets batch callers and tests supply a deterministic policy
// instead of capturing a process-wide input stream.
type ScriptedChooser struct {
	answers []int
	next    int
}

// NewScriptedChooser creates a ScriptedChooser with the given 1-based answers
func NewScriptedChooser(answers ...int) *ScriptedChooser {
	return &ScriptedChooser{answers: answers}
}

// Choose implements the Chooser interface. It consumes one scripted answer
// per request and fails once the script is exhausted or an answer is out of
// range for the presented options.
func (c *ScriptedChooser) Choose(req Request) (int, error) {
	if c.next >= len(c.answers) {
		return 0, errors.ErrNoSelection
	}

	answer := c.answers[c.next]
	c.next++

	options := req.Options()
	if answer < 1 || answer > len(options) {
		return 0, errors.ErrNoSelection
	}

	return answer - 1, nil
}
