package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/csvmend/csvmend/internal/errors"
)

// LineChooser prompts for a selection over a line-based channel: it prints
// the ranked candidates to Out and reads one answer per line from In,
// re-prompting on invalid input. An exhausted or failing channel yields
// errors.ErrNoSelection instead of blocking forever.
type LineChooser struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLineChooser creates a LineChooser reading from in and writing to out
func NewLineChooser(in io.Reader, out io.Writer) *LineChooser {
	return &LineChooser{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Choose implements the Chooser interface
func (c *LineChooser) Choose(req Request) (int, error) {
	options := req.Options()

	fmt.Fprintf(c.out, "Ambiguous row at line %d.\n", req.LineNumber)
	fmt.Fprintf(c.out, "Raw row: %s\n", req.RawLine)
	fmt.Fprintln(c.out, "Choose the correct repair:")

	for i, candidate := range options {
		fmt.Fprintf(c.out, "%d. merge into '%s' (score=%.3f) -> %s\n",
			i+1,
			TargetColumn(req.Header, candidate),
			candidate.Score,
			Preview(req.Header, candidate.Row),
		)
	}

	fmt.Fprintf(c.out, "Selection [1-%d]: ", len(options))

	for {
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, fmt.Errorf("%w: %v", errors.ErrNoSelection, err)
			}
			return 0, errors.ErrNoSelection
		}

		answer := strings.TrimSpace(c.in.Text())
		if choice, err := strconv.Atoi(answer); err == nil {
			if choice >= 1 && choice <= len(options) {
				return choice - 1, nil
			}
		}

		fmt.Fprintf(c.out, "Invalid selection. Enter a number between 1 and %d: ", len(options))
	}
}
