package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/csvmend/csvmend/internal/errors"
)

var (
	formTitleStyle   = lipgloss.NewStyle().Bold(true)
	formRawStyle     = lipgloss.NewStyle().Faint(true)
	formPreviewStyle = lipgloss.NewStyle().PaddingLeft(3).Faint(true)
)

// FormChooser presents candidate repairs as an interactive terminal select
// form. It is the chooser attached when the process has a usable terminal;
// without one the form fails and the row surfaces as ambiguous.
type FormChooser struct {
	out io.Writer
}

// NewFormChooser creates a FormChooser writing its preamble to stdout
func NewFormChooser() *FormChooser {
	return &FormChooser{out: os.Stdout}
}

// Choose implements the Chooser interface
func (c *FormChooser) Choose(req Request) (int, error) {
	options := req.Options()

	fmt.Fprintln(c.out, formTitleStyle.Render(fmt.Sprintf("Ambiguous row at line %d", req.LineNumber)))
	fmt.Fprintln(c.out, formRawStyle.Render("Raw row: "+req.RawLine))

	selectOptions := make([]huh.Option[int], 0, len(options))
	for i, candidate := range options {
		label := fmt.Sprintf("%d. merge into '%s' (score=%.3f)",
			i+1, TargetColumn(req.Header, candidate), candidate.Score)
		selectOptions = append(selectOptions, huh.NewOption(label, i))
		fmt.Fprintln(c.out, formPreviewStyle.Render(label+" -> "+Preview(req.Header, candidate.Row)))
	}

	var choice int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Choose the correct repair").
				Options(selectOptions...).
				Value(&choice),
		),
	)

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return 0, errors.ErrNoSelection
		}
		return 0, fmt.Errorf("%w: %v", errors.ErrNoSelection, err)
	}

	return choice, nil
}
