package fixture

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// PromptConfirmer asks on the terminal, defaulting to "no".
type PromptConfirmer struct{}

// Confirm shows an interactive yes/no prompt.
func (PromptConfirmer) Confirm(prompt string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(prompt)
}

// Summary counts review outcomes.
type Summary struct {
	Passed   int
	Accepted int
	Rejected int
}

// Failed reports whether any mismatch was left unaccepted.
func (s Summary) Failed() bool {
	return s.Rejected > 0
}

// Review prints the diff of every mismatch to w. With a nil Confirmer every
// mismatch is rejected; otherwise each one is offered for acceptance and
// accepted results overwrite their expected file.
func Review(w io.Writer, results []*Result, confirm Confirmer) (Summary, error) {
	var s Summary

	for _, r := range results {
		if r.Passed() {
			s.Passed++
			continue
		}

		fmt.Fprintf(w, "--- %s (-expected +actual)\n%s\n", r.Case.MarkdownPath, r.Diff)

		if confirm == nil {
			s.Rejected++
			continue
		}

		ok, err := confirm.Confirm("Accept changes?")
		if err != nil {
			return s, fmt.Errorf("confirming %s: %w", r.Case.Name, err)
		}
		if !ok {
			s.Rejected++
			continue
		}
		if err := r.Accept(); err != nil {
			return s, err
		}
		fmt.Fprintf(w, "Updated %s\n", r.Case.HTMLPath)
		s.Accepted++
	}

	return s, nil
}
