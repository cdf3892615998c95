package reporter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pthm/scrutey/internal/scrutey"
	"github.com/pthm/scrutey/internal/ui"
)

// TerminalReporter outputs a ranked table per input
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, styles: u.Styles}
}

// Report outputs every ranked record of every entry
func (r *TerminalReporter) Report(entries []Entry) error {
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		if len(entries) > 1 {
			fmt.Fprintln(r.w, r.styles.Banner.Render(fmt.Sprintf("==> %s <==", e.Source)))
		}
		r.printResult(e.Result)
	}

	if len(entries) > 1 {
		r.printSummary(entries)
	}
	return nil
}

func (r *TerminalReporter) printResult(result scrutey.Result) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Separator).
		Headers("RANK", "NAME", "FAMILY", "CONFIDENCE", "ERRORS")

	for i, rec := range result.Ranked {
		rank := strconv.Itoa(i + 1)
		if isTop(result, i) {
			rank = r.styles.IconTop + " " + rank
		}
		t.Row(
			rank,
			rec.DisplayName,
			rec.Family.String(),
			r.styles.Confidence(rec.Confidence).Render(fmt.Sprintf("%.2f", rec.Confidence)),
			strconv.Itoa(len(rec.KnownErrors)),
		)
	}

	fmt.Fprintln(r.w, t.String())
	fmt.Fprintf(r.w, "Top: %s\n", topName(result.Top))

	// Known errors, in rank order
	for _, rec := range result.Ranked {
		for _, pe := range rec.KnownErrors {
			location := ""
			if pe.Line > 0 {
				location = fmt.Sprintf("line %d: ", pe.Line)
				if pe.Column > 0 {
					location = fmt.Sprintf("line %d:%d: ", pe.Line, pe.Column)
				}
			}
			fmt.Fprintf(r.w, "  %s %s%s %s\n",
				r.styles.Error.Render(r.styles.IconError),
				location,
				pe.Message,
				r.styles.Muted.Render("["+rec.DisplayName+"]"),
			)
		}
	}
}

func (r *TerminalReporter) printSummary(entries []Entry) {
	summary := ComputeSummary(entries)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Separator.Render("─────────────────────────────────────"))
	fmt.Fprintf(r.w, "Recognised %d of %d inputs, %d known errors\n",
		summary.Recognised, summary.Inputs, summary.Errors)
}
