package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/scrutey/internal/strategy"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Results []JSONResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// JSONResult represents one classified input in JSON format
type JSONResult struct {
	Source string            `json:"source"`
	Top    *strategy.Record  `json:"top"`
	Label  string            `json:"label"`
	Ranked []strategy.Record `json:"ranked"`
}

// Report outputs results as JSON
func (r *JSONReporter) Report(entries []Entry) error {
	output := JSONOutput{
		Results: make([]JSONResult, 0, len(entries)),
		Summary: ComputeSummary(entries),
	}

	for _, e := range entries {
		output.Results = append(output.Results, JSONResult{
			Source: e.Source,
			Top:    e.Result.Top,
			Label:  topName(e.Result.Top),
			Ranked: e.Result.Ranked,
		})
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
