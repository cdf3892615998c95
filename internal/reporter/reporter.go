package reporter

import (
	"github.com/pthm/scrutey/internal/scrutey"
	"github.com/pthm/scrutey/internal/strategy"
)

// Entry is one classified input and where it came from
type Entry struct {
	// Source is the file path, or "-" for stdin
	Source string
	Result scrutey.Result
}

// Reporter defines the interface for outputting every ranked record
type Reporter interface {
	// Report outputs the classification results
	Report(entries []Entry) error
}

// Summary holds summary statistics for a run
type Summary struct {
	Inputs     int `json:"inputs"`
	Recognised int `json:"recognised"`
	Errors     int `json:"known_errors"`
}

// ComputeSummary computes summary statistics from entries.
// An input counts as recognised when its top record scored above zero.
func ComputeSummary(entries []Entry) Summary {
	s := Summary{Inputs: len(entries)}

	for _, e := range entries {
		if top := e.Result.Top; top != nil && top.Confidence > 0 {
			s.Recognised++
		}
		for _, rec := range e.Result.Ranked {
			s.Errors += len(rec.KnownErrors)
		}
	}

	return s
}

// isTop reports whether rec at rank i is the record the input rendered for
func isTop(result scrutey.Result, i int) bool {
	return i == 0 && result.Top != nil
}

func topName(top *strategy.Record) string {
	if top == nil {
		return "nonsense"
	}
	return top.DisplayName
}
