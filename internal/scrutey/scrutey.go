// Package scrutey classifies input with a set of strategies, picks the most
// confident record and renders the input for it.
package scrutey

import (
	"cmp"
	"context"
	"errors"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/pthm/scrutey/internal/presenter"
	"github.com/pthm/scrutey/internal/strategy"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrNoResults means the checker produced no records at all, which only
// happens when it has no strategies configured
var ErrNoResults = errors.New("internal error; checker returned no results")

// Checker runs every strategy it holds against an input
type Checker interface {
	Check(input string) []strategy.Record
}

// Result is the outcome of classifying one input
type Result struct {
	// Input is the trimmed text every strategy and the presenter saw
	Input string
	// Ranked holds every record, most confident first
	Ranked []strategy.Record
	// Top is the record the input is rendered for, nil when it fell below
	// the minimum confidence
	Top *strategy.Record
}

// Rank returns the records ordered by descending confidence. Ties keep their
// original order, and NaN compares equal to everything. The argument is not
// modified.
func Rank(records []strategy.Record) ([]strategy.Record, error) {
	if len(records) == 0 {
		return nil, ErrNoResults
	}

	ranked := slices.Clone(records)
	slices.SortStableFunc(ranked, func(a, b strategy.Record) int {
		return byConfidence(b.Confidence, a.Confidence)
	})
	return ranked, nil
}

// byConfidence is cmp.Compare without NaN ordering
func byConfidence(a, b float64) int {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0
	}
	return cmp.Compare(a, b)
}

// Top returns the most confident record
func Top(records []strategy.Record) (strategy.Record, error) {
	ranked, err := Rank(records)
	if err != nil {
		return strategy.Record{}, err
	}
	return ranked[0], nil
}

// Scrutinize classifies and renders input with the default settings. A
// non-nil readErr is returned unchanged.
func Scrutinize(checker Checker, input string, readErr error) (string, error) {
	s := &Scrutinizer{Checker: checker}
	return s.Scrutinize(input, readErr)
}

// Scrutinizer runs the classify-and-render pipeline
type Scrutinizer struct {
	Checker   Checker
	Presenter *presenter.Presenter

	// MinConfidence is the score a top record needs to be rendered for its
	// family. Below it the input renders as nonsense. Zero keeps every top.
	MinConfidence float64

	Log logrus.FieldLogger
}

// Scrutinize classifies input and renders it. A non-nil readErr is returned
// unchanged.
func (s *Scrutinizer) Scrutinize(input string, readErr error) (string, error) {
	if readErr != nil {
		return "", readErr
	}

	result, err := s.Classify(input)
	if err != nil {
		return "", err
	}
	return s.Render(result), nil
}

// Classify trims input, runs every strategy and selects the top record
func (s *Scrutinizer) Classify(input string) (Result, error) {
	trimmed := strings.TrimSpace(input)

	ranked, err := Rank(s.Checker.Check(trimmed))
	if err != nil {
		return Result{}, err
	}

	result := Result{Input: trimmed, Ranked: ranked}
	top := ranked[0]
	if s.MinConfidence <= 0 || top.Confidence >= s.MinConfidence {
		result.Top = &top
	}

	log := s.logger()
	for i, rec := range ranked {
		log.WithFields(logrus.Fields{
			"rank":       i + 1,
			"name":       rec.DisplayName,
			"family":     rec.Family,
			"confidence": rec.Confidence,
			"errors":     len(rec.KnownErrors),
		}).Debug("scored input")
	}
	if result.Top == nil {
		log.WithFields(logrus.Fields{
			"name":           top.DisplayName,
			"confidence":     top.Confidence,
			"min_confidence": s.MinConfidence,
		}).Debug("top record below minimum confidence")
	}

	return result, nil
}

// Render renders a classified input
func (s *Scrutinizer) Render(result Result) string {
	p := s.Presenter
	if p == nil {
		p = &presenter.Presenter{}
	}
	return p.Present(result.Input, result.Top)
}

// ClassifyAll classifies several inputs concurrently. Results are returned
// in input order; the first error cancels the rest.
func (s *Scrutinizer) ClassifyAll(ctx context.Context, inputs []string) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := s.Classify(input)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Scrutinizer) logger() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	return discardLogger
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()
