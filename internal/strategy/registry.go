package strategy

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two strategies share an id
var ErrDuplicateID = errors.New("duplicate strategy id")

// Registry holds an ordered, fixed set of strategies.
// Order matters: it is the tie-break when two records share a confidence.
type Registry struct {
	strategies []Strategy
}

// NewRegistry creates a registry from the given strategies, in order
func NewRegistry(strategies ...Strategy) (*Registry, error) {
	seen := make(map[string]bool, len(strategies))
	owned := make([]Strategy, 0, len(strategies))

	for i, s := range strategies {
		if s == nil {
			return nil, fmt.Errorf("strategy %d is nil", i)
		}
		if seen[s.ID()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID())
		}
		seen[s.ID()] = true
		owned = append(owned, s)
	}

	return &Registry{strategies: owned}, nil
}

// DefaultRegistry returns a registry with all built-in strategies.
// When every score is zero the first one wins, so unrecognised input is
// labelled "JSON Schema" and rendered verbatim.
func DefaultRegistry() *Registry {
	return &Registry{
		strategies: []Strategy{
			// Specialisations go ahead of their parent so they win ties
			&JSONSchemaStrategy{},
			&JSONStrategy{},
			&Base64Strategy{},
			&YAMLStrategy{},
			&MarkdownStrategy{},
		},
	}
}

// Check runs every strategy against the input and returns one record per
// strategy, in registry order
func (r *Registry) Check(input string) []Record {
	records := make([]Record, 0, len(r.strategies))
	for _, s := range r.strategies {
		records = append(records, s.Parse(input))
	}
	return records
}

// Strategies returns a copy of the registered strategies, in order
func (r *Registry) Strategies() []Strategy {
	return append([]Strategy(nil), r.strategies...)
}

// Len returns the number of registered strategies
func (r *Registry) Len() int {
	return len(r.strategies)
}

// Get returns a strategy by id
func (r *Registry) Get(id string) Strategy {
	for _, s := range r.strategies {
		if s.ID() == id {
			return s
		}
	}
	return nil
}

// Contains reports whether a strategy with the id is registered
func (r *Registry) Contains(id string) bool {
	return r.Get(id) != nil
}

// Children returns the strategies declaring id as their parent
func (r *Registry) Children(id string) []Strategy {
	var children []Strategy
	for _, s := range r.strategies {
		if parent, ok := s.ChildOf(); ok && parent == id {
			children = append(children, s)
		}
	}
	return children
}

// Without returns a new registry minus the strategies with the given ids.
// Unknown ids are ignored.
func (r *Registry) Without(ids ...string) *Registry {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	var kept []Strategy
	for _, s := range r.strategies {
		if !drop[s.ID()] {
			kept = append(kept, s)
		}
	}
	return &Registry{strategies: kept}
}
