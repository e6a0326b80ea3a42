// Package samples is the catalogue of example queries run by the lazyq CLI
// and checked by the scenario harness.
//
// Every sample builds a query on the engine packages over the Northwind
// fixtures or a small literal data set, enumerates it, and renders the
// result as a value.Value. Samples whose query fails by design (Single with
// several matches, ElementAt past the end) return the engine's typed error
// instead of a value.
package samples

import (
	"fmt"
	"sync"

	"github.com/roach88/lazyq/internal/value"
)

// Group names a family of related samples.
type Group string

const (
	GroupProjection Group = "projection"
	GroupSorting    Group = "sorting"
	GroupJoin       Group = "join"
	GroupQuantifier Group = "quantifier"
	GroupElement    Group = "element"
	GroupGeneration Group = "generation"
)

// Groups lists every group in catalogue order.
var Groups = []Group{
	GroupProjection,
	GroupSorting,
	GroupJoin,
	GroupQuantifier,
	GroupElement,
	GroupGeneration,
}

// Sample is one named example query.
type Sample struct {
	Name        string
	Group       Group
	Description string
	Run         func() (value.Value, error)
}

// Registry holds samples in registration order.
type Registry struct {
	samples []Sample
	byName  map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds s. Names must be unique and non-empty.
func (r *Registry) Register(s Sample) error {
	if s.Name == "" {
		return fmt.Errorf("sample name is required")
	}
	if s.Run == nil {
		return fmt.Errorf("sample %q: run function is required", s.Name)
	}
	if _, dup := r.byName[s.Name]; dup {
		return fmt.Errorf("sample %q already registered", s.Name)
	}
	r.byName[s.Name] = len(r.samples)
	r.samples = append(r.samples, s)
	return nil
}

// Get returns the sample called name.
func (r *Registry) Get(name string) (Sample, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Sample{}, false
	}
	return r.samples[i], true
}

// All returns every sample in registration order.
func (r *Registry) All() []Sample {
	out := make([]Sample, len(r.samples))
	copy(out, r.samples)
	return out
}

// InGroup returns the samples of g in registration order.
func (r *Registry) InGroup(g Group) []Sample {
	var out []Sample
	for _, s := range r.samples {
		if s.Group == g {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of registered samples.
func (r *Registry) Len() int {
	return len(r.samples)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry of built-in samples.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		for _, group := range [][]Sample{
			projectionSamples(),
			sortingSamples(),
			joinSamples(),
			quantifierSamples(),
			elementSamples(),
			generationSamples(),
		} {
			for _, s := range group {
				if err := defaultReg.Register(s); err != nil {
					panic(err)
				}
			}
		}
	})
	return defaultReg
}
