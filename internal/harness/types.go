package harness

import "github.com/roach88/lazyq/internal/value"

// Result is the outcome of a scenario execution.
type Result struct {
	// Scenario is the scenario name.
	Scenario string `json:"scenario"`

	// Sample is the sample that was run.
	Sample string `json:"sample"`

	// Pass indicates every assertion held.
	Pass bool `json:"pass"`

	// Output is the sample's output, nil when the sample failed.
	Output value.Value `json:"-"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(scenario, sample string) *Result {
	return &Result{
		Scenario: scenario,
		Sample:   sample,
		Pass:     true,
		Errors:   []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
