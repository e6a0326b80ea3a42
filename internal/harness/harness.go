package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/lazyq/internal/samples"
	"github.com/roach88/lazyq/internal/value"
)

// ErrUnknownSample is returned when a scenario names a sample that is not
// registered.
var ErrUnknownSample = errors.New("unknown sample")

// Harness runs scenarios against a sample registry.
type Harness struct {
	registry *samples.Registry
	logger   *slog.Logger
}

// New creates a harness over registry. A nil logger discards output.
func New(registry *samples.Registry, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{registry: registry, logger: logger}
}

// Run executes a scenario against the default sample registry.
func Run(scenario *Scenario) (*Result, error) {
	return New(samples.Default(), nil).Run(context.Background(), scenario)
}

// Run executes the scenario's sample and evaluates its assertions.
//
// A scenario naming an unregistered sample is an execution error, not a
// failed result. A sample that fails is recorded in the result and matched
// against any error assertion.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sample, ok := h.registry.Get(scenario.Sample)
	if !ok {
		return nil, fmt.Errorf("scenario %q: %w %q", scenario.Name, ErrUnknownSample, scenario.Sample)
	}

	result := NewResult(scenario.Name, sample.Name)
	out, runErr := sample.Run()
	if runErr == nil {
		result.Output = out
	}

	for _, msg := range EvaluateAssertions(out, runErr, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Info("scenario completed",
		"scenario", scenario.Name,
		"sample", sample.Name,
		"pass", result.Pass,
		"failures", len(result.Errors),
	)
	if runErr != nil {
		h.logger.Debug("sample failed", "sample", sample.Name, "error", runErr)
	}

	return result, nil
}

// RunAll executes scenarios in order. It stops at the first execution
// error; assertion failures do not stop it.
func (h *Harness) RunAll(ctx context.Context, scenarios []*Scenario) ([]*Result, error) {
	results := make([]*Result, 0, len(scenarios))
	for _, s := range scenarios {
		r, err := h.Run(ctx, s)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// RunSample runs a registered sample by name without assertions.
func (h *Harness) RunSample(name string) (value.Value, error) {
	sample, ok := h.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSample, name)
	}
	h.logger.Debug("running sample", "sample", name, "group", sample.Group)
	return sample.Run()
}
