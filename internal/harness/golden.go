package harness

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/lazyq/internal/samples"
	"github.com/roach88/lazyq/internal/value"
)

// RunWithGolden runs the named sample and compares its text rendering
// against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the sample is unknown or fails.
// Test failure (via goldie) occurs if the output doesn't match the golden file.
func RunWithGolden(t *testing.T, registry *samples.Registry, name string) error {
	t.Helper()

	sample, ok := registry.Get(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownSample, name)
	}
	out, err := sample.Run()
	if err != nil {
		return err
	}

	AssertGolden(t, name, out)
	return nil
}

// AssertGolden compares the text rendering of v against a golden file.
func AssertGolden(t *testing.T, name string, v value.Value) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(value.Text(v)))
}
