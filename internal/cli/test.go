package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lazyq/internal/harness"
	"github.com/roach88/lazyq/internal/value"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Golden string // directory of {sample}.golden files
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Sample string   `json:"sample,omitempty"`
	Pass   bool     `json:"pass"`
	Golden string   `json:"golden,omitempty"` // "matched", "mismatch", "updated" or "missing"
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Check samples against scenario files",
		Long: `Run scenario files against the sample queries.

Each scenario names a sample and lists assertions on its output. With
--golden, the text output of each sample is also compared against
<golden-dir>/<sample>.golden when that file exists.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  lazyq test ./scenarios
  lazyq test ./scenarios --filter "single-*"
  lazyq test ./scenarios --golden ./golden --update
  lazyq test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Golden, "golden", "", "directory of golden output files")
	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files (requires --golden)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}
	if opts.Update && opts.Golden == "" {
		return NewExitError(ExitCommandError, "--update requires --golden")
	}

	scenarioFiles, err := findScenarioFiles(scenariosDir, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}

	out := opts.formatter(cmd)
	if len(scenarioFiles) == 0 {
		if opts.Format == "json" {
			return out.Success(TestResult{Scenarios: []ScenarioResult{}})
		}
		return out.Success("No scenarios found.\n")
	}

	h := harness.New(opts.registry(), opts.logger(cmd.ErrOrStderr()))
	result := TestResult{
		Scenarios: make([]ScenarioResult, 0, len(scenarioFiles)),
		Total:     len(scenarioFiles),
	}

	var text strings.Builder
	for _, scenarioFile := range scenarioFiles {
		scenResult, err := runScenario(cmd, h, scenarioFile, opts)
		if err != nil {
			return err
		}
		result.Scenarios = append(result.Scenarios, scenResult)
		writeScenarioText(&text, scenResult)

		if scenResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		if result.Failed > 0 {
			if err := out.Failure(result, CodeTestFailed, fmt.Sprintf("%d scenario(s) failed", result.Failed)); err != nil {
				return err
			}
		} else if err := out.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(&text)
		fmt.Fprintf(&text, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
		if result.Failed == 0 {
			fmt.Fprintln(&text, "✓ All scenarios passed")
		}
		if err := out.Success(text.String()); err != nil {
			return err
		}
	}

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}

// findScenarioFiles finds all YAML scenario files in a directory.
func findScenarioFiles(dir string, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		// Only process .yaml and .yml files
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// runScenario loads and executes one scenario file. Load failures and
// assertion failures become failed results; an unknown sample aborts the run.
func runScenario(cmd *cobra.Command, h *harness.Harness, scenarioFile string, opts *TestOptions) (ScenarioResult, error) {
	scenario, err := harness.LoadScenario(scenarioFile)
	if err != nil {
		return ScenarioResult{
			Name:   filepath.Base(scenarioFile),
			Pass:   false,
			Errors: []string{fmt.Sprintf("failed to load scenario: %v", err)},
		}, nil
	}

	result, err := h.Run(cmd.Context(), scenario)
	if err != nil {
		if errors.Is(err, harness.ErrUnknownSample) {
			return ScenarioResult{}, WrapExitError(ExitCommandError, filepath.Base(scenarioFile), err)
		}
		return ScenarioResult{
			Name:   scenario.Name,
			Sample: scenario.Sample,
			Pass:   false,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}, nil
	}

	sr := ScenarioResult{Name: scenario.Name, Sample: scenario.Sample, Pass: result.Pass, Errors: result.Errors}
	if opts.Golden == "" || result.Output == nil {
		return sr, nil
	}

	status, err := checkGolden(opts, scenario.Sample, result.Output)
	if err != nil {
		sr.Pass = false
		sr.Errors = append(sr.Errors, err.Error())
	}
	sr.Golden = status
	return sr, nil
}

// checkGolden compares or rewrites the golden file of sample and reports
// what it did. A missing golden file is not a failure.
func checkGolden(opts *TestOptions, sample string, out value.Value) (string, error) {
	path := filepath.Join(opts.Golden, sample+".golden")
	current := []byte(value.Text(out))

	if opts.Update {
		if err := os.MkdirAll(opts.Golden, 0o755); err != nil {
			return "", fmt.Errorf("failed to create golden directory: %w", err)
		}
		if err := os.WriteFile(path, current, 0o644); err != nil {
			return "", fmt.Errorf("failed to update golden file: %w", err)
		}
		return "updated", nil
	}

	golden, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "missing", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read golden file: %w", err)
	}
	if !bytes.Equal(golden, current) {
		return "mismatch", fmt.Errorf("output does not match golden file %s (run with --update to regenerate)", path)
	}
	return "matched", nil
}

func writeScenarioText(w *strings.Builder, r ScenarioResult) {
	mark := "✓"
	if !r.Pass {
		mark = "✗"
	}
	if r.Golden == "updated" {
		fmt.Fprintf(w, "%s %s (golden updated)\n", mark, r.Name)
	} else {
		fmt.Fprintf(w, "%s %s\n", mark, r.Name)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
}
