package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lazyq/internal/harness"
	"github.com/roach88/lazyq/internal/samples"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/value"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Group string // run every sample in this group
	All   bool   // run every sample
}

// SampleRun is the outcome of one sample in JSON output.
type SampleRun struct {
	Sample string          `json:"sample"`
	Output json.RawMessage `json:"output,omitempty"`
	Error  *CLIError       `json:"error,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [sample...]",
		Short: "Run sample queries and print their output",
		Long: `Run one or more sample queries and print what they produce.

Samples that fail with an operator error (Single with several matches,
ElementAt past the end) print the error code and make the command exit 1.

Exit codes:
  0 - All samples ran
  1 - One or more samples failed
  2 - Command error (unknown sample or group)

Examples:
  lazyq run left-outer-join
  lazyq run select order-by --format json
  lazyq run --group element
  lazyq run --all`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSamples(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Group, "group", "", "run every sample in this group")
	cmd.Flags().BoolVar(&opts.All, "all", false, "run every sample")

	return cmd
}

func runSamples(opts *RunOptions, names []string, cmd *cobra.Command) error {
	reg := opts.registry()

	names, err := resolveSampleNames(reg, opts, names)
	if err != nil {
		return err
	}

	logger := opts.logger(cmd.ErrOrStderr())
	h := harness.New(reg, logger)
	out := opts.formatter(cmd)

	var (
		runs   = make([]SampleRun, 0, len(names))
		text   strings.Builder
		failed int
	)
	for _, name := range names {
		v, runErr := h.RunSample(name)
		if errors.Is(runErr, harness.ErrUnknownSample) {
			return WrapExitError(ExitCommandError, "cannot run sample", runErr)
		}

		if len(names) > 1 {
			fmt.Fprintf(&text, "# %s\n", name)
		}
		run := SampleRun{Sample: name}
		if runErr != nil {
			failed++
			run.Error = &CLIError{Code: errorCode(runErr), Message: runErr.Error()}
			fmt.Fprintf(&text, "Error [%s]: %s\n", run.Error.Code, run.Error.Message)
			logger.Debug("sample failed", "sample", name, "error", runErr)
		} else {
			raw, err := value.MarshalCanonical(v)
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("cannot render sample %s", name), err)
			}
			run.Output = raw
			text.WriteString(value.Text(v))
		}
		runs = append(runs, run)
	}

	if opts.Format == "json" {
		var err error
		if failed > 0 {
			err = out.Failure(runs, CodeSampleFailed, fmt.Sprintf("%d sample(s) failed", failed))
		} else {
			err = out.Success(runs)
		}
		if err != nil {
			return err
		}
	} else if err := out.Success(text.String()); err != nil {
		return err
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d sample(s) failed", failed))
	}
	return nil
}

// resolveSampleNames picks the samples to run from the arguments and flags.
func resolveSampleNames(reg *samples.Registry, opts *RunOptions, names []string) ([]string, error) {
	switch {
	case opts.All && (opts.Group != "" || len(names) > 0):
		return nil, NewExitError(ExitCommandError, "--all cannot be combined with --group or sample names")
	case opts.All:
		var all []string
		for _, s := range reg.All() {
			all = append(all, s.Name)
		}
		return all, nil
	case opts.Group != "":
		if len(names) > 0 {
			return nil, NewExitError(ExitCommandError, "--group cannot be combined with sample names")
		}
		groups, err := selectGroups(opts.Group)
		if err != nil {
			return nil, err
		}
		var inGroup []string
		for _, s := range reg.InGroup(groups[0]) {
			inGroup = append(inGroup, s.Name)
		}
		return inGroup, nil
	case len(names) == 0:
		return nil, NewExitError(ExitCommandError, "no samples named: pass sample names, --group or --all")
	}

	for _, name := range names {
		if _, ok := reg.Get(name); !ok {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown sample %q (see lazyq list)", name))
		}
	}
	return names, nil
}

// errorCode is the operator error code of err, or a generic failure code.
func errorCode(err error) string {
	if code := seq.CodeOf(err); code != "" {
		return string(code)
	}
	return CodeSampleFailed
}
