package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lazyq/internal/samples"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Group string
}

// SampleInfo describes one registered sample.
type SampleInfo struct {
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sample queries",
		Long: `List every registered sample query, grouped by the operator family it shows.

Examples:
  lazyq list
  lazyq list --group join
  lazyq list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Group, "group", "", "only list samples in this group")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	groups, err := selectGroups(opts.Group)
	if err != nil {
		return err
	}

	reg := opts.registry()
	var infos []SampleInfo
	for _, g := range groups {
		for _, s := range reg.InGroup(g) {
			infos = append(infos, SampleInfo{Name: s.Name, Group: string(s.Group), Description: s.Description})
		}
	}

	out := opts.formatter(cmd)
	if opts.Format == "json" {
		if infos == nil {
			infos = []SampleInfo{}
		}
		return out.Success(infos)
	}

	var b strings.Builder
	current := ""
	for _, info := range infos {
		if info.Group != current {
			if current != "" {
				b.WriteByte('\n')
			}
			current = info.Group
			fmt.Fprintf(&b, "%s:\n", current)
		}
		fmt.Fprintf(&b, "  %-40s %s\n", info.Name, info.Description)
	}
	return out.Success(b.String())
}

// selectGroups returns every group, or just the named one.
func selectGroups(name string) ([]samples.Group, error) {
	if name == "" {
		return samples.Groups, nil
	}
	for _, g := range samples.Groups {
		if string(g) == name {
			return []samples.Group{g}, nil
		}
	}
	return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown group %q: must be one of %v", name, samples.Groups))
}
