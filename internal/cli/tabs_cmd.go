package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencare-au/profileview/internal/tabs"
)

// NewTabsCommand creates the tabs command, which computes the navigation
// badge counts for a snapshot file.
func NewTabsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tabs <snapshot>",
		Short: "Compute tab badge counts from a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: os.Stderr,
				Verbose:   opts.Verbose,
			}

			data, errs := LoadSnapshot(args[0])
			if len(errs) > 0 {
				return reportLoadErrors(out, errs)
			}

			counts := tabs.Counts(data)
			if opts.Format == "json" {
				return out.Success(counts)
			}

			var b strings.Builder
			for _, tab := range tabs.All {
				if n, ok := counts[tab]; ok {
					fmt.Fprintf(&b, "%-14s %d\n", tab, n)
					continue
				}
				fmt.Fprintf(&b, "%-14s -\n", tab)
			}
			return out.SuccessText(b.String())
		},
	}
}
