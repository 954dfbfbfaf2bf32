package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencare-au/profileview/internal/fixture"
	"github.com/opencare-au/profileview/internal/render"
)

// NewDemoCommand creates the demo command, which renders a generated
// sample snapshot. Useful for eyeballing output without a real data feed.
func NewDemoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render a generated sample profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: os.Stderr,
				Verbose:   opts.Verbose,
			}

			clock, err := opts.Clock()
			if err != nil {
				return WrapExitError(ExitCommandError, "resolving reference time", err)
			}
			now := clock.Now()

			data := fixture.Sample(now, fixture.UUIDGenerator{})
			return out.SuccessText(render.Summary(now, data))
		},
	}
}
