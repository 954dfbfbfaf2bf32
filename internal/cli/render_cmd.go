package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencare-au/profileview/internal/render"
)

// NewRenderCommand creates the render command, which paints the full
// profile summary for a snapshot file.
func NewRenderCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <snapshot>",
		Short: "Render the full profile summary from a snapshot",
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

			clock, err := opts.Clock()
			if err != nil {
				return WrapExitError(ExitCommandError, "resolving reference time", err)
			}
			now := clock.Now()
			out.VerboseLog("reference date: %s", now.Format("2006-01-02"))

			return out.SuccessText(render.Summary(now, data))
		},
	}
}
