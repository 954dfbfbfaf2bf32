package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command, which checks a snapshot
// file against the embedded schema without deriving anything.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <snapshot>",
		Short: "Validate a snapshot file against the profile schema",
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

			return out.SuccessText(fmt.Sprintf("OK: snapshot valid (participant %s)\n", data.Participant.NDISNumber))
		},
	}
}
