package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencare-au/profileview/internal/alerts"
	"github.com/opencare-au/profileview/internal/render"
)

// NewAlertsCommand creates the alerts command, which derives the alert
// banners from a snapshot file.
func NewAlertsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts <snapshot>",
		Short: "Derive alert banners from a profile snapshot",
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

			list := alerts.Derive(now, data)
			if opts.Format == "json" {
				return out.Success(list)
			}
			if len(list) == 0 {
				return out.SuccessText("No alerts.\n")
			}
			return out.SuccessText(render.Alerts(now, data))
		},
	}
}

// reportLoadErrors prints loader errors and converts them to an ExitError
// with the right exit code: schema findings are validation failures,
// everything else is a command error.
func reportLoadErrors(out *OutputFormatter, errs []error) error {
	code := ExitCommandError
	for _, err := range errs {
		if le, ok := err.(*LoadError); ok {
			if le.Code == ErrCodeSchema {
				code = ExitFailure
			}
			out.Error(le.Code, le.Message, nil)
			continue
		}
		out.Error(ErrCodeGeneric, err.Error(), nil)
	}
	return NewExitError(code, "snapshot load failed")
}
