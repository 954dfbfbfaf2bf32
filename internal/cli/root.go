// Package cli implements the profileview command tree.
//
// The CLI is the upstream collaborator the derivation core assumes: it
// loads a snapshot file, validates it, resolves the reference time, and
// hands a fully materialized aggregate to the pure packages. The core
// never reads files or samples the wall clock itself.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencare-au/profileview/internal/format"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	At      string // reference date override, "2006-01-02"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the profileview CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "profileview",
		Short: "profileview - participant profile derivation",
		Long:  "Derives alerts, statuses, badge counts and budget figures from a participant profile snapshot.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := opts.Clock(); err != nil {
				return err
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.At, "at", "", "reference date for day arithmetic (YYYY-MM-DD, default today)")

	// Add subcommands
	cmd.AddCommand(NewAlertsCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewTabsCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// fixedClock pins the reference time supplied via --at.
type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

// Clock resolves the reference clock for derivation: the system clock by
// default, or a pinned clock when --at is given.
func (o *RootOptions) Clock() (format.Clock, error) {
	if o.At == "" {
		return format.SystemClock{}, nil
	}
	t, err := time.Parse("2006-01-02", o.At)
	if err != nil {
		return nil, fmt.Errorf("invalid --at date %q: expected YYYY-MM-DD", o.At)
	}
	return fixedClock(t), nil
}
