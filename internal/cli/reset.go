package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// ResetOptions holds flags for the reset command.
type ResetOptions struct {
	*RootOptions
	Yes bool
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every hotel",
		Long: `Delete every hotel. Ids already handed out are not reused.
The catalog stays empty until the next seed.

Example:
  hotelref reset --yes`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Yes {
				out := newFormatter(cmd, rootOpts)
				return out.Fail("reset refused", NewExitError(ExitCommandError, "pass --yes to delete every hotel"))
			}
			return withApp(cmd, rootOpts, openWithoutSeed, func(ctx context.Context, a *app) error {
				if err := a.ctl.Reset(ctx); err != nil {
					return a.out.Fail("reset failed", err)
				}
				return a.out.Success(message{Message: "Catalog cleared."})
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "confirm deleting every hotel")

	return cmd
}
