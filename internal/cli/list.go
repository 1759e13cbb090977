package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every hotel in name order",
		Long: `List every hotel, ordered by name ignoring case.

Example:
  hotelref list
  hotelref list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, openWithSeed, func(_ context.Context, a *app) error {
				return a.out.Success(hotelList(a.ctl.Items()))
			})
		},
	}
}
