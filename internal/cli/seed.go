package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the sample hotels into an empty catalog",
		Long: `Write the six sample hotels if, and only if, the catalog is empty.
Running it again is a no-op.

Example:
  hotelref reset --yes && hotelref seed`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, openWithoutSeed, func(ctx context.Context, a *app) error {
				res, err := a.seed(ctx)
				if err != nil {
					return a.out.Fail("seed failed", err)
				}
				if err := a.ctl.Refresh(ctx); err != nil {
					return a.out.Fail("seed failed", err)
				}
				return a.out.Success(seedResult{Seeded: res.Seeded, Inserted: res.Inserted})
			})
		},
	}
}
