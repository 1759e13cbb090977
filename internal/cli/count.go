package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "count",
		Short:         "Print the number of hotels",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, openWithSeed, func(ctx context.Context, a *app) error {
				n, err := a.worker.Count(ctx)
				if err != nil {
					return a.out.Fail("count failed", err)
				}
				return a.out.Success(countResult{Count: n})
			})
		},
	}
}
