package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamdanyasser/hotelref/internal/store"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one hotel and its call, website and map targets",
		Long: `Show every field of one hotel, plus the tel:, http and geo: targets a
detail screen would open.

Example:
  hotelref show 3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(newFormatter(cmd, rootOpts), args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, rootOpts, openWithSeed, func(ctx context.Context, a *app) error {
				snap, ok, err := a.ctl.Lookup(ctx, id)
				if err != nil {
					return a.out.Fail("lookup failed", err)
				}
				if !ok {
					return a.out.Fail("lookup failed", fmt.Errorf("hotel %d: %w", id, store.ErrNotFound))
				}
				return a.out.Success(newHotelDetail(snap))
			})
		},
	}
}
