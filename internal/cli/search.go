package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "List hotels whose name contains text",
		Long: `List hotels whose name contains text, ignoring case.

The text is matched literally, so % and _ have no special meaning.
An empty text matches every hotel.

Example:
  hotelref search resort
  hotelref search ""`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, openWithSeed, func(ctx context.Context, a *app) error {
				found, err := a.ctl.Search(ctx, args[0])
				if err != nil {
					return a.out.Fail("search failed", err)
				}
				return a.out.Success(hotelList(found))
			})
		},
	}
}
