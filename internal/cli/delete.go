package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one hotel",
		Long: `Delete the hotel with the given id. Its id is never handed out again.

Example:
  hotelref delete 7`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(newFormatter(cmd, rootOpts), args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, rootOpts, openWithSeed, func(ctx context.Context, a *app) error {
				if err := a.ctl.Delete(ctx, id); err != nil {
					return a.out.Fail("delete failed", err)
				}
				return a.out.Success(message{Message: fmt.Sprintf("Deleted hotel %d.", id)})
			})
		},
	}
}
