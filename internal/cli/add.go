package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hamdanyasser/hotelref/internal/hotel"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Hotel hotel.Hotel
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a hotel",
		Long: `Add a hotel. The new record gets the next id and the default image.

Example:
  hotelref add --name "Zenith Suites" --location "Raouche, Beirut"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, openWithSeed, func(ctx context.Context, a *app) error {
				return addHotel(ctx, a, opts.Hotel)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Hotel.Name, "name", "", "hotel name (required)")
	f.StringVar(&opts.Hotel.Phone, "phone", "", "phone number")
	f.StringVar(&opts.Hotel.Website, "website", "", "website")
	f.StringVar(&opts.Hotel.Location, "location", "", "address or place name")
	f.StringVar(&opts.Hotel.Nearby, "nearby", "", "nearby places")
	f.StringVar(&opts.Hotel.Food, "food", "", "food on offer")
	f.Int64Var(&opts.Hotel.ImageRef, "image", 0, "image reference (default image when 0)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// addHotel runs the add hand-off: the flags play the add screen, which
// confirms its draft, and the controller persists it on acceptance.
func addHotel(ctx context.Context, a *app, draft hotel.Hotel) error {
	sess := a.ctl.BeginAdd()
	sess.Confirm(draft)

	out, err := a.ctl.AwaitAdd(ctx, sess)
	if err != nil {
		return a.out.Fail("add failed", err)
	}
	return a.out.Success(addedResult{ID: out.ID, Position: out.Position, Name: draft.Name})
}
