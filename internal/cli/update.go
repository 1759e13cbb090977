package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/schema"
	"github.com/hamdanyasser/hotelref/internal/store"
)

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	Fields hotel.Hotel
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a hotel",
		Long: `Change fields of a hotel. Only the flags given are changed.

Example:
  hotelref update 4 --phone "+961 1 000000"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(newFormatter(cmd, rootOpts), args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, rootOpts, openWithSeed, func(ctx context.Context, a *app) error {
				return updateHotel(ctx, a, id, cmd.Flags(), opts.Fields)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Fields.Name, "name", "", "hotel name")
	f.StringVar(&opts.Fields.Phone, "phone", "", "phone number")
	f.StringVar(&opts.Fields.Website, "website", "", "website")
	f.StringVar(&opts.Fields.Location, "location", "", "address or place name")
	f.StringVar(&opts.Fields.Nearby, "nearby", "", "nearby places")
	f.StringVar(&opts.Fields.Food, "food", "", "food on offer")
	f.Int64Var(&opts.Fields.ImageRef, "image", 0, "image reference")

	return cmd
}

func updateHotel(ctx context.Context, a *app, id int64, flags *pflag.FlagSet, fields hotel.Hotel) error {
	snap, ok, err := a.ctl.Lookup(ctx, id)
	if err != nil {
		return a.out.Fail("update failed", err)
	}
	if !ok {
		return a.out.Fail("update failed", fmt.Errorf("hotel %d: %w", id, store.ErrNotFound))
	}

	h := applyChanged(snap.Hotel(), flags, fields)
	if err := schema.Validate(h); err != nil {
		return a.out.Fail("update failed", err)
	}
	if err := a.ctl.Update(ctx, h); err != nil {
		return a.out.Fail("update failed", err)
	}

	updated, _, err := a.ctl.Lookup(ctx, id)
	if err != nil {
		return a.out.Fail("update failed", err)
	}
	return a.out.Success(newHotelDetail(updated))
}

// applyChanged copies onto h only the fields whose flag was set.
func applyChanged(h hotel.Hotel, flags *pflag.FlagSet, fields hotel.Hotel) hotel.Hotel {
	set := map[string]func(){
		"name":     func() { h.Name = fields.Name },
		"phone":    func() { h.Phone = fields.Phone },
		"website":  func() { h.Website = fields.Website },
		"location": func() { h.Location = fields.Location },
		"nearby":   func() { h.Nearby = fields.Nearby },
		"food":     func() { h.Food = fields.Food },
		"image":    func() { h.ImageRef = fields.ImageRef },
	}
	flags.Visit(func(f *pflag.Flag) {
		if apply, ok := set[f.Name]; ok {
			apply()
		}
	})
	return h
}
