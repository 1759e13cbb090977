package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/hamdanyasser/hotelref/internal/detail"
	"github.com/hamdanyasser/hotelref/internal/hotel"
)

// hotelList renders as an aligned table.
type hotelList []hotel.Hotel

func (l hotelList) RenderText(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No hotels.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION")
	for _, h := range l {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", h.ID, h.Name, h.Location)
	}
	return tw.Flush()
}

// hotelDetail is the show view: every field plus the launchable targets.
type hotelDetail struct {
	Hotel   hotel.Hotel     `json:"hotel"`
	Actions []detail.Action `json:"actions"`
}

func newHotelDetail(s hotel.Snapshot) hotelDetail {
	v := detail.FromSnapshot(s)
	actions := v.Actions()
	if actions == nil {
		actions = []detail.Action{}
	}
	return hotelDetail{Hotel: s.Hotel(), Actions: actions}
}

func (d hotelDetail) RenderText(w io.Writer) error {
	title := color.New(color.Bold)
	label := color.New(color.FgCyan)

	title.Fprintf(w, "%s\n", d.Hotel.Name)
	rows := []struct{ k, v string }{
		{"ID", fmt.Sprint(d.Hotel.ID)},
		{"Phone", d.Hotel.Phone},
		{"Website", d.Hotel.Website},
		{"Location", d.Hotel.Location},
		{"Nearby", d.Hotel.Nearby},
		{"Food", d.Hotel.Food},
	}
	for _, r := range rows {
		label.Fprintf(w, "%-9s", r.k)
		fmt.Fprintf(w, " %s\n", r.v)
	}
	if len(d.Actions) > 0 {
		fmt.Fprintln(w)
		for _, a := range d.Actions {
			label.Fprintf(w, "%-9s", a.Kind)
			fmt.Fprintf(w, " %s\n", a.Target)
		}
	}
	return nil
}

// countResult is the count payload.
type countResult struct {
	Count int `json:"count"`
}

func (c countResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.Count)
	return err
}

// addedResult reports an accepted add.
type addedResult struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	Name     string `json:"name"`
}

func (a addedResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Added %q as #%d (position %d)\n", a.Name, a.ID, a.Position)
	return err
}

// seedResult reports what seeding did.
type seedResult struct {
	Seeded   bool `json:"seeded"`
	Inserted int  `json:"inserted"`
}

func (s seedResult) RenderText(w io.Writer) error {
	if !s.Seeded {
		_, err := fmt.Fprintln(w, "Catalog not empty, nothing seeded.")
		return err
	}
	_, err := fmt.Fprintf(w, "Seeded %d hotels.\n", s.Inserted)
	return err
}

// message is a one-line confirmation.
type message struct {
	Message string `json:"message"`
}

func (m message) RenderText(w io.Writer) error {
	_, err := fmt.Fprintln(w, m.Message)
	return err
}
