// Package detail turns a record snapshot into the targets a detail view
// hands to the operating system: a dialer URI, a browser URL, and a map
// query. Nothing here launches anything.
package detail

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hamdanyasser/hotelref/internal/hotel"
)

// ErrNoTarget is returned when the field an action needs is empty.
var ErrNoTarget = errors.New("no target for action")

// View is the read-only detail model for one record.
type View struct {
	snap hotel.Snapshot
}

// FromSnapshot builds a View. The view never refers back to any cache.
func FromSnapshot(s hotel.Snapshot) View {
	return View{snap: s}
}

// Snapshot returns the record the view was built from.
func (v View) Snapshot() hotel.Snapshot {
	return v.snap
}

// CallURI returns a tel: URI for the phone number.
func (v View) CallURI() (string, error) {
	phone := strings.TrimSpace(v.snap.Phone())
	if phone == "" {
		return "", fmt.Errorf("call: %w", ErrNoTarget)
	}
	return "tel:" + phone, nil
}

// WebsiteURL returns the website, prefixed with http:// when it carries no
// http or https scheme.
func (v View) WebsiteURL() (string, error) {
	site := strings.TrimSpace(v.snap.Website())
	if site == "" {
		return "", fmt.Errorf("website: %w", ErrNoTarget)
	}
	lower := strings.ToLower(site)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		site = "http://" + site
	}
	return site, nil
}

// MapURI returns a geo: query URI for the location.
func (v View) MapURI() (string, error) {
	q, err := v.mapQuery()
	if err != nil {
		return "", err
	}
	return "geo:0,0?q=" + q, nil
}

// MapFallbackURL returns a web map URL for when no map app handles MapURI.
func (v View) MapFallbackURL() (string, error) {
	q, err := v.mapQuery()
	if err != nil {
		return "", err
	}
	return "https://maps.google.com/?q=" + q, nil
}

func (v View) mapQuery() (string, error) {
	loc := strings.TrimSpace(v.snap.Location())
	if loc == "" {
		return "", fmt.Errorf("map: %w", ErrNoTarget)
	}
	return url.QueryEscape(loc), nil
}

// Actions lists every available target by name, skipping empty ones.
func (v View) Actions() []Action {
	var out []Action
	if uri, err := v.CallURI(); err == nil {
		out = append(out, Action{Kind: "call", Target: uri})
	}
	if uri, err := v.WebsiteURL(); err == nil {
		out = append(out, Action{Kind: "website", Target: uri})
	}
	if uri, err := v.MapURI(); err == nil {
		out = append(out, Action{Kind: "map", Target: uri})
	}
	return out
}

// Action is one launchable target.
type Action struct {
	Kind   string `json:"kind"`
	Target string `json:"target"`
}
