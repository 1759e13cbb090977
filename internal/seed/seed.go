// Package seed populates an empty catalog with the sample hotels.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/schema"
	"github.com/hamdanyasser/hotelref/internal/store"
)

// Result describes what a seeding run did.
type Result struct {
	Seeded   bool // true if the catalog was empty and samples were written
	Inserted int
}

// PartialError is returned when seeding stops part-way. The rows written
// before the failure stay in the store, and because Count is then non-zero
// a later run will not retry.
type PartialError struct {
	Inserted int
	Total    int
	Err      error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("seeding stopped after %d of %d records: %v", e.Inserted, e.Total, e.Err)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

// Loader writes samples through Access when, and only when, the catalog is
// empty. It must run after the store handle is fully constructed; it is not
// safe to run two loaders against the same empty store at once.
type Loader struct {
	access  store.Access
	samples []hotel.Hotel
	logger  *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithSamples replaces the schema's sample catalog.
func WithSamples(samples []hotel.Hotel) Option {
	return func(l *Loader) {
		l.samples = samples
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Loader. Without WithSamples it loads schema.Samples().
func New(access store.Access, opts ...Option) (*Loader, error) {
	l := &Loader{access: access, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("component", "seed")

	if l.samples == nil {
		samples, err := schema.Samples()
		if err != nil {
			return nil, fmt.Errorf("load sample catalog: %w", err)
		}
		l.samples = samples
	}
	return l, nil
}

// Run seeds the catalog if it is empty. A non-empty catalog is left alone,
// which makes repeated runs idempotent.
func (l *Loader) Run(ctx context.Context) (Result, error) {
	n, err := l.access.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("seed: count: %w", err)
	}
	if n > 0 {
		l.logger.Debug("catalog not empty, skipping seed", "count", n)
		return Result{}, nil
	}

	res := Result{Seeded: true}
	for _, h := range l.samples {
		if _, err := l.access.Insert(ctx, h.Draft()); err != nil {
			perr := &PartialError{Inserted: res.Inserted, Total: len(l.samples), Err: err}
			l.logger.Error("seeding failed part-way",
				"inserted", res.Inserted,
				"total", len(l.samples),
				"failed_name", h.Name,
				"error", err,
			)
			return res, perr
		}
		res.Inserted++
	}

	l.logger.Info("catalog seeded", "inserted", res.Inserted)
	return res, nil
}
