package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/store"
	"github.com/hamdanyasser/hotelref/internal/worker"
)

// Outcome describes an accepted add. ID is zero when nothing was added.
type Outcome struct {
	ID       int64
	Position int
}

// Added reports whether a record was inserted.
func (o Outcome) Added() bool {
	return o.ID != 0
}

// Controller maintains the ordered list cache.
//
// Thread-safety: all methods are safe for concurrent use. Loads are
// serialized, and the cache is swapped in one step after a load succeeds,
// so readers never observe a half-built list.
type Controller struct {
	access   store.Access
	renderer Renderer
	tokens   worker.IDGenerator
	logger   *slog.Logger

	loadMu sync.Mutex

	mu       sync.RWMutex
	items    []hotel.Hotel
	sessions map[string]struct{}
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the renderer signalled on refresh. Default NopRenderer.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithTokenGenerator sets the add-session token generator.
func WithTokenGenerator(g worker.IDGenerator) Option {
	return func(c *Controller) {
		c.tokens = g
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Controller with an empty cache. Call Load before reading.
func New(access store.Access, opts ...Option) *Controller {
	c := &Controller{
		access:   access,
		renderer: NopRenderer{},
		tokens:   worker.UUIDv7Generator{},
		logger:   slog.Default(),
		items:    []hotel.Hotel{},
		sessions: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "catalog")
	return c
}

// Load replaces the cache with every record in store order. On failure the
// previous cache is kept.
func (c *Controller) Load(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	all, err := c.access.All(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	c.mu.Lock()
	c.items = all
	c.mu.Unlock()

	c.logger.Debug("catalog loaded", "count", len(all))
	return nil
}

// Refresh loads and then invalidates the renderer.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.Load(ctx); err != nil {
		return err
	}
	c.renderer.Invalidate()
	return nil
}

// Items returns a copy of the cache.
func (c *Controller) Items() []hotel.Hotel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]hotel.Hotel{}, c.items...)
}

// Len returns the number of cached records.
func (c *Controller) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// IndexOf returns the cache position of id, or -1.
func (c *Controller) IndexOf(id int64) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i, h := range c.items {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// Select returns a snapshot of the record at pos for a detail context.
func (c *Controller) Select(pos int) (hotel.Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if pos < 0 || pos >= len(c.items) {
		return hotel.Snapshot{}, fmt.Errorf("select %d of %d: %w", pos, len(c.items), ErrOutOfRange)
	}
	return hotel.SnapshotOf(c.items[pos]), nil
}

// Lookup reads one record straight from the store, for deep links that do
// not start from a list position.
func (c *Controller) Lookup(ctx context.Context, id int64) (hotel.Snapshot, bool, error) {
	h, ok, err := c.access.Get(ctx, id)
	if err != nil || !ok {
		return hotel.Snapshot{}, false, err
	}
	return hotel.SnapshotOf(h), true, nil
}

// Search returns the records whose name contains q, in list order.
// The cache is not touched.
func (c *Controller) Search(ctx context.Context, q string) ([]hotel.Hotel, error) {
	return c.access.SearchByName(ctx, q)
}

// Update writes h and refreshes.
func (c *Controller) Update(ctx context.Context, h hotel.Hotel) error {
	if err := c.access.Update(ctx, h); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Delete removes the record with id and refreshes.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.access.Delete(ctx, hotel.Hotel{ID: id}); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Reset clears the store and refreshes.
func (c *Controller) Reset(ctx context.Context) error {
	if err := c.access.DeleteAll(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}
