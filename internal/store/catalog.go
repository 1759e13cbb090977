package store

import (
	"context"
	"log/slog"
	"sync"
)

// Catalog owns the single live *Store for a process.
//
// Thread-safety: Acquire and Release may be called from any goroutine.
// Construction happens under the mutex, so concurrent first callers block
// until the one performing Open finishes and then all see the same handle.
// A failed Open is not cached; the next Acquire tries again.
type Catalog struct {
	path string
	opts []Option
	open func(string, ...Option) (*Store, error)

	mu       sync.Mutex
	store    *Store
	released bool
}

// NewCatalog creates a Catalog for the database at path. Nothing is opened
// until the first Acquire.
func NewCatalog(path string, opts ...Option) *Catalog {
	return &Catalog{
		path: path,
		opts: opts,
		open: Open,
	}
}

// Acquire returns the live store, opening it on first call.
// Returns ErrReleased once Release has been called.
func (c *Catalog) Acquire(ctx context.Context) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.released {
		return nil, ErrReleased
	}
	if c.store != nil {
		return c.store, nil
	}

	s, err := c.open(c.path, c.opts...)
	if err != nil {
		return nil, err
	}
	c.store = s
	return s, nil
}

// Release closes the store and forgets it. It must only run at shutdown:
// any *Store obtained earlier is closed too. Calling it again is a no-op.
func (c *Catalog) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.released {
		return nil
	}
	c.released = true

	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	if err != nil {
		slog.Error("error closing catalog store", "path", c.path, "error", err)
	}
	return err
}
