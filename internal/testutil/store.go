package testutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/store"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenStore opens a fresh store in t.TempDir and closes it on cleanup.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "hotels.db"), store.WithLogger(DiscardLogger()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// Names extracts record names in order.
func Names(hotels []hotel.Hotel) []string {
	out := make([]string, len(hotels))
	for i, h := range hotels {
		out[i] = h.Name
	}
	return out
}

// FailingAccess wraps an Access and makes Insert fail with Err once
// FailInsertAfter inserts have succeeded. Every other call passes through.
type FailingAccess struct {
	store.Access

	FailInsertAfter int
	Err             error

	mu       sync.Mutex
	inserted int
}

// Insert implements store.Access.
func (f *FailingAccess) Insert(ctx context.Context, h hotel.Hotel) (int64, error) {
	f.mu.Lock()
	if f.inserted >= f.FailInsertAfter {
		f.mu.Unlock()
		return 0, f.Err
	}
	f.inserted++
	f.mu.Unlock()

	return f.Access.Insert(ctx, h)
}
