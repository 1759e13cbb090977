package worker

import (
	"context"

	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/store"
)

var _ store.Access = (*Worker)(nil)

// Insert implements store.Access. It returns once the row is written.
func (w *Worker) Insert(ctx context.Context, h hotel.Hotel) (int64, error) {
	return await(ctx, Submit(ctx, w, "insert", func(ctx context.Context, a store.Access) (int64, error) {
		return a.Insert(ctx, h)
	}))
}

// Update implements store.Access.
func (w *Worker) Update(ctx context.Context, h hotel.Hotel) error {
	_, err := await(ctx, Submit(ctx, w, "update", func(ctx context.Context, a store.Access) (struct{}, error) {
		return struct{}{}, a.Update(ctx, h)
	}))
	return err
}

// Delete implements store.Access.
func (w *Worker) Delete(ctx context.Context, h hotel.Hotel) error {
	_, err := await(ctx, Submit(ctx, w, "delete", func(ctx context.Context, a store.Access) (struct{}, error) {
		return struct{}{}, a.Delete(ctx, h)
	}))
	return err
}

// All implements store.Access.
func (w *Worker) All(ctx context.Context) ([]hotel.Hotel, error) {
	return await(ctx, Submit(ctx, w, "all", func(ctx context.Context, a store.Access) ([]hotel.Hotel, error) {
		return a.All(ctx)
	}))
}

type getResult struct {
	h  hotel.Hotel
	ok bool
}

// Get implements store.Access.
func (w *Worker) Get(ctx context.Context, id int64) (hotel.Hotel, bool, error) {
	r, err := await(ctx, Submit(ctx, w, "get", func(ctx context.Context, a store.Access) (getResult, error) {
		h, ok, err := a.Get(ctx, id)
		return getResult{h: h, ok: ok}, err
	}))
	return r.h, r.ok, err
}

// SearchByName implements store.Access.
func (w *Worker) SearchByName(ctx context.Context, substr string) ([]hotel.Hotel, error) {
	return await(ctx, Submit(ctx, w, "search", func(ctx context.Context, a store.Access) ([]hotel.Hotel, error) {
		return a.SearchByName(ctx, substr)
	}))
}

// Count implements store.Access.
func (w *Worker) Count(ctx context.Context) (int, error) {
	return await(ctx, Submit(ctx, w, "count", func(ctx context.Context, a store.Access) (int, error) {
		return a.Count(ctx)
	}))
}

// DeleteAll implements store.Access.
func (w *Worker) DeleteAll(ctx context.Context) error {
	_, err := await(ctx, Submit(ctx, w, "delete all", func(ctx context.Context, a store.Access) (struct{}, error) {
		return struct{}{}, a.DeleteAll(ctx)
	}))
	return err
}
