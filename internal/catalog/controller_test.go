package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/store"
	"github.com/hamdanyasser/hotelref/internal/testutil"
)

var seededOrder = []string{
	"Beach Resort Hotel",
	"City Center Hotel",
	"Grand Plaza Hotel",
	"Luxury Inn",
	"Mountain View Hotel",
	"Seaside Resort",
}

func TestLoad_SeededOrder(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, seededOrder, testutil.Names(f.ctl.Items()))
	assert.Equal(t, 6, f.ctl.Len())
	assert.Equal(t, 0, f.renderer.Invalidations(), "Load does not signal the renderer")
}

func TestLoad_EmptyStore(t *testing.T) {
	ctl := New(testutil.OpenStore(t), WithLogger(testutil.DiscardLogger()))
	require.NoError(t, ctl.Load(context.Background()))

	assert.NotNil(t, ctl.Items())
	assert.Empty(t, ctl.Items())
}

func TestLoad_FailureKeepsPreviousCache(t *testing.T) {
	s := testutil.OpenStore(t)
	ctx := context.Background()
	_, err := s.Insert(ctx, hotel.Hotel{Name: "Kept"})
	require.NoError(t, err)

	ctl := New(s, WithLogger(testutil.DiscardLogger()))
	require.NoError(t, ctl.Load(ctx))

	require.NoError(t, s.Close())
	err = ctl.Load(ctx)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.Equal(t, []string{"Kept"}, testutil.Names(ctl.Items()))
}

func TestRefresh_Invalidates(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.ctl.Refresh(context.Background()))
	assert.Equal(t, 1, f.renderer.Invalidations())
}

func TestItems_ReturnsCopy(t *testing.T) {
	f := newFixture(t)

	items := f.ctl.Items()
	items[0].Name = "Mutated"

	assert.Equal(t, "Beach Resort Hotel", f.ctl.Items()[0].Name)
}

func TestIndexOf(t *testing.T) {
	f := newFixture(t)

	// Grand Plaza is the first sample, id 1, and sorts third.
	assert.Equal(t, 2, f.ctl.IndexOf(1))
	assert.Equal(t, -1, f.ctl.IndexOf(999))
}

func TestSelect(t *testing.T) {
	f := newFixture(t)

	snap, err := f.ctl.Select(0)
	require.NoError(t, err)
	assert.Equal(t, "Beach Resort Hotel", snap.Name())
	assert.Equal(t, int64(6), snap.ID())
	assert.Equal(t, hotel.DefaultImageRef, snap.ImageRef())

	tests := []struct {
		name string
		pos  int
	}{
		{"negative", -1},
		{"past end", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ctl.Select(tt.pos)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestSelect_SnapshotIsDetachedFromCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	snap, err := f.ctl.Select(0)
	require.NoError(t, err)

	h := snap.Hotel()
	h.Phone = "000"
	require.NoError(t, f.ctl.Update(ctx, h))

	assert.Equal(t, "+961 1 678901", snap.Phone(), "snapshot keeps the value it was taken with")
	assert.Equal(t, "000", f.ctl.Items()[0].Phone)
}

func TestLookup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	snap, ok, err := f.ctl.Lookup(ctx, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Mountain View Hotel", snap.Name())

	_, ok, err = f.ctl.Lookup(ctx, 404)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	f := newFixture(t)

	got, err := f.ctl.Search(context.Background(), "HOTEL")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Beach Resort Hotel",
		"City Center Hotel",
		"Grand Plaza Hotel",
		"Mountain View Hotel",
	}, testutil.Names(got))

	all, err := f.ctl.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, f.ctl.Items(), all)
}

func TestUpdate_ReordersAndInvalidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	snap, err := f.ctl.Select(0)
	require.NoError(t, err)
	h := snap.Hotel()
	h.Name = "Zz Renamed"
	require.NoError(t, f.ctl.Update(ctx, h))

	items := f.ctl.Items()
	assert.Equal(t, "Zz Renamed", items[len(items)-1].Name)
	assert.Equal(t, 1, f.renderer.Invalidations())
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.ctl.Delete(ctx, 6))
	assert.Equal(t, seededOrder[1:], testutil.Names(f.ctl.Items()))

	err := f.ctl.Delete(ctx, 6)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, 1, f.renderer.Invalidations(), "failed delete does not refresh")
}

func TestReset(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.ctl.Reset(context.Background()))
	assert.Equal(t, 0, f.ctl.Len())
	assert.Equal(t, 1, f.renderer.Invalidations())
}
