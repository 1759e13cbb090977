package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/schema"
)

func count(t *testing.T, f fixture) int {
	t.Helper()
	n, err := f.store.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestAcceptAdd_ZenithSortsLast(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess := f.ctl.BeginAdd()
	require.True(t, sess.Confirm(hotel.Hotel{Name: "Zenith Suites", Location: "Top Floor"}))

	out, err := f.ctl.AcceptAdd(ctx, <-sess.Result())
	require.NoError(t, err)

	assert.True(t, out.Added())
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, 6, out.Position)
	assert.Equal(t, 7, f.ctl.Len())
	assert.Equal(t, "Zenith Suites", f.ctl.Items()[6].Name)
	assert.Equal(t, []int{6}, f.renderer.Scrolls())
	assert.Equal(t, 1, f.renderer.Invalidations())
}

func TestAcceptAdd_ScrollsToNewRecordNotLastIndex(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess := f.ctl.BeginAdd()
	sess.Confirm(hotel.Hotel{Name: "Aardvark Lodge"})

	out, err := f.ctl.AcceptAdd(ctx, <-sess.Result())
	require.NoError(t, err)

	assert.Equal(t, 0, out.Position)
	assert.Equal(t, 0, f.renderer.LastScroll())
	assert.NotEqual(t, f.ctl.Len()-1, f.renderer.LastScroll())

	snap, err := f.ctl.Select(out.Position)
	require.NoError(t, err)
	assert.Equal(t, out.ID, snap.ID())
}

func TestAcceptAdd_MiddlePosition(t *testing.T) {
	f := newFixture(t)

	sess := f.ctl.BeginAdd()
	sess.Confirm(hotel.Hotel{Name: "harbor view"})

	out, err := f.ctl.AcceptAdd(context.Background(), <-sess.Result())
	require.NoError(t, err)

	// Case-insensitive: "harbor view" sorts between Grand Plaza and Luxury Inn.
	assert.Equal(t, 3, out.Position)
}

func TestAcceptAdd_StampsDefaultImageAndDropsID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess := f.ctl.BeginAdd()
	sess.Confirm(hotel.Hotel{ID: 42, Name: "Zenith Suites"})

	out, err := f.ctl.AcceptAdd(ctx, <-sess.Result())
	require.NoError(t, err)
	assert.NotEqual(t, int64(42), out.ID)

	snap, ok, err := f.ctl.Lookup(ctx, out.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, hotel.DefaultImageRef, snap.ImageRef())
}

func TestAcceptAdd_Cancelled(t *testing.T) {
	f := newFixture(t)

	sess := f.ctl.BeginAdd()
	require.True(t, sess.Cancel())

	out, err := f.ctl.AcceptAdd(context.Background(), <-sess.Result())
	require.NoError(t, err)
	assert.False(t, out.Added())
	assert.Equal(t, 6, count(t, f))
	assert.Equal(t, 0, f.renderer.Invalidations())
	assert.Empty(t, f.renderer.Scrolls())
}

func TestAcceptAdd_MissingResult(t *testing.T) {
	f := newFixture(t)

	out, err := f.ctl.AcceptAdd(context.Background(), AddResult{})
	require.NoError(t, err)
	assert.False(t, out.Added())
	assert.Equal(t, 6, count(t, f))
	assert.Equal(t, 0, f.renderer.Invalidations())
}

func TestAcceptAdd_AtMostOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess := f.ctl.BeginAdd()
	sess.Confirm(hotel.Hotel{Name: "Zenith Suites"})
	r := <-sess.Result()

	_, err := f.ctl.AcceptAdd(ctx, r)
	require.NoError(t, err)

	_, err = f.ctl.AcceptAdd(ctx, r)
	assert.ErrorIs(t, err, ErrUnknownSession)
	assert.Equal(t, 7, count(t, f))
}

func TestAcceptAdd_ForeignToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.ctl.AcceptAdd(context.Background(), AddResult{
		Token:  "not-ours",
		Status: AddConfirmed,
		Draft:  hotel.Hotel{Name: "Intruder"},
	})
	assert.ErrorIs(t, err, ErrUnknownSession)
	assert.Equal(t, 6, count(t, f))
}

func TestAcceptAdd_InvalidDraft(t *testing.T) {
	f := newFixture(t)

	sess := f.ctl.BeginAdd()
	sess.Confirm(hotel.Hotel{Phone: "555"})

	_, err := f.ctl.AcceptAdd(context.Background(), <-sess.Result())
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, 6, count(t, f))
	assert.Equal(t, 0, f.renderer.Invalidations())
}

func TestAddSession_FirstResultWins(t *testing.T) {
	f := newFixture(t, "tok-1")

	sess := f.ctl.BeginAdd()
	assert.Equal(t, "tok-1", sess.Token())

	assert.True(t, sess.Confirm(hotel.Hotel{Name: "First"}))
	assert.False(t, sess.Cancel())
	assert.False(t, sess.Confirm(hotel.Hotel{Name: "Second"}))

	r := <-sess.Result()
	assert.Equal(t, AddConfirmed, r.Status)
	assert.Equal(t, "First", r.Draft.Name)
	assert.Equal(t, "tok-1", r.Token)
}

func TestAwaitAdd(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess := f.ctl.BeginAdd()
	go func() {
		time.Sleep(10 * time.Millisecond)
		sess.Confirm(hotel.Hotel{Name: "Zenith Suites"})
	}()

	out, err := f.ctl.AwaitAdd(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Position)
	assert.Equal(t, 7, count(t, f))
}

func TestAwaitAdd_ContextCancelled(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sess := f.ctl.BeginAdd()
	_, err := f.ctl.AwaitAdd(ctx, sess)
	assert.ErrorIs(t, err, context.Canceled)

	// The add context can no longer report, and nothing was written.
	assert.False(t, sess.Confirm(hotel.Hotel{Name: "Too Late"}))
	assert.Equal(t, 6, count(t, f))
	assert.Equal(t, 0, f.renderer.Invalidations())
}

func TestAddStatus_String(t *testing.T) {
	assert.Equal(t, "pending", AddPending.String())
	assert.Equal(t, "confirmed", AddConfirmed.String())
	assert.Equal(t, "cancelled", AddCancelled.String())
}
