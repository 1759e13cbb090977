package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamdanyasser/hotelref/internal/seed"
	"github.com/hamdanyasser/hotelref/internal/store"
	"github.com/hamdanyasser/hotelref/internal/testutil"
	"github.com/hamdanyasser/hotelref/internal/worker"
)

type fixture struct {
	ctl      *Controller
	renderer *testutil.RecordingRenderer
	store    *store.Store
}

// newFixture builds store -> worker -> controller, seeds, and loads.
func newFixture(t *testing.T, tokens ...string) fixture {
	t.Helper()
	ctx := context.Background()

	s := testutil.OpenStore(t)
	w := worker.New(s, worker.WithLogger(testutil.DiscardLogger()))
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(context.Background())
	}()
	t.Cleanup(func() {
		w.Stop()
		<-done
	})

	loader, err := seed.New(w, seed.WithLogger(testutil.DiscardLogger()))
	require.NoError(t, err)
	_, err = loader.Run(ctx)
	require.NoError(t, err)

	r := &testutil.RecordingRenderer{}
	opts := []Option{WithRenderer(r), WithLogger(testutil.DiscardLogger())}
	if len(tokens) > 0 {
		opts = append(opts, WithTokenGenerator(worker.NewFixedGenerator(tokens...)))
	}
	ctl := New(w, opts...)
	require.NoError(t, ctl.Load(ctx))

	return fixture{ctl: ctl, renderer: r, store: s}
}
