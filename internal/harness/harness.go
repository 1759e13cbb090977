package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/hamdanyasser/hotelref/internal/catalog"
	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/schema"
	"github.com/hamdanyasser/hotelref/internal/seed"
	"github.com/hamdanyasser/hotelref/internal/store"
	"github.com/hamdanyasser/hotelref/internal/testutil"
	"github.com/hamdanyasser/hotelref/internal/worker"
)

// Harness holds the object graph one scenario runs against.
type Harness struct {
	store    *store.Store
	worker   *worker.Worker
	ctl      *catalog.Controller
	renderer *testutil.RecordingRenderer
	logger   *slog.Logger
}

// outcome is what one step produced, for expectations and the trace.
type outcome struct {
	id       int64
	position int
	count    int
	found    bool
	names    []string
	err      error
	text     string
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
// Step and assertion failures are reported in Result; the returned error
// is reserved for failures to set the run up.
func Run(scenario *Scenario) (*Result, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in tests

	st, err := store.Open(":memory:", store.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	w := worker.New(st,
		worker.WithLogger(logger),
		worker.WithIDGenerator(sequentialIDs("job")),
	)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = w.Run(ctx)
	}()
	defer func() {
		cancel()
		<-stopped
	}()

	r := &testutil.RecordingRenderer{}
	h := &Harness{
		store:    st,
		worker:   w,
		renderer: r,
		logger:   logger,
		ctl: catalog.New(w,
			catalog.WithRenderer(r),
			catalog.WithLogger(logger),
			catalog.WithTokenGenerator(sequentialIDs("add")),
		),
	}

	if err := h.ctl.Load(ctx); err != nil {
		return nil, fmt.Errorf("initial load: %w", err)
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		out := h.execute(ctx, step)
		result.AddTrace(step.Op, describeInput(step), out.text)
		checkExpect(result, i, step, out)
	}

	result.Final = h.ctl.Items()
	result.Invalidations = r.Invalidations()
	result.Scrolls = r.Scrolls()
	if result.Scrolls == nil {
		result.Scrolls = []int{}
	}

	evaluateAssertions(ctx, h, scenario.Assertions, result)
	return result, nil
}

// execute runs one step.
func (h *Harness) execute(ctx context.Context, step Step) outcome {
	out := h.dispatch(ctx, step)
	if out.err != nil {
		out.text = "error: " + errorKind(out.err)
	}
	return out
}

func (h *Harness) dispatch(ctx context.Context, step Step) outcome {
	switch step.Op {
	case OpSeed:
		loader, err := seed.New(h.worker, seed.WithLogger(h.logger))
		if err != nil {
			return outcome{err: err}
		}
		res, err := loader.Run(ctx)
		if err != nil {
			return outcome{err: err}
		}
		if err := h.ctl.Refresh(ctx); err != nil {
			return outcome{err: err}
		}
		return outcome{
			count: res.Inserted,
			text:  fmt.Sprintf("seeded=%t inserted=%d", res.Seeded, res.Inserted),
		}

	case OpInsert:
		id, err := h.worker.Insert(ctx, step.Hotel.Apply(hotel.Hotel{}))
		if err != nil {
			return outcome{err: err}
		}
		return outcome{id: id, text: fmt.Sprintf("id=%d", id)}

	case OpAdd, OpAddCancel:
		sess := h.ctl.BeginAdd()
		if step.Op == OpAdd {
			sess.Confirm(step.Hotel.Apply(hotel.Hotel{}))
		} else {
			sess.Cancel()
		}
		res, err := h.ctl.AwaitAdd(ctx, sess)
		if err != nil {
			return outcome{err: err}
		}
		if !res.Added() {
			return outcome{position: -1, text: "added=false"}
		}
		return outcome{
			id:       res.ID,
			position: res.Position,
			text:     fmt.Sprintf("id=%d position=%d", res.ID, res.Position),
		}

	case OpUpdate:
		snap, ok, err := h.ctl.Lookup(ctx, step.ID)
		if err != nil {
			return outcome{err: err}
		}
		if !ok {
			return outcome{err: fmt.Errorf("update %d: %w", step.ID, store.ErrNotFound)}
		}
		updated := step.Hotel.Apply(snap.Hotel())
		if err := schema.Validate(updated); err != nil {
			return outcome{err: err}
		}
		if err := h.ctl.Update(ctx, updated); err != nil {
			return outcome{err: err}
		}
		return outcome{position: h.ctl.IndexOf(step.ID), text: fmt.Sprintf("position=%d", h.ctl.IndexOf(step.ID))}

	case OpDelete:
		if err := h.ctl.Delete(ctx, step.ID); err != nil {
			return outcome{err: err}
		}
		return outcome{text: "ok"}

	case OpGet:
		snap, ok, err := h.ctl.Lookup(ctx, step.ID)
		if err != nil {
			return outcome{err: err}
		}
		if !ok {
			return outcome{text: "not found"}
		}
		return outcome{id: snap.ID(), found: true, text: fmt.Sprintf("found name=%q", snap.Name())}

	case OpSelect:
		snap, err := h.ctl.Select(step.Position)
		if err != nil {
			return outcome{err: err}
		}
		return outcome{id: snap.ID(), found: true, text: fmt.Sprintf("id=%d name=%q", snap.ID(), snap.Name())}

	case OpSearch:
		found, err := h.ctl.Search(ctx, step.Query)
		if err != nil {
			return outcome{err: err}
		}
		names := testutil.Names(found)
		return outcome{count: len(names), names: names, text: "names=" + quoteList(names)}

	case OpCount:
		n, err := h.worker.Count(ctx)
		if err != nil {
			return outcome{err: err}
		}
		return outcome{count: n, text: fmt.Sprintf("count=%d", n)}

	case OpRefresh:
		if err := h.ctl.Refresh(ctx); err != nil {
			return outcome{err: err}
		}
		return outcome{count: h.ctl.Len(), text: fmt.Sprintf("items=%d", h.ctl.Len())}

	case OpReset:
		if err := h.ctl.Reset(ctx); err != nil {
			return outcome{err: err}
		}
		return outcome{text: "ok"}
	}

	return outcome{err: fmt.Errorf("unknown op %q", step.Op)}
}

// checkExpect compares a step's outcome with its expect clause.
func checkExpect(r *Result, i int, step Step, out outcome) {
	e := step.Expect
	if e == nil {
		if out.err != nil {
			r.AddError(fmt.Sprintf("steps[%d] %s: unexpected error: %v", i, step.Op, out.err))
		}
		return
	}

	gotKind := ""
	if out.err != nil {
		gotKind = errorKind(out.err)
	}
	if gotKind != e.Error {
		r.AddError(fmt.Sprintf("steps[%d] %s: error = %q, want %q", i, step.Op, gotKind, e.Error))
		return
	}
	if out.err != nil {
		return
	}

	if e.ID != nil && out.id != *e.ID {
		r.AddError(fmt.Sprintf("steps[%d] %s: id = %d, want %d", i, step.Op, out.id, *e.ID))
	}
	if e.Position != nil && out.position != *e.Position {
		r.AddError(fmt.Sprintf("steps[%d] %s: position = %d, want %d", i, step.Op, out.position, *e.Position))
	}
	if e.Count != nil && out.count != *e.Count {
		r.AddError(fmt.Sprintf("steps[%d] %s: count = %d, want %d", i, step.Op, out.count, *e.Count))
	}
	if e.Found != nil && out.found != *e.Found {
		r.AddError(fmt.Sprintf("steps[%d] %s: found = %t, want %t", i, step.Op, out.found, *e.Found))
	}
	if e.Names != nil && quoteList(out.names) != quoteList(e.Names) {
		r.AddError(fmt.Sprintf("steps[%d] %s: names = %s, want %s", i, step.Op, quoteList(out.names), quoteList(e.Names)))
	}
}

// errorKind maps an error to a stable name used in expectations and traces.
func errorKind(err error) string {
	var verr *schema.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, store.ErrInvalidMutation):
		return "invalid_mutation"
	case errors.As(err, &verr):
		return "validation"
	case errors.Is(err, catalog.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, catalog.ErrUnknownSession):
		return "unknown_session"
	case errors.Is(err, store.ErrStorageUnavailable):
		return "storage_unavailable"
	default:
		return "error"
	}
}

// describeInput renders a step's arguments for the trace.
func describeInput(step Step) string {
	var parts []string
	switch step.Op {
	case OpUpdate, OpDelete, OpGet:
		parts = append(parts, fmt.Sprintf("id=%d", step.ID))
	case OpSelect:
		parts = append(parts, fmt.Sprintf("position=%d", step.Position))
	case OpSearch:
		parts = append(parts, fmt.Sprintf("query=%q", step.Query))
	}
	if f := step.Hotel; f != nil {
		add := func(k string, v *string) {
			if v != nil {
				parts = append(parts, fmt.Sprintf("%s=%q", k, *v))
			}
		}
		add("name", f.Name)
		add("phone", f.Phone)
		add("website", f.Website)
		add("location", f.Location)
		add("nearby", f.Nearby)
		add("food", f.Food)
		if f.ImageRef != nil {
			parts = append(parts, fmt.Sprintf("image_ref=%d", *f.ImageRef))
		}
	}
	return strings.Join(parts, " ")
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) worker.IDGenerator {
	return &counterIDs{prefix: prefix}
}

type counterIDs struct {
	prefix string
	n      atomic.Int64
}

func (c *counterIDs) Generate() string {
	return fmt.Sprintf("%s-%d", c.prefix, c.n.Add(1))
}
