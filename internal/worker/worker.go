package worker

import (
	"context"
	"log/slog"

	"github.com/hamdanyasser/hotelref/internal/store"
)

// Result is what a job delivers on its completion channel.
type Result[T any] struct {
	Value T
	Err   error
}

// Worker serializes store operations onto one goroutine.
type Worker struct {
	access store.Access
	queue  *jobQueue
	ids    IDGenerator
	logger *slog.Logger
}

// Option configures a Worker.
type Option func(*Worker)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithIDGenerator replaces the UUIDv7 job id generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(w *Worker) {
		w.ids = g
	}
}

// New creates a Worker in front of access. Jobs may be submitted before Run
// starts; they wait in the queue.
func New(access store.Access, opts ...Option) *Worker {
	w := &Worker{
		access: access,
		queue:  newJobQueue(),
		ids:    UUIDv7Generator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("component", "worker")
	return w
}

// Submit enqueues fn and returns a channel that receives exactly one
// Result. The channel is buffered, so an abandoned result never blocks the
// worker.
//
// fn runs on the worker goroutine with the submitter's ctx. If ctx is done
// before the job starts, fn is skipped and the result carries ctx.Err().
func Submit[T any](ctx context.Context, w *Worker, name string, fn func(context.Context, store.Access) (T, error)) <-chan Result[T] {
	done := make(chan Result[T], 1)

	j := &job{
		id:   w.ids.Generate(),
		name: name,
		ctx:  ctx,
	}
	j.run = func(ctx context.Context) {
		v, err := fn(ctx, w.access)
		done <- Result[T]{Value: v, Err: err}
	}
	j.abort = func(err error) {
		done <- Result[T]{Err: err}
	}

	if !w.queue.Enqueue(j) {
		j.abort(ErrStopped)
	}
	return done
}

// Run is the single-consumer loop. It blocks until ctx is cancelled or
// Stop is called. After Stop, jobs already queued are still executed;
// after ctx cancellation they fail with ErrStopped.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Debug("worker starting")

	for {
		if ctx.Err() != nil {
			return w.abortPending(ctx)
		}

		if j, ok := w.queue.TryDequeue(); ok {
			w.execute(j)
			continue
		}

		select {
		case <-ctx.Done():
			return w.abortPending(ctx)

		case <-w.queue.Wait():
			// The signal channel is closed with the queue, so this case
			// fires immediately once stopped.
			if w.queue.isClosed() && w.queue.Len() == 0 {
				w.logger.Debug("worker stopping: queue closed")
				return nil
			}
		}
	}
}

// abortPending fails every queued job with ErrStopped.
func (w *Worker) abortPending(ctx context.Context) error {
	rest := w.queue.Drain()
	w.logger.Debug("worker stopping: context cancelled", "aborted", len(rest))
	for _, j := range rest {
		j.abort(ErrStopped)
	}
	return ctx.Err()
}

// Stop closes the queue. Run finishes the queued jobs and returns.
func (w *Worker) Stop() {
	w.queue.Close()
}

// Pending returns the number of jobs waiting to run.
func (w *Worker) Pending() int {
	return w.queue.Len()
}

// execute runs one job. Called only from the Run goroutine.
func (w *Worker) execute(j *job) {
	if err := j.ctx.Err(); err != nil {
		w.logger.Debug("job skipped", "job_id", j.id, "job", j.name, "error", err)
		j.abort(err)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("job panicked", "job_id", j.id, "job", j.name, "panic", r)
			j.abort(&PanicError{JobID: j.id, Job: j.name, Value: r})
		}
	}()

	w.logger.Debug("job running", "job_id", j.id, "job", j.name)
	j.run(j.ctx)
}

// await blocks for a job result or ctx cancellation, whichever comes first.
func await[T any](ctx context.Context, ch <-chan Result[T]) (T, error) {
	select {
	case r := <-ch:
		return r.Value, r.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
