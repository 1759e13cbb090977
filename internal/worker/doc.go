// Package worker runs catalog store operations on one background goroutine.
//
// Every operation becomes a job on an unbounded FIFO queue. Run drains the
// queue from exactly one goroutine, so writes are totally ordered with reads
// and a mutation is acknowledged only after the store has applied it.
// Callers receive results on a per-job completion channel.
//
// Thread-safety model:
//   - Submit and the store.Access methods: safe from any goroutine
//   - Run: must be called from exactly one goroutine
//   - Stop: safe from any goroutine, idempotent
//
// A caller that stops waiting (its context is cancelled) simply abandons the
// completion channel. A job whose context is already cancelled when it
// reaches the front of the queue is skipped without touching the store.
package worker
