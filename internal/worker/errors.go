package worker

import (
	"errors"
	"fmt"
)

// ErrStopped is returned for jobs submitted to, or still queued in, a
// worker that has stopped.
var ErrStopped = errors.New("worker stopped")

// PanicError carries a panic recovered from a job. The worker keeps running.
type PanicError struct {
	JobID string
	Job   string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("job %s (%s) panicked: %v", e.Job, e.JobID, e.Value)
}
