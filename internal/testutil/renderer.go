package testutil

import "sync"

// RecordingRenderer records Invalidate and ScrollTo calls.
//
// Thread-safety: all methods are safe for concurrent use.
type RecordingRenderer struct {
	mu          sync.Mutex
	invalidated int
	scrolls     []int
}

// Invalidate records a redraw request.
func (r *RecordingRenderer) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated++
}

// ScrollTo records a scroll request.
func (r *RecordingRenderer) ScrollTo(pos int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scrolls = append(r.scrolls, pos)
}

// Invalidations returns how many times Invalidate was called.
func (r *RecordingRenderer) Invalidations() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invalidated
}

// Scrolls returns every scroll position in call order.
func (r *RecordingRenderer) Scrolls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.scrolls...)
}

// LastScroll returns the most recent scroll position, or -1 if none.
func (r *RecordingRenderer) LastScroll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.scrolls) == 0 {
		return -1
	}
	return r.scrolls[len(r.scrolls)-1]
}

// Reset clears everything recorded so far.
func (r *RecordingRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = 0
	r.scrolls = nil
}
