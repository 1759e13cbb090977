package catalog

import (
	"sync"

	"github.com/hamdanyasser/hotelref/internal/hotel"
)

// AddStatus is the outcome reported by an add context.
type AddStatus int

const (
	// AddPending is the zero value: no result was reported.
	AddPending AddStatus = iota
	AddConfirmed
	AddCancelled
)

func (s AddStatus) String() string {
	switch s {
	case AddConfirmed:
		return "confirmed"
	case AddCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// AddResult is the message an add context sends back. A zero AddResult
// stands for a missing result.
type AddResult struct {
	Token  string
	Status AddStatus
	Draft  hotel.Hotel
}

// AddSession is the return channel handed to one add context.
// Only the first Confirm or Cancel counts.
//
// Thread-safety: all methods are safe for concurrent use.
type AddSession struct {
	token  string
	once   sync.Once
	result chan AddResult // buffered, size 1
}

func newAddSession(token string) *AddSession {
	return &AddSession{
		token:  token,
		result: make(chan AddResult, 1),
	}
}

// Token identifies the session.
func (s *AddSession) Token() string {
	return s.token
}

// Confirm reports a new record. Any id on draft is dropped.
// Returns false if the session already has a result.
func (s *AddSession) Confirm(draft hotel.Hotel) bool {
	return s.finish(AddResult{Token: s.token, Status: AddConfirmed, Draft: draft.Draft()})
}

// Cancel reports that nothing was created.
// Returns false if the session already has a result.
func (s *AddSession) Cancel() bool {
	return s.finish(AddResult{Token: s.token, Status: AddCancelled})
}

// Result delivers the session's single result.
func (s *AddSession) Result() <-chan AddResult {
	return s.result
}

func (s *AddSession) finish(r AddResult) bool {
	won := false
	s.once.Do(func() {
		s.result <- r
		won = true
	})
	return won
}
