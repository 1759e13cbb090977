package catalog

import (
	"context"
	"fmt"

	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/schema"
)

// BeginAdd opens an add session whose result this controller will accept.
func (c *Controller) BeginAdd() *AddSession {
	s := newAddSession(c.tokens.Generate())

	c.mu.Lock()
	c.sessions[s.token] = struct{}{}
	c.mu.Unlock()

	c.logger.Debug("add session opened", "token", s.token)
	return s
}

// AcceptAdd persists a confirmed result, refreshes, and scrolls the
// renderer to the new record.
//
// A zero or cancelled result writes nothing and does not refresh. A
// session's result is accepted at most once. If the insert succeeds but the
// reload fails, the returned Outcome still carries the new id, with
// Position -1, alongside the error.
func (c *Controller) AcceptAdd(ctx context.Context, r AddResult) (Outcome, error) {
	if r.Status == AddPending {
		return Outcome{Position: -1}, nil
	}
	if !c.closeSession(r.Token) {
		return Outcome{Position: -1}, fmt.Errorf("accept add %q: %w", r.Token, ErrUnknownSession)
	}
	if r.Status == AddCancelled {
		c.logger.Debug("add cancelled", "token", r.Token)
		return Outcome{Position: -1}, nil
	}

	draft := r.Draft.Draft()
	if draft.ImageRef == 0 {
		draft.ImageRef = hotel.DefaultImageRef
	}
	if err := schema.Validate(draft); err != nil {
		return Outcome{Position: -1}, err
	}

	id, err := c.access.Insert(ctx, draft)
	if err != nil {
		return Outcome{Position: -1}, fmt.Errorf("accept add: %w", err)
	}

	if err := c.Refresh(ctx); err != nil {
		return Outcome{ID: id, Position: -1}, err
	}

	pos := c.IndexOf(id)
	if pos >= 0 {
		c.renderer.ScrollTo(pos)
	}

	c.logger.Info("hotel added", "id", id, "name", draft.Name, "position", pos)
	return Outcome{ID: id, Position: pos}, nil
}

// AwaitAdd waits for s to report and accepts the result. If ctx ends
// first, the session is cancelled and nothing is written.
func (c *Controller) AwaitAdd(ctx context.Context, s *AddSession) (Outcome, error) {
	select {
	case r := <-s.Result():
		return c.AcceptAdd(ctx, r)
	case <-ctx.Done():
		s.Cancel()
		c.closeSession(s.token)
		return Outcome{Position: -1}, ctx.Err()
	}
}

// closeSession forgets token. Returns false if it was not open.
func (c *Controller) closeSession(token string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sessions[token]; !ok {
		return false
	}
	delete(c.sessions, token)
	return true
}
