// Package catalog keeps the ordered in-memory list of hotels consistent
// with the store and runs the detail and add hand-offs.
//
// The Controller owns its cache. Reads hand out copies or snapshots, never
// references into the cache, and every confirmed mutation is followed by a
// full reload in store order. All persistence goes through a store.Access,
// normally the background worker.
//
// Add flow:
//
//	sess := ctl.BeginAdd()
//	// the add context builds a draft and calls sess.Confirm(draft) or sess.Cancel()
//	out, err := ctl.AwaitAdd(ctx, sess)
//
// The add context never writes. The record is inserted once, when the
// result is accepted, and the renderer is scrolled to the new record's
// position in the reloaded list.
package catalog
