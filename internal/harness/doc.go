// Package harness runs catalog scenarios described in YAML and compares
// their traces against golden snapshots.
//
// Each scenario runs against a fresh in-memory store, behind the same
// worker and controller the CLI uses, with fixed add-session tokens and a
// recording renderer, so the trace is byte-for-byte reproducible.
//
// # Scenario Format
//
//	name: zenith_add
//	description: "A new record is scrolled to where it sorts"
//	steps:
//	  - op: seed
//	  - op: add
//	    hotel: { name: "Zenith Suites" }
//	    expect: { id: 7, position: 6 }
//	  - op: get
//	    id: 99
//	    expect: { found: false }
//	assertions:
//	  - type: list_order
//	    names: ["Beach Resort Hotel", ...]
//	  - type: scroll
//	    position: 6
//
// # Operations
//
//   - seed: run the seed loader, then refresh
//   - insert: write a record straight through store access (no refresh)
//   - add: open an add session, confirm hotel, accept the result
//   - add_cancel: open an add session, cancel it, accept the result
//   - update: change the given hotel fields of record id
//   - delete: delete record id
//   - get: look up record id
//   - select: take a snapshot of list position
//   - search: search names for query
//   - count: count records in the store
//   - refresh: reload the list
//   - reset: delete every record
//
// # Assertion Types
//
//   - list_order: the final list holds exactly names, in order
//   - list_count: the final list holds count records
//   - scroll: the last scroll signal was to position
//   - invalidations: the renderer was invalidated count times
//   - record: record id exists and its fields match fields
package harness
