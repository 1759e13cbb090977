// Package hotel provides the catalog record type shared by every other package.
//
// This package contains value types only. All other internal packages
// import hotel; hotel imports nothing internal.
//
// Key constraints:
//   - ID 0 means "not yet persisted"; the store assigns ids on insert
//   - ImageRef is opaque; nothing in the catalog interprets it
//   - Snapshot is the only form in which a record leaves the list context
package hotel
