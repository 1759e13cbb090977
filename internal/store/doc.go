// Package store provides SQLite-backed durable storage for the hotel catalog.
//
// The store holds a single flat table, hotels, and is the only component that
// reads or writes persisted records. Collaborators depend on the Access
// interface; *Store and the background worker both implement it.
//
// # Handle Lifecycle
//
// A Catalog owns the one live *Store for the process. Acquire constructs it
// on first use (at most once, even under concurrent callers) and Release
// tears it down at shutdown. The Catalog is created explicitly in main and
// passed to whoever needs it; there is no package-level instance.
//
// # Ordering and Search
//
// Names are ordered by their fold key: NFC normalization followed by full
// Unicode case folding, compared ordinally. Ties fall back to the raw name
// and then to id, so All() is a total order. SearchByName matches substrings
// of the same fold key; the empty query matches every record.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - One open connection: writes are serialized and ids stay unique
//
// Ids come from INTEGER PRIMARY KEY AUTOINCREMENT and are never reused, not
// even after DeleteAll.
package store
