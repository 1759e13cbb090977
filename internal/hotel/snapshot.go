package hotel

// Snapshot is an immutable copy of a record handed from the list context to
// a detail context. It holds no reference into any cache.
type Snapshot struct {
	h Hotel
}

// SnapshotOf copies h into a snapshot.
func SnapshotOf(h Hotel) Snapshot {
	return Snapshot{h: h}
}

// Hotel returns a copy of the snapshotted record.
func (s Snapshot) Hotel() Hotel { return s.h }

func (s Snapshot) ID() int64        { return s.h.ID }
func (s Snapshot) Name() string     { return s.h.Name }
func (s Snapshot) Phone() string    { return s.h.Phone }
func (s Snapshot) Website() string  { return s.h.Website }
func (s Snapshot) Location() string { return s.h.Location }
func (s Snapshot) Nearby() string   { return s.h.Nearby }
func (s Snapshot) Food() string     { return s.h.Food }
func (s Snapshot) ImageRef() int64  { return s.h.ImageRef }

// IsZero reports whether s was never populated.
func (s Snapshot) IsZero() bool {
	return s.h == Hotel{}
}
