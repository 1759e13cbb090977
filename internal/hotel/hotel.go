package hotel

import "fmt"

// DefaultImageRef is the image reference stamped on sample records.
const DefaultImageRef int64 = 1

// Hotel is one catalog entry.
type Hotel struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Nearby   string `json:"nearby"`
	Food     string `json:"food"`
	ImageRef int64  `json:"image_ref"`
}

// Persisted reports whether the store has assigned an id.
func (h Hotel) Persisted() bool {
	return h.ID != 0
}

// WithID returns a copy of h carrying id.
func (h Hotel) WithID(id int64) Hotel {
	h.ID = id
	return h
}

// Draft returns a copy of h with the id cleared, suitable for Insert.
func (h Hotel) Draft() Hotel {
	h.ID = 0
	return h
}

// SameContent reports whether every field except ID matches.
func (h Hotel) SameContent(o Hotel) bool {
	return h.Draft() == o.Draft()
}

func (h Hotel) String() string {
	return fmt.Sprintf("Hotel{id=%d, name=%q, location=%q}", h.ID, h.Name, h.Location)
}
