package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hamdanyasser/hotelref/internal/hotel"
)

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestHotel creates an unsaved hotel with every field populated.
func createTestHotel(name string) hotel.Hotel {
	return hotel.Hotel{
		Name:     name,
		Phone:    "+961 1 000000",
		Website:  "www.example.com",
		Location: "Beirut, Lebanon",
		Nearby:   "Corniche",
		Food:     "Mezze",
		ImageRef: hotel.DefaultImageRef,
	}
}

// mustInsert inserts each name and returns the assigned ids in order.
func mustInsert(t *testing.T, s *Store, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := s.Insert(context.Background(), createTestHotel(name))
		if err != nil {
			t.Fatalf("Insert(%q) failed: %v", name, err)
		}
		ids = append(ids, id)
	}
	return ids
}

func names(hotels []hotel.Hotel) []string {
	out := make([]string, len(hotels))
	for i, h := range hotels {
		out[i] = h.Name
	}
	return out
}
