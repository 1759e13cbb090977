package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hamdanyasser/hotelref/internal/hotel"
)

const selectColumns = `SELECT id, name, phone, website, location, nearby, food, image_ref FROM hotels`

// orderByName is the canonical list order. Every multi-row read uses it.
const orderByName = ` ORDER BY name COLLATE ` + collationName + ` ASC, name ASC, id ASC`

// All returns every record ordered by name.
//
// Returns an empty slice (not nil) if the table is empty.
func (s *Store) All(ctx context.Context) ([]hotel.Hotel, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+orderByName)
	if err != nil {
		return nil, storageErr("query all", err)
	}
	return scanHotels(rows, "all")
}

// Get retrieves a single record by id.
// An unknown id is not an error: it returns ok=false.
func (s *Store) Get(ctx context.Context, id int64) (hotel.Hotel, bool, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id)

	h, err := scanHotel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return hotel.Hotel{}, false, nil
	}
	if err != nil {
		return hotel.Hotel{}, false, storageErr("get", err)
	}
	return h, true, nil
}

// SearchByName returns the records whose name contains substr, ignoring
// case, in the same order as All. The query is matched literally; the
// empty query matches every record.
func (s *Store) SearchByName(ctx context.Context, substr string) ([]hotel.Hotel, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+" WHERE instr("+foldFuncName+"(name), ?) > 0"+orderByName,
		FoldKey(substr),
	)
	if err != nil {
		return nil, storageErr("search", err)
	}
	return scanHotels(rows, "search")
}

// Count returns the number of records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM hotels").Scan(&n); err != nil {
		return 0, storageErr("count", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanHotel scans one row in selectColumns order.
func scanHotel(row rowScanner) (hotel.Hotel, error) {
	var h hotel.Hotel
	err := row.Scan(
		&h.ID, &h.Name, &h.Phone, &h.Website,
		&h.Location, &h.Nearby, &h.Food, &h.ImageRef,
	)
	return h, err
}

// scanHotels drains and closes rows.
func scanHotels(rows *sql.Rows, op string) ([]hotel.Hotel, error) {
	defer rows.Close()

	hotels := []hotel.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, storageErr(op+": scan", err)
		}
		hotels = append(hotels, h)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(op+": iterate", err)
	}

	return hotels, nil
}
