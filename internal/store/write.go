package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hamdanyasser/hotelref/internal/hotel"
)

// Insert adds a new record and returns its freshly assigned id.
// The record must not carry an id.
func (s *Store) Insert(ctx context.Context, h hotel.Hotel) (int64, error) {
	if h.Persisted() {
		return 0, fmt.Errorf("insert hotel %d: %w: record already has an id", h.ID, ErrInvalidMutation)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO hotels (name, phone, website, location, nearby, food, image_ref)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		h.Name,
		h.Phone,
		h.Website,
		h.Location,
		h.Nearby,
		h.Food,
		h.ImageRef,
	)
	if err != nil {
		return 0, storageErr("insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr("insert: last insert id", err)
	}

	s.logger.Debug("hotel inserted", "id", id, "name", h.Name)
	return id, nil
}

// Update overwrites every field of the record with the matching id.
// Returns ErrInvalidMutation if h has no id and ErrNotFound if no row matches.
func (s *Store) Update(ctx context.Context, h hotel.Hotel) error {
	if !h.Persisted() {
		return fmt.Errorf("update: %w: record has no id", ErrInvalidMutation)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE hotels
		SET name = ?, phone = ?, website = ?, location = ?, nearby = ?, food = ?, image_ref = ?
		WHERE id = ?
	`,
		h.Name,
		h.Phone,
		h.Website,
		h.Location,
		h.Nearby,
		h.Food,
		h.ImageRef,
		h.ID,
	)
	if err != nil {
		return storageErr("update", err)
	}

	if err := requireAffected(result, "update", h.ID); err != nil {
		return err
	}

	s.logger.Debug("hotel updated", "id", h.ID)
	return nil
}

// Delete removes exactly the record with h's id.
// Returns ErrInvalidMutation if h has no id and ErrNotFound if no row matches.
func (s *Store) Delete(ctx context.Context, h hotel.Hotel) error {
	if !h.Persisted() {
		return fmt.Errorf("delete: %w: record has no id", ErrInvalidMutation)
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM hotels WHERE id = ?", h.ID)
	if err != nil {
		return storageErr("delete", err)
	}

	if err := requireAffected(result, "delete", h.ID); err != nil {
		return err
	}

	s.logger.Debug("hotel deleted", "id", h.ID)
	return nil
}

// DeleteAll clears the table. The id sequence is kept, so ids handed out
// before the reset are never reused.
func (s *Store) DeleteAll(ctx context.Context) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM hotels")
	if err != nil {
		return storageErr("delete all", err)
	}

	n, _ := result.RowsAffected()
	s.logger.Info("hotels cleared", "removed", n)
	return nil
}

func requireAffected(result sql.Result, op string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return storageErr(op+": rows affected", err)
	}
	if n == 0 {
		return fmt.Errorf("%s hotel %d: %w", op, id, ErrNotFound)
	}
	return nil
}
