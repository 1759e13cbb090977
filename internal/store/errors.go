package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when Update or Delete targets an id that is
	// not in the table. Get reports absence with ok=false instead.
	ErrNotFound = errors.New("hotel not found")

	// ErrInvalidMutation is returned when Update or Delete is given a record
	// without an id, or Insert is given one that already has an id.
	ErrInvalidMutation = errors.New("invalid mutation")

	// ErrStorageUnavailable matches every failure of the underlying database.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrReleased is returned by Acquire after Release.
	ErrReleased = errors.New("catalog released")
)

// StorageError wraps a database failure with the operation that hit it.
// It matches ErrStorageUnavailable and the driver error via errors.Is.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorageUnavailable, e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorageUnavailable, e.Err}
}

// IsStorageUnavailable reports whether err came from the database layer.
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// storageErr wraps err as a StorageError. Context cancellation is the
// caller's doing, not a storage fault, so it passes through unchanged.
func storageErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return &StorageError{Op: op, Err: err}
}
