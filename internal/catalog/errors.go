package catalog

import "errors"

var (
	// ErrOutOfRange is returned by Select for a position outside the cache.
	ErrOutOfRange = errors.New("position out of range")

	// ErrUnknownSession is returned when an add result does not belong to
	// an open session of this controller, including one already accepted.
	ErrUnknownSession = errors.New("unknown or already accepted add session")
)
