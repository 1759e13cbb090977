package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/hamdanyasser/hotelref/internal/hotel"
)

//go:embed schema.sql
var schemaSQL string

// SchemaVersion is the only schema version this build understands.
// A database stamped with any other non-zero version is rebuilt from
// scratch; there is no migration path.
const SchemaVersion = 1

// Access is the full set of record operations. *Store implements it
// directly; the background worker implements it by serializing calls onto
// one goroutine.
type Access interface {
	Insert(ctx context.Context, h hotel.Hotel) (int64, error)
	Update(ctx context.Context, h hotel.Hotel) error
	Delete(ctx context.Context, h hotel.Hotel) error
	All(ctx context.Context) ([]hotel.Hotel, error)
	Get(ctx context.Context, id int64) (hotel.Hotel, bool, error)
	SearchByName(ctx context.Context, substr string) ([]hotel.Hotel, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

var _ Access = (*Store)(nil)

// Store provides durable storage for hotel records.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Option configures Open.
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// This function is idempotent - safe to call multiple times on one path.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "store")

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, storageErr("open", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, storageErr("connect", err)
	}

	// SQLite only supports one writer at a time. One connection also keeps
	// a :memory: database alive for the lifetime of the store.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, storageErr("pragmas", err)
	}

	s.db = db
	if err := s.applySchema(); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Debug("store opened", "path", path, "schema_version", SchemaVersion)
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates the hotels table and stamps the schema version.
// A database carrying a different version is dropped and recreated.
func (s *Store) applySchema() error {
	version, err := s.userVersion()
	if err != nil {
		return storageErr("read schema version", err)
	}

	if version != 0 && version != SchemaVersion {
		s.logger.Warn("schema version mismatch, rebuilding hotels table",
			"found", version,
			"want", SchemaVersion,
		)
		if _, err := s.db.Exec("DROP TABLE IF EXISTS hotels"); err != nil {
			return storageErr("drop hotels", err)
		}
	}

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return storageErr("apply schema", err)
	}

	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return storageErr("set schema version", err)
	}

	return nil
}

// userVersion reads PRAGMA user_version.
func (s *Store) userVersion() (int, error) {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}
