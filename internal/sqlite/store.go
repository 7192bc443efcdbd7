// Package sqlite implements the embedded storefront store. It owns the
// schema bootstrap, the idempotent catalog seed, the generic patch-list CRUD
// layer, and the domain query layer the screens and services call.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/storefront/pkg/types"
)

// storeFileName is the SQLite database file created inside the data dir.
const storeFileName = "store.db"

// Store is the process-wide handle to the embedded database. It is opened
// once, shared for the process lifetime, and serializes access through the
// engine; the mutex only guards the open/close lifecycle against concurrent
// operations.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
}

// NewStore creates an unopened Store. Call Open with a Config before use.
func NewStore() *Store {
	return &Store{}
}

// Open validates the config, creates the data dir if needed, opens the
// database file, enables foreign-key enforcement, bootstraps the schema, and
// seeds the canonical catalog. Idempotent at the statement level: every DDL
// uses IF NOT EXISTS and every seed row is an upsert by id. Returns
// *types.InitError on any failure and ErrAlreadyOpen if called twice.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return &types.InitError{Err: err}
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return &types.InitError{Err: err}
	}

	dbPath := filepath.Join(config.DataDir, storeFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return &types.InitError{Err: fmt.Errorf("opening %s: %w", dbPath, err)}
	}
	// One connection keeps the foreign-key pragma in force for every
	// statement and lets the engine serialize writes.
	db.SetMaxOpenConns(1)

	// The orphan policy deliberately leaves dangling references behind, so
	// engine-level enforcement is only enabled for the other policies.
	if config.EffectiveDeletePolicy() != types.DeleteOrphan {
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			db.Close()
			return &types.InitError{Err: fmt.Errorf("enabling foreign keys: %w", err)}
		}
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return &types.InitError{Err: fmt.Errorf("creating schema: %w", err)}
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return &types.InitError{Err: fmt.Errorf("creating indexes: %w", err)}
		}
	}

	if err := seedCatalog(db); err != nil {
		db.Close()
		return &types.InitError{Err: err}
	}

	s.db = db
	s.config = config
	s.open = true
	return nil
}

// Close releases the database handle. Idempotent: closing a closed store
// succeeds. After Close, all operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	s.db = nil
	s.open = false
	return nil
}

// Config returns the config the store was opened with.
func (s *Store) Config() types.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// checkOpen returns ErrStoreClosed when the store is not open.
// The caller must hold mu (read or write).
func (s *Store) checkOpen() error {
	if !s.open {
		return types.ErrStoreClosed
	}
	return nil
}
