// Package store provides the local SQLite cache for the rocket catalog.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/rocket"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	// Build connection string based on database type
	connStr := dbPath
	if dbPath == ":memory:" {
		// For in-memory databases, use shared cache mode so all connections
		// in the pool see the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// For in-memory databases, limit to 1 connection to avoid issues
	// with multiple connections getting different databases
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Enable WAL mode for file-based databases (not :memory:)
	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables and indexes if they don't exist.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS rockets (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		first_flight TEXT NOT NULL,
		height_m REAL NOT NULL,
		diameter_m REAL NOT NULL,
		mass_kg REAL NOT NULL,
		country TEXT,
		description TEXT,
		active INTEGER DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_rockets_position ON rockets(position);
	CREATE INDEX IF NOT EXISTS idx_rockets_name ON rockets(name);

	CREATE TABLE IF NOT EXISTS sync_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// ReplaceRockets swaps the cached catalog for the given one, preserving the
// API order via the position column, and records the sync time.
// Thread-safe: acquires write lock.
func (s *Store) ReplaceRockets(rockets []rocket.Rocket, syncedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM rockets"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO rockets (
			id, position, name, first_flight, height_m, diameter_m, mass_kg,
			country, description, active
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range rockets {
		_, err := stmt.Exec(
			r.ID,
			i,
			r.Name,
			r.FirstFlight,
			r.HeightM,
			r.DiameterM,
			r.MassKg,
			r.Country,
			r.Description,
			boolToInt(r.Active),
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`
		INSERT INTO sync_meta (key, value) VALUES ('last_synced', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, syncedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Rockets retrieves the cached catalog in API order.
// Thread-safe: acquires read lock.
func (s *Store) Rockets() ([]rocket.Rocket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, first_flight, height_m, diameter_m, mass_kg,
			country, description, active
		FROM rockets
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rockets []rocket.Rocket
	for rows.Next() {
		var r rocket.Rocket
		var country, description sql.NullString
		var activeInt int
		err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.FirstFlight,
			&r.HeightM,
			&r.DiameterM,
			&r.MassKg,
			&country,
			&description,
			&activeInt,
		)
		if err != nil {
			return nil, err
		}
		r.Country = country.String
		r.Description = description.String
		r.Active = activeInt != 0
		rockets = append(rockets, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rockets, nil
}

// LastSynced returns when the cache was last replaced, or the zero time if
// it never was.
// Thread-safe: acquires read lock.
func (s *Store) LastSynced() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM sync_meta WHERE key = 'last_synced'").Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last_synced: %w", err)
	}
	return t, nil
}

// Count returns the number of cached rockets.
// Thread-safe: acquires read lock.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM rockets").Scan(&count)
	return count, err
}

// boolToInt converts a bool to an int for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
