// Package store persists each logical collection as a versioned JSON blob
// in a local SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/subtrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrFutureSchema indicates a collection was written by a newer release.
var ErrFutureSchema = errors.New("store: collection schema is newer than this build")

// Store provides access to the persisted collections.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// putBlob writes one collection blob, replacing any previous value.
func (s *Store) putBlob(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT OR REPLACE INTO collections (name, schema_version, data, updated_at)
		VALUES (?, ?, ?, ?)`, name, SchemaVersion, string(data), now)
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// getBlob reads one collection blob into v. A missing collection leaves v
// untouched and returns false.
func (s *Store) getBlob(name string, v any) (bool, error) {
	var version int
	var data string
	err := s.db.QueryRow("SELECT schema_version, data FROM collections WHERE name = ?", name).
		Scan(&version, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", name, err)
	}
	if version > SchemaVersion {
		return false, fmt.Errorf("%w: %s is v%d, this build reads up to v%d",
			ErrFutureSchema, name, version, SchemaVersion)
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", name, err)
	}
	return true, nil
}

// Subscriptions returns all stored subscriptions, empty when none exist.
func (s *Store) Subscriptions() ([]model.Subscription, error) {
	var subs []model.Subscription
	if _, err := s.getBlob(colSubscriptions, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// SaveSubscriptions replaces the subscriptions collection.
func (s *Store) SaveSubscriptions(subs []model.Subscription) error {
	return s.putBlob(colSubscriptions, subs)
}

// Budgets returns all stored budgets, empty when none exist.
func (s *Store) Budgets() ([]model.Budget, error) {
	var budgets []model.Budget
	if _, err := s.getBlob(colBudgets, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// SaveBudgets replaces the budgets collection.
func (s *Store) SaveBudgets(budgets []model.Budget) error {
	return s.putBlob(colBudgets, budgets)
}

// Categories returns all stored categories, empty when none exist.
func (s *Store) Categories() ([]model.Category, error) {
	var cats []model.Category
	if _, err := s.getBlob(colCategories, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// SaveCategories replaces the categories collection.
func (s *Store) SaveCategories(cats []model.Category) error {
	return s.putBlob(colCategories, cats)
}

// Settings returns the stored settings, or defaults when none exist.
func (s *Store) Settings() (model.Settings, error) {
	settings := model.DefaultSettings()
	if _, err := s.getBlob(colSettings, &settings); err != nil {
		return settings, err
	}
	return settings, nil
}

// SaveSettings replaces the settings record.
func (s *Store) SaveSettings(settings model.Settings) error {
	return s.putBlob(colSettings, settings)
}
