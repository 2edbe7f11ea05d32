// Package store persists the timer snapshot, the focus history and the tag
// catalog
package store

import (
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/focusflow/internal/models"
)

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// DB is the database storage interface.
type DB interface {
	// LoadSnapshot returns the raw persisted timer state, or nil if none has
	// been saved yet
	LoadSnapshot() ([]byte, error)
	// SaveSnapshot replaces the persisted timer state
	SaveSnapshot(b []byte) error
	// LoadHistory returns all focus records ordered by end time
	LoadHistory() ([]models.FocusRecord, error)
	// AppendHistory adds a focus record to the history
	AppendHistory(r models.FocusRecord) error
	// DeleteHistory removes the records with the given ids
	DeleteHistory(ids []string) error
	// ReplaceHistory atomically overwrites the records with matching ids
	ReplaceHistory(records []models.FocusRecord) error
	// LoadTags returns the saved tag catalog, or nil if none has been saved
	LoadTags() ([]models.Tag, error)
	// SaveTags replaces the tag catalog
	SaveTags(tags []models.Tag) error
	// Close ends the database connection
	Close() error
}

// Open connects to the store for the given driver. The SQLite database lives
// next to the bolt file with a .sqlite extension.
func Open(driver, path string) (DB, error) {
	switch driver {
	case "", DriverBolt:
		return NewClient(path)
	case DriverSQLite:
		return NewSQLite(strings.TrimSuffix(path, filepath.Ext(path)) + ".sqlite")
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}
