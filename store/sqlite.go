package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	// registers the pure Go "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/osutil"
)

const (
	kvSnapshot = "snapshot"
	kvTags     = "tags"
)

// SQLite is a DB backed by a SQLite database in WAL mode.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens or creates the SQLite store at dbPath.
func NewSQLite(dbPath string) (*SQLite, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, errOpenStore.Wrap(errors.New("sqlite db path is empty"))
	}

	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}

	for _, p := range pragmas {
		_, err = db.Exec(p)
		if err != nil {
			_ = db.Close()
			return nil, errOpenStore.Wrap(err)
		}
	}

	s := &SQLite{db: db}

	err = s.ensureSchema()
	if err != nil {
		_ = db.Close()
		return nil, errOpenStore.Wrap(err)
	}

	return s, nil
}

func (s *SQLite) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS history (
		id               TEXT PRIMARY KEY,
		tag_id           TEXT NOT NULL DEFAULT '',
		tag_name         TEXT NOT NULL DEFAULT '',
		start_time       INTEGER NOT NULL,
		end_time         INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_end ON history(end_time);
	`
	_, err := s.db.Exec(schema)

	return err
}

func (s *SQLite) get(key string) ([]byte, error) {
	var b []byte

	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return b, err
}

func (s *SQLite) put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key,
		value,
	)

	return err
}

func (s *SQLite) LoadSnapshot() ([]byte, error) {
	return s.get(kvSnapshot)
}

func (s *SQLite) SaveSnapshot(b []byte) error {
	return s.put(kvSnapshot, b)
}

func (s *SQLite) AppendHistory(r models.FocusRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO history (id, tag_id, tag_name, start_time, end_time, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.TagID, r.TagName, r.StartTime, r.EndTime, r.DurationSeconds,
	)

	return err
}

func (s *SQLite) LoadHistory() ([]models.FocusRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, tag_id, tag_name, start_time, end_time, duration_seconds
		FROM history ORDER BY end_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.FocusRecord

	for rows.Next() {
		var r models.FocusRecord

		err = rows.Scan(
			&r.ID,
			&r.TagID,
			&r.TagName,
			&r.StartTime,
			&r.EndTime,
			&r.DurationSeconds,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *SQLite) DeleteHistory(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	for _, id := range ids {
		_, err = tx.Exec(`DELETE FROM history WHERE id = ?`, id)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ReplaceHistory overwrites the records sharing an id with records in a
// single transaction.
func (s *SQLite) ReplaceHistory(records []models.FocusRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	for i := range records {
		r := &records[i]

		_, err = tx.Exec(`DELETE FROM history WHERE id = ?`, r.ID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO history (id, tag_id, tag_name, start_time, end_time, duration_seconds)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, r.TagID, r.TagName, r.StartTime, r.EndTime, r.DurationSeconds,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLite) LoadTags() ([]models.Tag, error) {
	b, err := s.get(kvTags)
	if err != nil || b == nil {
		return nil, err
	}

	tags := []models.Tag{}

	err = json.Unmarshal(b, &tags)

	return tags, err
}

func (s *SQLite) SaveTags(tags []models.Tag) error {
	if tags == nil {
		tags = []models.Tag{}
	}

	b, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	return s.put(kvTags, b)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
