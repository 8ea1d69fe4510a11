package storage

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"quotes-api/models"
)

// SQLiteStore is the alternate driver: one kv table, key -> JSON text.
type SQLiteStore struct {
	db *sqlx.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, &models.StorageError{Op: "open", Err: err}
	}

	schema := `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &models.StorageError{Op: "init", Err: err}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string, v interface{}) error {
	var raw string
	err := s.db.Get(&raw, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return &models.StorageError{Op: "get", Err: err}
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &models.StorageError{Op: "decode", Err: err}
	}
	return nil
}

func (s *SQLiteStore) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &models.StorageError{Op: "encode", Err: err}
	}
	_, err = s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		return &models.StorageError{Op: "set", Err: err}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
