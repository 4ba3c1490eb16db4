package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"oficina_os/internal/usecase/interfaces"

	_ "modernc.org/sqlite"
)

// SQLiteCache is the local mirror of remote-sourced collections: one blob per
// key in a single SQLite file, so the order book stays usable offline.
//
// The mirror is deliberately forgiving. Write logs and drops failures instead
// of returning them, and Read treats malformed payloads as absent, so a
// corrupted file degrades to an empty cache rather than an error state.
type SQLiteCache struct {
	db *sql.DB
}

var _ interfaces.ILocalCache = (*SQLiteCache)(nil)

// Open creates or opens the mirror file and runs its single migration.
func Open(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=10000")
	if err != nil {
		return nil, err
	}

	// One writer at a time is plenty for a mirror.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=10000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}

	migration := `CREATE TABLE IF NOT EXISTS mirror (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(migration); err != nil {
		db.Close()
		return nil, fmt.Errorf("mirror migration: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Write serializes value under key, replacing any previous blob. Failures are
// logged and swallowed: the mirror is best-effort by contract.
func (c *SQLiteCache) Write(key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		log.Printf("[cache][sqlite] marshal failed key=%s err=%v", key, err)
		return
	}

	_, err = c.db.Exec(
		`INSERT INTO mirror (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, b, time.Now().UTC(),
	)
	if err != nil {
		log.Printf("[cache][sqlite] write failed key=%s err=%v", key, err)
	}
}

// Read deserializes the blob under key into out. Returns false when the key
// is absent or the stored payload no longer deserializes.
func (c *SQLiteCache) Read(key string, out any) bool {
	var b []byte
	err := c.db.QueryRow(`SELECT value FROM mirror WHERE key = ?`, key).Scan(&b)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		log.Printf("[cache][sqlite] read failed key=%s err=%v", key, err)
		return false
	}

	if err := json.Unmarshal(b, out); err != nil {
		log.Printf("[cache][sqlite] malformed payload treated as absent key=%s err=%v", key, err)
		return false
	}
	return true
}
