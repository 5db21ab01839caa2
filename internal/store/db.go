package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the session's wppmock.db holding seeded chats and transcripts.
// Only the daemon holding the session lock opens it.
type DB struct {
	*sql.DB
	Path string
}

// dsnOptions keeps readers concurrent with the daemon's writes (WAL), lets
// transcript rows cascade with their chat, and takes the write lock when a
// seeding transaction starts instead of on its first insert.
const dsnOptions = "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on&_txlock=immediate"

// Open connects to the database at path, creating the file if needed.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	return &DB{DB: db, Path: path}, nil
}
