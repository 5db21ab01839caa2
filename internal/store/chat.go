package store

import (
	"database/sql"
	"fmt"
)

// SeedChats inserts chats in order when the table is empty. It returns the
// number of rows inserted; an already seeded database is left untouched.
func (db *DB) SeedChats(chats []Chat) (int, error) {
	n, err := db.ChatCount()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO chats (id, name, preview, time_label, unread, is_favorite, is_group, is_online, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	for i, c := range chats {
		if _, err := stmt.Exec(c.ID, c.Name, c.Preview, c.TimeLabel, c.Unread, c.IsFavorite, c.IsGroup, c.IsOnline, i); err != nil {
			return 0, fmt.Errorf("seed chat %d: %w", c.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(chats), nil
}

// ListChats returns all chats in display order.
func (db *DB) ListChats() ([]Chat, error) {
	rows, err := db.Query(`
		SELECT id, name, preview, time_label, unread, is_favorite, is_group, is_online, position
		FROM chats
		ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var chats []Chat
	for rows.Next() {
		var c Chat
		if err := rows.Scan(&c.ID, &c.Name, &c.Preview, &c.TimeLabel, &c.Unread, &c.IsFavorite, &c.IsGroup, &c.IsOnline, &c.Position); err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

// GetChat returns a single chat by id, or nil when it does not exist.
func (db *DB) GetChat(id int64) (*Chat, error) {
	var c Chat
	err := db.QueryRow(`
		SELECT id, name, preview, time_label, unread, is_favorite, is_group, is_online, position
		FROM chats WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Preview, &c.TimeLabel, &c.Unread, &c.IsFavorite, &c.IsGroup, &c.IsOnline, &c.Position)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetUnread stores the unread counter of a chat.
func (db *DB) SetUnread(id int64, unread int) error {
	_, err := db.Exec(`UPDATE chats SET unread = ? WHERE id = ?`, unread, id)
	return err
}

// ResetAllUnread zeroes every unread counter.
func (db *DB) ResetAllUnread() error {
	_, err := db.Exec(`UPDATE chats SET unread = 0 WHERE unread != 0`)
	return err
}

// ChatCount returns the number of chats.
func (db *DB) ChatCount() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM chats`).Scan(&n)
	return n, err
}
