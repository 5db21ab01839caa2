package store

// AppendEntry adds an entry to the end of its chat's transcript.
func (db *DB) AppendEntry(e *Entry) error {
	_, err := db.Exec(`
		INSERT INTO entries (id, chat_id, direction, kind, body, mime, data, at, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM entries WHERE chat_id = ?))`,
		e.ID, e.ChatID, e.Direction, e.Kind, e.Body, e.MIME, e.Data, e.At, e.ChatID)
	return err
}

// ListEntries returns the transcript of a chat in append order.
func (db *DB) ListEntries(chatID int64) ([]Entry, error) {
	rows, err := db.Query(`
		SELECT id, chat_id, direction, kind, body, mime, data, at
		FROM entries
		WHERE chat_id = ?
		ORDER BY seq`, chatID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ChatID, &e.Direction, &e.Kind, &e.Body, &e.MIME, &e.Data, &e.At); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearEntries deletes the transcript of a chat and returns the number of rows removed.
func (db *DB) ClearEntries(chatID int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM entries WHERE chat_id = ?`, chatID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// EntryCount returns the number of persisted entries across all chats.
func (db *DB) EntryCount() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}
