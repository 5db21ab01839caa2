package app

import (
	"fmt"
	"time"

	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"github.com/matheus3301/wppmock/internal/store"
)

// StoreRepository persists app state in wppmock.db.
type StoreRepository struct {
	db *store.DB
}

// NewStoreRepository wraps a migrated database.
func NewStoreRepository(db *store.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// LoadChats seeds the database on first run and returns the persisted chat
// list, so unread counters survive daemon restarts.
func (r *StoreRepository) LoadChats(seed []chat.Record) ([]chat.Record, error) {
	rows := make([]store.Chat, len(seed))
	for i, rec := range seed {
		rows[i] = store.Chat{
			ID:         rec.ID,
			Name:       rec.Name,
			Preview:    rec.Preview,
			TimeLabel:  rec.Time,
			Unread:     rec.Unread,
			IsFavorite: rec.IsFavorite,
			IsGroup:    rec.IsGroup,
			IsOnline:   rec.IsOnline,
		}
	}
	if _, err := r.db.SeedChats(rows); err != nil {
		return nil, fmt.Errorf("seed chats: %w", err)
	}

	stored, err := r.db.ListChats()
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	out := make([]chat.Record, len(stored))
	for i, c := range stored {
		out[i] = chat.Record{
			ID:         c.ID,
			Name:       c.Name,
			Preview:    c.Preview,
			Time:       c.TimeLabel,
			Unread:     c.Unread,
			IsFavorite: c.IsFavorite,
			IsGroup:    c.IsGroup,
			IsOnline:   c.IsOnline,
		}
	}
	return out, nil
}

func (r *StoreRepository) SetUnread(id int64, unread int) error {
	return r.db.SetUnread(id, unread)
}

func (r *StoreRepository) ResetAllUnread() error {
	return r.db.ResetAllUnread()
}

func (r *StoreRepository) AppendEntry(e conversation.Entry) error {
	row := store.Entry{
		ID:        e.ID,
		ChatID:    e.ChatID,
		Direction: string(e.Direction),
		Kind:      string(e.Kind),
		Body:      e.Text,
		At:        e.At.UnixMilli(),
	}
	if e.Image != nil {
		row.MIME = e.Image.MIME
		row.Data = e.Image.Data
	}
	return r.db.AppendEntry(&row)
}

func (r *StoreRepository) ListEntries(chatID int64) ([]conversation.Entry, error) {
	rows, err := r.db.ListEntries(chatID)
	if err != nil {
		return nil, err
	}
	out := make([]conversation.Entry, len(rows))
	for i, row := range rows {
		at := time.UnixMilli(row.At)
		e := conversation.Entry{
			ID:        row.ID,
			ChatID:    row.ChatID,
			Direction: conversation.Direction(row.Direction),
			Kind:      conversation.Kind(row.Kind),
			Text:      row.Body,
			At:        at,
			Time:      conversation.ShortTime(at),
		}
		if e.Kind == conversation.KindImage {
			e.Image = &conversation.Image{MIME: row.MIME, Data: row.Data}
		} else {
			e.Markup = conversation.EscapeMarkup(row.Body)
		}
		out[i] = e
	}
	return out, nil
}

// EntryCount returns the number of persisted entries.
func (r *StoreRepository) EntryCount() (int, error) {
	return r.db.EntryCount()
}
