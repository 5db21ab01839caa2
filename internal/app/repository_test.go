package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"github.com/matheus3301/wppmock/internal/store"
)

func testRepo(t *testing.T) *StoreRepository {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "wppmock.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStoreRepository(db)
}

func TestLoadChatsSeedsOnce(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.LoadChats(chat.DefaultSeed())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[1].Name != "Ngeima Group" || got[1].Unread != 2 || got[1].Time != "Yesterday" {
		t.Fatalf("loaded = %+v", got)
	}

	if err := repo.SetUnread(2, 0); err != nil {
		t.Fatal(err)
	}
	// A second load keeps the persisted counters instead of re-seeding.
	got, err = repo.LoadChats(chat.DefaultSeed())
	if err != nil {
		t.Fatal(err)
	}
	if got[1].Unread != 0 {
		t.Errorf("unread = %d after reload, want 0", got[1].Unread)
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	repo := testRepo(t)
	if _, err := repo.LoadChats(chat.DefaultSeed()); err != nil {
		t.Fatal(err)
	}

	at := time.Date(2026, 10, 18, 8, 15, 0, 0, time.Local)
	in := []conversation.Entry{
		{ID: "t", ChatID: 1, Direction: conversation.Outgoing, Kind: conversation.KindText, Text: "a<b", At: at},
		{ID: "s", ChatID: 1, Direction: conversation.Outgoing, Kind: conversation.KindSticker, Text: "🔥", At: at},
		{ID: "i", ChatID: 1, Direction: conversation.Outgoing, Kind: conversation.KindImage,
			Image: &conversation.Image{MIME: "image/jpeg", Data: []byte{0xff, 0xd8}}, At: at},
	}
	for _, e := range in {
		if err := repo.AppendEntry(e); err != nil {
			t.Fatal(err)
		}
	}

	out, err := repo.ListEntries(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d entries, want 3", len(out))
	}
	if out[0].Markup != "a&lt;b" || out[0].Time != "08:15" {
		t.Errorf("text entry = %+v", out[0])
	}
	if out[1].Kind != conversation.KindSticker || out[1].Markup != "🔥" {
		t.Errorf("sticker entry = %+v", out[1])
	}
	if out[2].Image == nil || out[2].Image.MIME != "image/jpeg" || len(out[2].Image.Data) != 2 {
		t.Errorf("image entry = %+v", out[2])
	}

	n, _ := repo.EntryCount()
	if n != 3 {
		t.Errorf("EntryCount() = %d, want 3", n)
	}
}
