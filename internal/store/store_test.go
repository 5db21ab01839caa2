package store

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedChats() []Chat {
	return []Chat{
		{ID: 10, Name: "Asap Ramy", Preview: "Tap to chat", TimeLabel: "12:01", IsOnline: true},
		{ID: 20, Name: "Ngeima Group", Preview: "No messages yet", TimeLabel: "Yesterday", Unread: 2, IsGroup: true},
		{ID: 5, Name: "John Public", Preview: "Say hi!", TimeLabel: "Mon", IsFavorite: true},
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testDB(t)

	// testDB already ran Migrate once.
	result, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if result.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if result.Version != 1 {
		t.Errorf("version = %d, want 1", result.Version)
	}
	if result.Dirty {
		t.Error("migration left the database dirty")
	}
}

func TestMigrateReportsDirtyDatabase(t *testing.T) {
	db := testDB(t)
	if _, err := db.Exec(`UPDATE schema_migrations SET dirty = 1`); err != nil {
		t.Fatal(err)
	}

	_, err := db.Migrate()
	var dirty migrate.ErrDirty
	if !errors.As(err, &dirty) {
		t.Fatalf("Migrate() error = %v, want ErrDirty", err)
	}
	if dirty.Version != 1 || !strings.Contains(err.Error(), db.Path) {
		t.Errorf("error = %v, want version 1 and path %s", err, db.Path)
	}
}

func TestOpenUsesWAL(t *testing.T) {
	db := testDB(t)
	var mode string
	if err := db.QueryRow(`PRAGMA journal_mode`).Scan(&mode); err != nil {
		t.Fatal(err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
	if filepath.Base(db.Path) != "test.db" {
		t.Errorf("Path = %q", db.Path)
	}
}

func TestSeedChatsKeepsOrder(t *testing.T) {
	db := testDB(t)

	n, err := db.SeedChats(seedChats())
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("seeded %d chats, want 3", n)
	}

	chats, err := db.ListChats()
	if err != nil {
		t.Fatal(err)
	}
	wantIDs := []int64{10, 20, 5}
	if len(chats) != len(wantIDs) {
		t.Fatalf("got %d chats, want %d", len(chats), len(wantIDs))
	}
	for i, id := range wantIDs {
		if chats[i].ID != id {
			t.Errorf("chats[%d].ID = %d, want %d", i, chats[i].ID, id)
		}
	}
	if !chats[1].IsGroup || chats[1].Unread != 2 || chats[1].TimeLabel != "Yesterday" {
		t.Errorf("group chat = %+v", chats[1])
	}
}

func TestSeedChatsSkipsSeededDB(t *testing.T) {
	db := testDB(t)
	if _, err := db.SeedChats(seedChats()); err != nil {
		t.Fatal(err)
	}

	n, err := db.SeedChats([]Chat{{ID: 99, Name: "Late"}})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("re-seed inserted %d rows, want 0", n)
	}
	count, _ := db.ChatCount()
	if count != 3 {
		t.Errorf("ChatCount() = %d, want 3", count)
	}
}

func TestSeedChatsRejectsDuplicates(t *testing.T) {
	db := testDB(t)
	_, err := db.SeedChats([]Chat{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}})
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
	count, _ := db.ChatCount()
	if count != 0 {
		t.Errorf("failed seed left %d rows", count)
	}
}

func TestGetChat(t *testing.T) {
	db := testDB(t)
	if _, err := db.SeedChats(seedChats()); err != nil {
		t.Fatal(err)
	}

	c, err := db.GetChat(5)
	if err != nil {
		t.Fatal(err)
	}
	if c == nil || c.Name != "John Public" || !c.IsFavorite {
		t.Errorf("GetChat(5) = %+v", c)
	}

	c, err = db.GetChat(404)
	if err != nil {
		t.Fatal(err)
	}
	if c != nil {
		t.Errorf("expected nil for missing chat, got %+v", c)
	}
}

func TestUnreadWrites(t *testing.T) {
	db := testDB(t)
	if _, err := db.SeedChats(seedChats()); err != nil {
		t.Fatal(err)
	}

	if err := db.SetUnread(10, 4); err != nil {
		t.Fatal(err)
	}
	c, _ := db.GetChat(10)
	if c.Unread != 4 {
		t.Errorf("unread = %d, want 4", c.Unread)
	}

	if err := db.SetUnread(10, -1); err == nil {
		t.Error("negative unread should violate the check constraint")
	}

	if err := db.ResetAllUnread(); err != nil {
		t.Fatal(err)
	}
	chats, _ := db.ListChats()
	for _, c := range chats {
		if c.Unread != 0 {
			t.Errorf("chat %d unread = %d after reset", c.ID, c.Unread)
		}
	}
}

func TestEntriesAppendAndList(t *testing.T) {
	db := testDB(t)
	if _, err := db.SeedChats(seedChats()); err != nil {
		t.Fatal(err)
	}

	entries := []Entry{
		{ID: "e1", ChatID: 10, Direction: "outgoing", Kind: "text", Body: "hi", At: 3000},
		{ID: "e2", ChatID: 10, Direction: "incoming", Kind: "text", Body: "Thanks", At: 1000},
		{ID: "e3", ChatID: 20, Direction: "outgoing", Kind: "sticker", Body: "😀", At: 2000},
		{ID: "e4", ChatID: 10, Direction: "outgoing", Kind: "image", MIME: "image/png", Data: []byte{1, 2, 3}, At: 4000},
	}
	for i := range entries {
		if err := db.AppendEntry(&entries[i]); err != nil {
			t.Fatalf("AppendEntry(%s): %v", entries[i].ID, err)
		}
	}

	got, err := db.ListEntries(10)
	if err != nil {
		t.Fatal(err)
	}
	wantIDs := []string{"e1", "e2", "e4"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d entries, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("entries[%d].ID = %s, want %s (append order)", i, got[i].ID, id)
		}
	}
	if !bytes.Equal(got[2].Data, []byte{1, 2, 3}) || got[2].MIME != "image/png" {
		t.Errorf("image entry = %+v", got[2])
	}

	n, _ := db.EntryCount()
	if n != 4 {
		t.Errorf("EntryCount() = %d, want 4", n)
	}
}

func TestAppendEntryUnknownChat(t *testing.T) {
	db := testDB(t)
	err := db.AppendEntry(&Entry{ID: "x", ChatID: 77, Direction: "outgoing", Kind: "text", Body: "lost", At: 1})
	if err == nil {
		t.Error("expected foreign key error for unknown chat")
	}
}

func TestClearEntries(t *testing.T) {
	db := testDB(t)
	if _, err := db.SeedChats(seedChats()); err != nil {
		t.Fatal(err)
	}
	for _, e := range []Entry{
		{ID: "a", ChatID: 10, Direction: "outgoing", Kind: "text", Body: "1", At: 1},
		{ID: "b", ChatID: 10, Direction: "incoming", Kind: "text", Body: "2", At: 2},
		{ID: "c", ChatID: 5, Direction: "outgoing", Kind: "text", Body: "3", At: 3},
	} {
		if err := db.AppendEntry(&e); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := db.ClearEntries(10)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 2 {
		t.Errorf("removed %d, want 2", removed)
	}
	left, _ := db.ListEntries(5)
	if len(left) != 1 {
		t.Errorf("other chat lost entries: %d", len(left))
	}
}
