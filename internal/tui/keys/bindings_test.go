package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewBindingShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	var got string
	r.AddGlobal("quit", &Action{Key: tcell.KeyRune, Rune: 'q', Handler: func() { got = "global" }})
	r.AddView("thread", "back", &Action{Key: tcell.KeyRune, Rune: 'q', Handler: func() { got = "view" }})

	if !r.HandleEvent("thread", runeEvent('q')) {
		t.Fatal("expected thread q to be handled")
	}
	if got != "view" {
		t.Fatalf("got %q, want view", got)
	}

	if !r.HandleEvent("chats", runeEvent('q')) {
		t.Fatal("expected chats q to be handled")
	}
	if got != "global" {
		t.Fatalf("got %q, want global", got)
	}
}

func TestHandleEventMisses(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal("help", &Action{Key: tcell.KeyRune, Rune: '?'})
	if r.HandleEvent("chats", runeEvent('x')) {
		t.Fatal("x should not match")
	}
	if !r.HandleEvent("chats", runeEvent('?')) {
		t.Fatal("? should match even without a handler")
	}
}

func TestSpecialKeys(t *testing.T) {
	r := NewRegistry()
	hit := 0
	r.AddView("chats", "next-tab", &Action{Key: tcell.KeyTab, Handler: func() { hit++ }})
	r.HandleEvent("chats", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	r.HandleEvent("chats", runeEvent('\t'))
	if hit != 1 {
		t.Fatalf("hit = %d, want 1", hit)
	}
}

func TestHintsKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal("help", &Action{Label: "?", Description: "Help", Visible: true})
	r.AddGlobal("quit", &Action{Label: "q", Description: "Quit", Visible: true})
	r.AddView("chats", "filter", &Action{Label: "/", Description: "Filter", Visible: true})
	r.AddView("chats", "hidden", &Action{Label: "x", Description: "Hidden"})
	r.AddView("chats", "read-all", &Action{Label: "a", Description: "Read all", Visible: true})
	// Replacing keeps the original slot.
	r.AddGlobal("help", &Action{Label: "?", Description: "Keys", Visible: true})

	got := r.Hints("chats")
	want := []Hint{
		{Key: "/", Description: "Filter"},
		{Key: "a", Description: "Read all"},
		{Key: "?", Description: "Keys"},
		{Key: "q", Description: "Quit"},
	}
	if len(got) != len(want) {
		t.Fatalf("hints = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hint %d = %v, want %v", i, got[i], want[i])
		}
	}

	if n := len(r.Hints("unknown")); n != 2 {
		t.Errorf("unknown view hints = %d, want 2 globals", n)
	}

	if n := len(r.ViewHints("chats")); n != 2 {
		t.Errorf("view hints = %d, want 2", n)
	}
	if g := r.GlobalHints(); len(g) != 2 || g[0].Description != "Keys" {
		t.Errorf("global hints = %v", g)
	}
}
