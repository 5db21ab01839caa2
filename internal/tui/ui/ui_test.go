package ui

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rivo/tview"
)

func TestPagesStack(t *testing.T) {
	p := NewPages()
	for _, name := range []string{"chats", "thread", "help"} {
		p.AddPage(name, tview.NewBox(), true, false)
	}
	var seen [][]string
	p.SetOnChange(func(stack []string) { seen = append(seen, stack) })

	p.Push("chats")
	p.Push("thread")
	p.Push("help")
	if p.Current() != "help" || p.Depth() != 3 {
		t.Fatalf("current=%q depth=%d", p.Current(), p.Depth())
	}
	if front, _ := p.GetFrontPage(); front != "help" {
		t.Errorf("front page = %q", front)
	}

	if got := p.Pop(); got != "help" {
		t.Errorf("Pop = %q", got)
	}
	if p.Current() != "thread" {
		t.Errorf("current after pop = %q", p.Current())
	}

	p.Reset("chats")
	if !slices.Equal(p.Stack(), []string{"chats"}) {
		t.Errorf("stack after reset = %v", p.Stack())
	}
	if len(seen) != 5 {
		t.Errorf("onChange fired %d times, want 5", len(seen))
	}

	p.Pop()
	if p.Pop() != "" || p.Current() != "" {
		t.Error("pop on empty stack should be a no-op")
	}
}

func TestPagesPushTwiceKeepsOneEntry(t *testing.T) {
	p := NewPages()
	for _, name := range []string{"chats", "stickers"} {
		p.AddPage(name, tview.NewBox(), true, false)
	}
	fired := 0
	p.SetOnChange(func([]string) { fired++ })

	p.Push("chats")
	p.Push("stickers")
	p.Push("stickers")
	if !slices.Equal(p.Stack(), []string{"chats", "stickers"}) {
		t.Errorf("stack = %v", p.Stack())
	}
	if fired != 2 {
		t.Errorf("onChange fired %d times, want 2", fired)
	}
}

func TestPagesRaise(t *testing.T) {
	p := NewPages()
	for _, name := range []string{"chats", "thread", "details", "stickers", "help"} {
		p.AddPage(name, tview.NewBox(), true, false)
	}
	p.Push("chats")
	p.Push("thread")
	p.Push("details")
	p.Push("stickers")

	p.Raise("thread")
	if !slices.Equal(p.Stack(), []string{"chats", "thread"}) {
		t.Errorf("stack after raising thread = %v", p.Stack())
	}
	if front, _ := p.GetFrontPage(); front != "thread" {
		t.Errorf("front page = %q", front)
	}

	p.Reset("chats")
	p.Push("help")
	p.Raise("thread")
	if !slices.Equal(p.Stack(), []string{"chats", "thread"}) {
		t.Errorf("stack after raising missing thread = %v", p.Stack())
	}
	if !p.Contains("thread") || p.Contains("help") {
		t.Errorf("Contains mismatch for stack %v", p.Stack())
	}
}

func TestFlashExpires(t *testing.T) {
	clk := clock.NewMock()
	f := NewFlashModel(clk)

	if f.GetMessage() != nil {
		t.Fatal("new flash should be empty")
	}

	f.Warn("could not read image")
	m := f.GetMessage()
	if m == nil || m.Level != FlashWarn || m.Text != "could not read image" {
		t.Fatalf("message = %+v", m)
	}
	select {
	case got := <-f.Watch():
		if got.Text != m.Text {
			t.Errorf("watched %q", got.Text)
		}
	default:
		t.Error("watch channel should carry the message")
	}

	clk.Add(8 * time.Second)
	if f.Get() != "" {
		t.Error("warn flash should expire after 8s")
	}

	f.Err(errors.New("boom"))
	if m := f.GetMessage(); m == nil || m.Level != FlashErr {
		t.Fatalf("err message = %+v", m)
	}
	f.Clear()
	if f.GetMessage() != nil {
		t.Error("Clear should drop the message")
	}
}

func TestCrumbsRender(t *testing.T) {
	c := NewCrumbs(DefaultTheme())
	c.Update([]string{"chats", "thread"})
	text := c.GetText(true)
	if !strings.Contains(text, "chats") || !strings.Contains(text, "thread") || !strings.Contains(text, ">") {
		t.Errorf("crumbs = %q", text)
	}
	c.Update(nil)
	if c.GetText(true) != "" {
		t.Error("empty stack should clear crumbs")
	}
}

func TestCrumbsClipAndEscapeChatNames(t *testing.T) {
	c := NewCrumbs(DefaultTheme())
	long := "Family Reunion Planning Committee 2026"
	c.Update([]string{"Chats", "[ops] on-call", long})
	text := c.GetText(true)
	if !strings.Contains(text, "[ops] on-call") {
		t.Errorf("bracketed chat name lost: %q", text)
	}
	if strings.Contains(text, long) || !strings.Contains(text, "Family Reunion Planning…") {
		t.Errorf("long chat name not clipped: %q", text)
	}
	if got := clipCrumb("Ngeima Group"); got != "Ngeima Group" {
		t.Errorf("clipCrumb short = %q", got)
	}
}

func TestMenuAlignsKeys(t *testing.T) {
	m := NewMenu(DefaultTheme())
	m.Update([]MenuHint{
		{Key: "s", Description: "Stickers"},
		{Key: "ctrl-o", Description: "Attach image"},
		{Key: "1-9", Description: "Pick", Range: true},
	})
	lines := strings.Split(strings.TrimRight(m.GetText(true), "\n"), "\n")
	want := []string{
		"<s>      Stickers",
		"<ctrl-o> Attach image",
		"<1-9>    Pick",
	}
	if !slices.Equal(lines, want) {
		t.Errorf("menu lines = %q, want %q", lines, want)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{59 * time.Second, "0m"},
		{61 * time.Minute, "1h1m"},
		{26*time.Hour + 5*time.Minute, "26h5m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPromptModes(t *testing.T) {
	p := NewPrompt(DefaultTheme())
	p.Activate(PromptFilter)
	if p.Mode() != PromptFilter || p.GetLabel() != "/" {
		t.Errorf("filter prompt: mode=%v label=%q", p.Mode(), p.GetLabel())
	}
	p.SetText("leftover")
	p.Activate(PromptCommand)
	if p.Mode() != PromptCommand || p.GetLabel() != ":" || p.GetText() != "" {
		t.Errorf("command prompt: mode=%v label=%q text=%q", p.Mode(), p.GetLabel(), p.GetText())
	}
}
