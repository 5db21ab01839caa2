package model

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/api"
	"github.com/matheus3301/wppmock/internal/app"
	"github.com/matheus3301/wppmock/internal/bus"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"github.com/matheus3301/wppmock/internal/status"
)

func envelope(t *testing.T, kind string, payload any) *wppmockv1.EventEnvelope {
	t.Helper()
	raw, err := api.EncodePayload(bus.Event{Kind: kind, Payload: payload})
	if err != nil {
		t.Fatalf("encode %s: %v", kind, err)
	}
	return &wppmockv1.EventEnvelope{EventId: "e", Session: "test", Kind: kind, OccurredAtUnixMs: 1000, PayloadVersion: api.PayloadVersion, Payload: raw}
}

func apply(t *testing.T, vm *ViewModel, kind string, payload any) bool {
	t.Helper()
	changed, err := vm.Apply(envelope(t, kind, payload))
	if err != nil {
		t.Fatalf("Apply(%s): %v", kind, err)
	}
	return changed
}

func TestApplyConversationEvents(t *testing.T) {
	vm := NewViewModel(nil, clock.NewMock())
	rec := chat.Record{ID: 2, Name: "Ngeima Group", IsGroup: true}

	if !apply(t, vm, conversation.EventOpened, rec) {
		t.Fatal("open should change state")
	}
	if apply(t, vm, conversation.EventOpened, rec) {
		t.Error("reopening the same chat should not reset the cache")
	}

	out := conversation.Entry{ID: "a", ChatID: 2, Direction: conversation.Outgoing, Kind: conversation.KindText, Text: "hi", Time: "09:05"}
	if !apply(t, vm, conversation.EventEntryAppended, out) {
		t.Fatal("entry should be appended")
	}
	if apply(t, vm, conversation.EventEntryAppended, out) {
		t.Error("duplicate entry id should be ignored")
	}
	if apply(t, vm, conversation.EventEntryAppended, conversation.Entry{ID: "b", ChatID: 9}) {
		t.Error("entry for another chat should be ignored")
	}

	if !apply(t, vm, conversation.EventTypingChanged, conversation.TypingChange{ChatID: 2, Typing: true}) {
		t.Fatal("typing should toggle")
	}
	if apply(t, vm, conversation.EventTypingChanged, conversation.TypingChange{ChatID: 3, Typing: false}) {
		t.Error("typing for another chat should be ignored")
	}

	conv := vm.Conversation()
	if conv.State != conversation.Open || conv.Chat.ID != 2 || !conv.Typing || len(conv.Entries) != 1 {
		t.Fatalf("conversation = %+v", conv)
	}

	if !apply(t, vm, conversation.EventClosed, int64(2)) {
		t.Fatal("close should change state")
	}
	conv = vm.Conversation()
	if conv.State != conversation.Closed || conv.Chat != nil || len(conv.Entries) != 0 || conv.Typing {
		t.Fatalf("closed conversation = %+v", conv)
	}

	// Detached sends belong to the closed view.
	if !apply(t, vm, conversation.EventEntryAppended, conversation.Entry{ID: "c", ChatID: 0, Text: "orphan"}) {
		t.Error("detached entry should be shown while closed")
	}
}

func TestApplyChatListAndStatus(t *testing.T) {
	vm := NewViewModel(nil, clock.NewMock())
	view := app.ChatListView{
		Tab:     chat.TabStatus,
		Records: []chat.Record{},
		Counts:  map[chat.Tab]int{chat.TabChats: 5},
		Empty:   true,
		Notice:  "No status found",
	}
	if !apply(t, vm, app.EventChatListRendered, view) {
		t.Fatal("rendered list should change state")
	}
	got := vm.ChatList()
	if got.Tab != chat.TabStatus || got.Notice != "No status found" || got.Counts[chat.TabChats] != 5 {
		t.Fatalf("list = %+v", got)
	}

	// No status loaded yet.
	if apply(t, vm, status.EventStatusChanged, status.StatusChange{From: status.Ready, To: status.Stopping}) {
		t.Error("status change without a loaded status should be ignored")
	}
	if vm.SessionData() != nil {
		t.Error("SessionData should be nil before LoadStatus")
	}

	if changed, err := vm.Apply(&wppmockv1.EventEnvelope{Kind: "something.else"}); err != nil || changed {
		t.Errorf("unknown kind: changed=%v err=%v", changed, err)
	}
}

func TestApplyBadPayload(t *testing.T) {
	vm := NewViewModel(nil, nil)
	_, err := vm.Apply(&wppmockv1.EventEnvelope{Kind: conversation.EventEntryAppended, Payload: []byte{0xff}})
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSessionDataUptimeAdvances(t *testing.T) {
	clk := clock.NewMock()
	vm := NewViewModel(nil, clk)
	vm.status = &wppmockv1.GetStatusResponse{Session: "main", Status: "READY", UptimeMs: int64(time.Minute / time.Millisecond), ChatCount: 5}
	vm.loaded = clk.Now()

	clk.Add(2 * time.Minute)
	data := vm.SessionData()
	if data == nil {
		t.Fatal("expected session data")
	}
	if data.Uptime != 3*time.Minute {
		t.Errorf("uptime = %v, want 3m", data.Uptime)
	}

	if apply(t, vm, status.EventStatusChanged, status.StatusChange{From: status.Ready, To: status.Stopping}) != true {
		t.Fatal("status change should apply")
	}
	if got := vm.SessionData().Status; got != "STOPPING" {
		t.Errorf("status = %q", got)
	}
}

func TestNextTab(t *testing.T) {
	tests := []struct {
		cur  chat.Tab
		step int
		want chat.Tab
	}{
		{chat.TabChats, 1, chat.TabUnread},
		{chat.TabCalls, 1, chat.TabChats},
		{chat.TabChats, -1, chat.TabCalls},
		{chat.TabGroups, 2, chat.TabCalls},
		{"", 1, chat.TabUnread},
	}
	for _, tt := range tests {
		if got := NextTab(tt.cur, tt.step); got != tt.want {
			t.Errorf("NextTab(%q, %d) = %q, want %q", tt.cur, tt.step, got, tt.want)
		}
	}
}
