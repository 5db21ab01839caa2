package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/api"
	"github.com/matheus3301/wppmock/internal/bus"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"google.golang.org/protobuf/encoding/protojson"
)

func TestPrintChatList(t *testing.T) {
	var buf bytes.Buffer
	printChatList(&buf, &api.ChatList{
		Tab:   chat.TabUnread,
		Query: "ng",
		Records: []chat.Record{
			{ID: 2, Name: "Ngeima Group", Preview: "No messages yet", Time: "Yesterday", Unread: 2, IsGroup: true},
		},
		Counts: map[chat.Tab]int{chat.TabChats: 5, chat.TabUnread: 1},
	})
	out := buf.String()
	for _, want := range []string{"chats(5) [unread(1)] favorites", `filter: "ng"`, "Ngeima Group", "group"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintChatListEmpty(t *testing.T) {
	var buf bytes.Buffer
	printChatList(&buf, &api.ChatList{Tab: chat.TabCalls, Empty: true, Notice: "No calls found"})
	if !strings.Contains(buf.String(), "No calls found") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintConversation(t *testing.T) {
	rec := chat.Record{ID: 1, Name: "Asap Ramy", IsOnline: true}
	var buf bytes.Buffer
	printConversation(&buf, &api.Conversation{
		State: conversation.Open,
		Chat:  &rec,
		Entries: []conversation.Entry{
			{Direction: conversation.Outgoing, Kind: conversation.KindText, Text: "hi", Time: "09:05"},
			{Direction: conversation.Outgoing, Kind: conversation.KindImage, Image: &conversation.Image{MIME: "image/png", Data: []byte{1, 2}}, Time: "09:05"},
			{Direction: conversation.Incoming, Kind: conversation.KindSticker, Text: "🎉", Time: "09:06"},
		},
		Typing:  true,
		Pending: 1,
	})
	want := "OPEN: Asap Ramy (1), online\n" +
		"09:05 > hi\n" +
		"09:05 > image image/png (2 bytes)\n" +
		"09:06 < sticker 🎉\n" +
		"... typing\n" +
		"(1 pending)\n"
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}

	buf.Reset()
	printConversation(&buf, &api.Conversation{State: conversation.Closed})
	if buf.String() != "CLOSED, no chat open\n" {
		t.Errorf("closed output = %q", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	c := &cli{out: &buf, jsonOut: true}
	resp := &wppmockv1.GetStatusResponse{Session: "main", Status: "READY", ChatCount: 5}
	if err := c.print(resp, func(io.Writer) { t.Error("text printer used in JSON mode") }); err != nil {
		t.Fatal(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(buf.Bytes(), &fields); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	// Proto field names, zero values included.
	if _, ok := fields["open_chat_id"]; !ok {
		t.Errorf("open_chat_id missing: %s", buf.String())
	}
	var got wppmockv1.GetStatusResponse
	if err := protojson.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Session != "main" || got.ChatCount != 5 {
		t.Errorf("decoded = %v", &got)
	}

	buf.Reset()
	if err := c.print([]string{"main"}, func(io.Writer) {}); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[\n  \"main\"\n]" {
		t.Errorf("plain JSON = %q", buf.String())
	}
}

func TestEventPayloadText(t *testing.T) {
	raw, err := api.EncodePayload(bus.Event{Kind: conversation.EventTypingChanged, Payload: conversation.TypingChange{ChatID: 2, Typing: true}})
	if err != nil {
		t.Fatal(err)
	}
	env := &wppmockv1.EventEnvelope{Kind: conversation.EventTypingChanged, OccurredAtUnixMs: 1000, Payload: raw}
	payload, err := eventPayload(env)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("payload is not JSON: %v (%s)", err, payload)
	}
	if got["chat_id"] != "2" || got["typing"] != true {
		t.Errorf("payload = %v", got)
	}

	var buf bytes.Buffer
	printEvent(&buf, env, payload)
	if !strings.Contains(buf.String(), conversation.EventTypingChanged) || !strings.Contains(buf.String(), "typing") {
		t.Errorf("line = %q", buf.String())
	}

	if payload, err := eventPayload(&wppmockv1.EventEnvelope{Kind: "other.kind"}); err != nil || payload != nil {
		t.Errorf("unknown kind payload = %s, %v", payload, err)
	}
}

func TestRootCommandArgs(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr string
	}{
		{[]string{"tab"}, "accepts 1 arg"},
		{[]string{"open", "abc"}, "invalid chat id"},
		{[]string{"send"}, "requires at least 1 arg"},
		{[]string{"status", "extra"}, "unknown command"},
		{[]string{"bogus"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var buf bytes.Buffer
			root := newRootCmd(&buf)
			root.SetArgs(tt.args)
			root.SetErr(&buf)
			err := root.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
