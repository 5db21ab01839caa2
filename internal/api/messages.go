package api

import (
	"time"

	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/app"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
)

// ChatList is the chat list as clients render it.
type ChatList = app.ChatListView

// Conversation is the open conversation as clients render it.
type Conversation = conversation.Snapshot

func chatToProto(r chat.Record) *wppmockv1.Chat {
	return &wppmockv1.Chat{
		Id:         r.ID,
		Name:       r.Name,
		Preview:    r.Preview,
		TimeLabel:  r.Time,
		Unread:     int32(r.Unread),
		IsFavorite: r.IsFavorite,
		IsGroup:    r.IsGroup,
		IsOnline:   r.IsOnline,
	}
}

// ChatFromProto converts a wire chat row back into a record.
func ChatFromProto(c *wppmockv1.Chat) chat.Record {
	return chat.Record{
		ID:         c.GetId(),
		Name:       c.GetName(),
		Preview:    c.GetPreview(),
		Time:       c.GetTimeLabel(),
		Unread:     int(c.GetUnread()),
		IsFavorite: c.GetIsFavorite(),
		IsGroup:    c.GetIsGroup(),
		IsOnline:   c.GetIsOnline(),
	}
}

// ChatListToProto converts a rendered view. Counts follow tab bar order.
func ChatListToProto(v ChatList) *wppmockv1.ChatList {
	out := &wppmockv1.ChatList{
		Tab:    string(v.Tab),
		Query:  v.Query,
		Empty:  v.Empty,
		Notice: v.Notice,
	}
	for _, r := range v.Records {
		out.Chats = append(out.Chats, chatToProto(r))
	}
	for _, t := range chat.Tabs {
		if n, ok := v.Counts[t]; ok {
			out.Counts = append(out.Counts, &wppmockv1.TabCount{Tab: string(t), Count: int32(n)})
		}
	}
	return out
}

// ChatListFromProto converts a wire chat list into the view clients render.
func ChatListFromProto(l *wppmockv1.ChatList) ChatList {
	v := ChatList{
		Tab:    chat.Tab(l.GetTab()),
		Query:  l.GetQuery(),
		Empty:  l.GetEmpty(),
		Notice: l.GetNotice(),
	}
	if v.Tab == "" {
		v.Tab = chat.TabChats
	}
	for _, c := range l.GetChats() {
		v.Records = append(v.Records, ChatFromProto(c))
	}
	if counts := l.GetCounts(); len(counts) > 0 {
		v.Counts = make(map[chat.Tab]int, len(counts))
		for _, tc := range counts {
			v.Counts[chat.Tab(tc.GetTab())] = int(tc.GetCount())
		}
	}
	return v
}

// EntryToProto converts a transcript entry.
func EntryToProto(e conversation.Entry) *wppmockv1.Entry {
	out := &wppmockv1.Entry{
		Id:        e.ID,
		ChatId:    e.ChatID,
		Direction: string(e.Direction),
		Kind:      string(e.Kind),
		Text:      e.Text,
		Markup:    e.Markup,
		AtUnixMs:  e.At.UnixMilli(),
		Time:      e.Time,
	}
	if e.Image != nil {
		out.Image = &wppmockv1.Image{Mime: e.Image.MIME, Data: e.Image.Data}
	}
	return out
}

// EntryFromProto converts a wire entry.
func EntryFromProto(e *wppmockv1.Entry) conversation.Entry {
	out := conversation.Entry{
		ID:        e.GetId(),
		ChatID:    e.GetChatId(),
		Direction: conversation.Direction(e.GetDirection()),
		Kind:      conversation.Kind(e.GetKind()),
		Text:      e.GetText(),
		Markup:    e.GetMarkup(),
		At:        time.UnixMilli(e.GetAtUnixMs()),
		Time:      e.GetTime(),
	}
	if img := e.GetImage(); img != nil {
		out.Image = &conversation.Image{MIME: img.GetMime(), Data: img.GetData()}
	}
	return out
}

// ConversationToProto converts a session snapshot.
func ConversationToProto(s Conversation) *wppmockv1.Conversation {
	out := &wppmockv1.Conversation{
		State:   string(s.State),
		Typing:  s.Typing,
		Pending: int32(s.Pending),
	}
	if s.Chat != nil {
		out.Chat = chatToProto(*s.Chat)
	}
	for _, e := range s.Entries {
		out.Entries = append(out.Entries, EntryToProto(e))
	}
	return out
}

// ConversationFromProto converts a wire conversation into the snapshot clients render.
func ConversationFromProto(c *wppmockv1.Conversation) Conversation {
	s := Conversation{
		State:   conversation.State(c.GetState()),
		Typing:  c.GetTyping(),
		Pending: int(c.GetPending()),
	}
	if s.State == "" {
		s.State = conversation.Closed
	}
	if ch := c.GetChat(); ch != nil {
		rec := ChatFromProto(ch)
		s.Chat = &rec
	}
	for _, e := range c.GetEntries() {
		s.Entries = append(s.Entries, EntryFromProto(e))
	}
	return s
}
