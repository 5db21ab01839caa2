package model

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/api"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"github.com/matheus3301/wppmock/internal/tui/client"
	"github.com/matheus3301/wppmock/internal/tui/ui"
)

// ViewModel caches daemon state from RPC responses and the event stream and
// signals UI refreshes.
type ViewModel struct {
	mu sync.RWMutex

	client *client.Client
	clock  clock.Clock
	status *wppmockv1.GetStatusResponse
	loaded time.Time
	list   api.ChatList
	conv   api.Conversation
	Flash  *ui.FlashModel

	refreshCh chan struct{}
}

// NewViewModel creates a view model connected to the daemon client.
// A nil clock means wall time.
func NewViewModel(c *client.Client, clk clock.Clock) *ViewModel {
	if clk == nil {
		clk = clock.New()
	}
	return &ViewModel{
		client:    c,
		clock:     clk,
		list:      api.ChatList{Tab: chat.TabChats},
		conv:      api.Conversation{State: conversation.Closed},
		Flash:     ui.NewFlashModel(clk),
		refreshCh: make(chan struct{}, 1),
	}
}

// RefreshCh returns the channel that signals UI refresh.
func (vm *ViewModel) RefreshCh() <-chan struct{} {
	return vm.refreshCh
}

func (vm *ViewModel) signalRefresh() {
	select {
	case vm.refreshCh <- struct{}{}:
	default:
	}
}

// LoadStatus fetches daemon status.
func (vm *ViewModel) LoadStatus(ctx context.Context) error {
	resp, err := vm.client.Session.GetStatus(ctx, &wppmockv1.GetStatusRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.status = resp
	vm.loaded = vm.clock.Now()
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// LoadChats fetches the current chat list view.
func (vm *ViewModel) LoadChats(ctx context.Context) error {
	return vm.setList(vm.client.Chat.ListChats(ctx, &wppmockv1.ListChatsRequest{}))
}

// SwitchTab selects a tab by name.
func (vm *ViewModel) SwitchTab(ctx context.Context, name string) error {
	return vm.setList(vm.client.Chat.SwitchTab(ctx, &wppmockv1.SwitchTabRequest{Tab: name}))
}

// CycleTab moves step tabs from the current one, wrapping around.
func (vm *ViewModel) CycleTab(ctx context.Context, step int) error {
	return vm.SwitchTab(ctx, string(NextTab(vm.ChatList().Tab, step)))
}

// Search sets the chat list query. An empty query clears the filter.
func (vm *ViewModel) Search(ctx context.Context, query string) error {
	return vm.setList(vm.client.Chat.Search(ctx, &wppmockv1.SearchRequest{Query: query}))
}

// MarkAllRead clears every unread badge.
func (vm *ViewModel) MarkAllRead(ctx context.Context) error {
	return vm.setList(vm.client.Chat.MarkAllRead(ctx, &wppmockv1.MarkAllReadRequest{}))
}

func (vm *ViewModel) setList(list *wppmockv1.ChatList, err error) error {
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.list = api.ChatListFromProto(list)
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// LoadConversation fetches the open conversation.
func (vm *ViewModel) LoadConversation(ctx context.Context) error {
	return vm.setConversation(vm.client.Conversation.GetConversation(ctx, &wppmockv1.GetConversationRequest{}))
}

// OpenChat opens a conversation.
func (vm *ViewModel) OpenChat(ctx context.Context, id int64) error {
	return vm.setConversation(vm.client.Conversation.OpenChat(ctx, &wppmockv1.OpenChatRequest{ChatId: id}))
}

// CloseChat leaves the open conversation.
func (vm *ViewModel) CloseChat(ctx context.Context) error {
	return vm.setConversation(vm.client.Conversation.CloseChat(ctx, &wppmockv1.CloseChatRequest{}))
}

func (vm *ViewModel) setConversation(conv *wppmockv1.Conversation, err error) error {
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.conv = api.ConversationFromProto(conv)
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// SendText sends a text message to the open conversation.
func (vm *ViewModel) SendText(ctx context.Context, text string) error {
	return vm.appendSent(vm.client.Conversation.SendText(ctx, &wppmockv1.SendTextRequest{Text: text}))
}

// SendSticker sends a sticker glyph.
func (vm *ViewModel) SendSticker(ctx context.Context, glyph string) error {
	return vm.appendSent(vm.client.Conversation.SendSticker(ctx, &wppmockv1.SendStickerRequest{Glyph: glyph}))
}

// SendImage reads an image file and sends it.
func (vm *ViewModel) SendImage(ctx context.Context, path string) error {
	img, err := LoadImage(path)
	if err != nil {
		return err
	}
	return vm.appendSent(vm.client.Conversation.SendImage(ctx, &wppmockv1.SendImageRequest{Mime: img.MIME, Data: img.Data}))
}

func (vm *ViewModel) appendSent(resp *wppmockv1.SendResponse, err error) error {
	if err != nil {
		return err
	}
	vm.mu.Lock()
	changed := vm.addEntry(api.EntryFromProto(resp.GetEntry()))
	vm.mu.Unlock()
	if changed {
		vm.signalRefresh()
	}
	return nil
}

// Apply folds one streamed event into the cached state. It reports whether
// anything visible changed.
func (vm *ViewModel) Apply(env *wppmockv1.EventEnvelope) (bool, error) {
	msg, err := api.DecodePayload(env)
	if errors.Is(err, api.ErrUnknownEvent) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	changed := false
	switch m := msg.(type) {
	case *wppmockv1.ChatList:
		vm.list = api.ChatListFromProto(m)
		changed = true
	case *wppmockv1.Chat:
		rec := api.ChatFromProto(m)
		if vm.conv.State != conversation.Open || vm.conv.Chat == nil || vm.conv.Chat.ID != rec.ID {
			vm.conv = api.Conversation{State: conversation.Open, Chat: &rec}
			changed = true
		}
	case *wppmockv1.ConversationClosed:
		if vm.conv.State != conversation.Closed || len(vm.conv.Entries) > 0 {
			vm.conv = api.Conversation{State: conversation.Closed}
			changed = true
		}
	case *wppmockv1.Entry:
		changed = vm.addEntry(api.EntryFromProto(m))
	case *wppmockv1.TypingChanged:
		if m.ChatId == vm.activeID() && vm.conv.Typing != m.Typing {
			vm.conv.Typing = m.Typing
			changed = true
		}
	case *wppmockv1.StatusChanged:
		if vm.status != nil {
			vm.status.Status = m.To
			vm.status.StatusSinceUnixMs = env.OccurredAtUnixMs
			changed = true
		}
	}
	if changed {
		vm.signalRefresh()
	}
	return changed, nil
}

// addEntry appends e to the cached transcript when it belongs to the open
// conversation and is not already there. Callers hold mu.
func (vm *ViewModel) addEntry(e conversation.Entry) bool {
	if e.ChatID != vm.activeID() {
		return false
	}
	if slices.ContainsFunc(vm.conv.Entries, func(x conversation.Entry) bool { return x.ID == e.ID }) {
		return false
	}
	vm.conv.Entries = append(vm.conv.Entries, e)
	return true
}

func (vm *ViewModel) activeID() int64 {
	if vm.conv.State == conversation.Open && vm.conv.Chat != nil {
		return vm.conv.Chat.ID
	}
	return 0
}

// ChatList returns a snapshot of the chat list view.
func (vm *ViewModel) ChatList() api.ChatList {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	view := vm.list
	view.Records = slices.Clone(view.Records)
	return view
}

// Conversation returns a snapshot of the open conversation.
func (vm *ViewModel) Conversation() api.Conversation {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	snap := vm.conv
	snap.Entries = slices.Clone(snap.Entries)
	return snap
}

// Stickers returns the daemon's sticker set.
func (vm *ViewModel) Stickers() []string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if vm.status == nil {
		return nil
	}
	return slices.Clone(vm.status.Stickers)
}

// SessionData returns status formatted for the header, or nil before the
// first status load. Uptime keeps counting from the last fetch.
func (vm *ViewModel) SessionData() *ui.SessionData {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if vm.status == nil {
		return nil
	}
	s := vm.status
	uptime := time.Duration(s.UptimeMs)*time.Millisecond + vm.clock.Since(vm.loaded)
	return &ui.SessionData{
		Session:    s.Session,
		Status:     s.Status,
		ChatCount:  int(s.ChatCount),
		EntryCount: int(s.EntryCount),
		Persist:    s.PersistTranscripts,
		Uptime:     uptime,
	}
}

// NextTab returns the tab step positions after cur in tab bar order.
func NextTab(cur chat.Tab, step int) chat.Tab {
	idx := slices.Index(chat.Tabs, cur)
	if idx < 0 {
		idx = 0
	}
	n := len(chat.Tabs)
	return chat.Tabs[((idx+step)%n+n)%n]
}
