package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/matheus3301/wppmock/internal/bus"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"go.uber.org/zap"
)

var (
	// ErrStopped is returned for calls made after the controller loop exited.
	ErrStopped = errors.New("controller stopped")
	// ErrBlankMessage is returned when a text or sticker trims to nothing.
	ErrBlankMessage = errors.New("message is blank")
)

// EventChatListRendered carries a ChatListView every time the visible list changes.
const EventChatListRendered = "chatlist.rendered"

// Repository persists unread counters and, optionally, transcripts.
type Repository interface {
	SetUnread(id int64, unread int) error
	ResetAllUnread() error
	AppendEntry(e conversation.Entry) error
	ListEntries(chatID int64) ([]conversation.Entry, error)
}

// Options configures a Controller.
type Options struct {
	Session            conversation.Options
	PersistTranscripts bool
}

// AppState is the whole mutable state of the app. It is only touched from
// the controller loop.
type AppState struct {
	Tab     chat.Tab
	Query   string
	Chats   *chat.Store
	Session *conversation.Session
}

// ChatListView is the rendered chat list for one tab and query.
type ChatListView struct {
	Tab     chat.Tab         `json:"tab"`
	Query   string           `json:"query,omitempty"`
	Records []chat.Record    `json:"records"`
	Counts  map[chat.Tab]int `json:"counts"`
	Empty   bool             `json:"empty"`
	Notice  string           `json:"notice,omitempty"`
}

// Controller owns AppState and serializes every mutation onto a single
// event-loop goroutine. API handlers and timer callbacks post closures to it.
type Controller struct {
	state  AppState
	repo   Repository
	clock  clock.Clock
	bus    *bus.Bus
	logger *zap.Logger

	ops    chan func()
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a controller over chats. repo may be nil.
func New(chats *chat.Store, clk clock.Clock, b *bus.Bus, repo Repository, logger *zap.Logger, opts Options) *Controller {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		repo:   repo,
		clock:  clk,
		bus:    b,
		logger: logger,
		ops:    make(chan func(), 64),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	sess := conversation.NewSession(chats, loopScheduler{clock: clk, post: c.enqueue}, clk, b, logger, opts.Session)
	if opts.PersistTranscripts && repo != nil {
		sess.SetArchive(repo)
	}
	c.state = AppState{
		Tab:     chat.TabChats,
		Chats:   chats,
		Session: sess,
	}
	return c
}

// Start runs the event loop until Stop is called or ctx is done.
func (c *Controller) Start(ctx context.Context) {
	go func() {
		select {
		case <-ctx.Done():
			c.cancel()
		case <-c.ctx.Done():
		}
	}()
	go c.loop()
}

// Stop ends the event loop and waits for it to exit. Pending replies are dropped.
func (c *Controller) Stop() {
	c.cancel()
	<-c.done
}

func (c *Controller) loop() {
	defer close(c.done)
	for {
		select {
		case op := <-c.ops:
			op()
		case <-c.ctx.Done():
			return
		}
	}
}

// enqueue posts op to the loop without waiting. Returns false once stopped.
func (c *Controller) enqueue(op func()) bool {
	select {
	case c.ops <- op:
		return true
	case <-c.ctx.Done():
		return false
	}
}

// do runs fn on the loop and waits for it to finish.
func (c *Controller) do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	op := func() {
		defer close(finished)
		fn()
	}
	select {
	case c.ops <- op:
	case <-c.ctx.Done():
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-c.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ChatList returns the current view.
func (c *Controller) ChatList(ctx context.Context) (ChatListView, error) {
	var view ChatListView
	err := c.do(ctx, func() {
		view = c.view(c.state.Tab, c.state.Query)
	})
	return view, err
}

// Peek returns the view for tab and query without changing the current tab
// or query. An empty tab means the current one.
func (c *Controller) Peek(ctx context.Context, tab chat.Tab, query string) (ChatListView, error) {
	var view ChatListView
	err := c.do(ctx, func() {
		if tab == "" {
			tab = c.state.Tab
		}
		view = c.view(tab, query)
	})
	return view, err
}

// SwitchTab makes tab current and re-renders the list.
func (c *Controller) SwitchTab(ctx context.Context, tab chat.Tab) (ChatListView, error) {
	tab, err := chat.ParseTab(string(tab))
	if err != nil {
		return ChatListView{}, err
	}
	var view ChatListView
	err = c.do(ctx, func() {
		c.state.Tab = tab
		view = c.render()
	})
	return view, err
}

// Search sets the query applied to the current tab and re-renders the list.
func (c *Controller) Search(ctx context.Context, query string) (ChatListView, error) {
	var view ChatListView
	err := c.do(ctx, func() {
		c.state.Query = query
		view = c.render()
	})
	return view, err
}

// MarkAllRead zeroes every unread counter.
func (c *Controller) MarkAllRead(ctx context.Context) (ChatListView, error) {
	var view ChatListView
	err := c.do(ctx, func() {
		changed := c.state.Chats.MarkAllRead()
		if len(changed) > 0 && c.repo != nil {
			if err := c.repo.ResetAllUnread(); err != nil {
				c.logger.Warn("failed to persist read-all", zap.Error(err))
			}
		}
		view = c.render()
	})
	return view, err
}

// OpenChat opens the conversation with id and marks it read.
func (c *Controller) OpenChat(ctx context.Context, id int64) (conversation.Snapshot, error) {
	var (
		snap    conversation.Snapshot
		openErr error
	)
	err := c.do(ctx, func() {
		before, _ := c.state.Chats.Get(id)
		if _, openErr = c.state.Session.Open(id); openErr != nil {
			return
		}
		if before.Unread > 0 && c.repo != nil {
			if err := c.repo.SetUnread(id, 0); err != nil {
				c.logger.Warn("failed to persist unread reset", zap.Int64("chat_id", id), zap.Error(err))
			}
		}
		c.render()
		snap = c.state.Session.Snapshot()
	})
	if err != nil {
		return conversation.Snapshot{}, err
	}
	return snap, openErr
}

// CloseChat leaves the open conversation, if any.
func (c *Controller) CloseChat(ctx context.Context) (conversation.Snapshot, error) {
	var snap conversation.Snapshot
	err := c.do(ctx, func() {
		c.state.Session.Close()
		snap = c.state.Session.Snapshot()
	})
	return snap, err
}

// SendText appends an outgoing text and starts the simulated reply.
func (c *Controller) SendText(ctx context.Context, text string) (conversation.Entry, error) {
	var (
		entry conversation.Entry
		ok    bool
	)
	err := c.do(ctx, func() {
		entry, ok = c.state.Session.SendText(text)
	})
	if err != nil {
		return conversation.Entry{}, err
	}
	if !ok {
		return conversation.Entry{}, ErrBlankMessage
	}
	return entry, nil
}

// SendSticker appends an outgoing sticker and starts the delayed reply.
func (c *Controller) SendSticker(ctx context.Context, glyph string) (conversation.Entry, error) {
	var (
		entry conversation.Entry
		ok    bool
	)
	err := c.do(ctx, func() {
		entry, ok = c.state.Session.SendSticker(glyph)
	})
	if err != nil {
		return conversation.Entry{}, err
	}
	if !ok {
		return conversation.Entry{}, ErrBlankMessage
	}
	return entry, nil
}

// SendImage appends an outgoing image entry.
func (c *Controller) SendImage(ctx context.Context, img conversation.Image) (conversation.Entry, error) {
	var (
		entry   conversation.Entry
		sendErr error
	)
	err := c.do(ctx, func() {
		entry, sendErr = c.state.Session.SendImage(img)
	})
	if err != nil {
		return conversation.Entry{}, err
	}
	return entry, sendErr
}

// Conversation returns a snapshot of the conversation view.
func (c *Controller) Conversation(ctx context.Context) (conversation.Snapshot, error) {
	var snap conversation.Snapshot
	err := c.do(ctx, func() {
		snap = c.state.Session.Snapshot()
	})
	return snap, err
}

// ChatCount returns the number of chats in the store.
func (c *Controller) ChatCount(ctx context.Context) (int, error) {
	var n int
	err := c.do(ctx, func() {
		n = c.state.Chats.Len()
	})
	return n, err
}

func (c *Controller) render() ChatListView {
	view := c.view(c.state.Tab, c.state.Query)
	c.bus.Emit(EventChatListRendered, c.clock.Now(), view)
	return view
}

func (c *Controller) view(tab chat.Tab, query string) ChatListView {
	records := chat.FilterByQuery(c.state.Chats.RecordsForTab(tab), query)
	counts := make(map[chat.Tab]int, len(chat.Tabs))
	for _, t := range chat.Tabs {
		counts[t] = c.state.Chats.Count(t)
	}
	view := ChatListView{
		Tab:     tab,
		Query:   query,
		Records: records,
		Counts:  counts,
		Empty:   len(records) == 0,
	}
	if view.Empty {
		view.Notice = fmt.Sprintf("No %s found", tab)
	}
	return view
}

// loopScheduler runs session timers on the controller loop.
type loopScheduler struct {
	clock clock.Clock
	post  func(func()) bool
}

func (s loopScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	t := s.clock.AfterFunc(d, func() { s.post(f) })
	return t.Stop
}
