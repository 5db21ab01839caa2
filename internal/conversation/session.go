package conversation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/matheus3301/wppmock/internal/bus"
	"github.com/matheus3301/wppmock/internal/chat"
	"go.uber.org/zap"
)

var (
	ErrChatNotFound = errors.New("chat not found")
	ErrEmptyImage   = errors.New("empty image")
)

const (
	DefaultReplyText    = "Thanks — got your message!"
	DefaultReplyDelay   = 1200 * time.Millisecond
	DefaultStickerDelay = 800 * time.Millisecond
	DefaultImageMIME    = "image/png"
)

// Bus event kinds published by a Session.
const (
	EventOpened        = "conversation.opened"
	EventClosed        = "conversation.closed"
	EventEntryAppended = "conversation.entry_appended"
	EventTypingChanged = "conversation.typing_changed"
)

// State is the conversation view state.
type State string

const (
	Closed State = "CLOSED"
	Open   State = "OPEN"
)

// Options tunes the simulated remote side.
type Options struct {
	ReplyText    string
	ReplyDelay   time.Duration
	StickerDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.ReplyText == "" {
		o.ReplyText = DefaultReplyText
	}
	if o.ReplyDelay <= 0 {
		o.ReplyDelay = DefaultReplyDelay
	}
	if o.StickerDelay <= 0 {
		o.StickerDelay = DefaultStickerDelay
	}
	return o
}

// Archive stores per-chat transcripts across open/close cycles.
type Archive interface {
	AppendEntry(e Entry) error
	ListEntries(chatID int64) ([]Entry, error)
}

// Snapshot is a copy of the session state for presentation.
type Snapshot struct {
	State   State        `json:"state"`
	Chat    *chat.Record `json:"chat,omitempty"`
	Entries []Entry      `json:"entries"`
	Typing  bool         `json:"typing"`
	Pending int          `json:"pending"`
}

// Session tracks the open conversation and drives the simulated exchange:
// outgoing entries, the typing indicator and the delayed auto-reply.
//
// A Session is driven from a single goroutine; its Scheduler must deliver
// callbacks on that same goroutine.
type Session struct {
	opts    Options
	chats   *chat.Store
	sched   Scheduler
	clock   clock.Clock
	bus     *bus.Bus
	archive Archive
	logger  *zap.Logger

	open       bool
	activeID   int64
	transcript []Entry
	typing     bool
	tasks      map[*task]struct{}
}

// NewSession creates a closed session over the given chat store.
func NewSession(chats *chat.Store, sched Scheduler, clk clock.Clock, b *bus.Bus, logger *zap.Logger, opts Options) *Session {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		opts:   opts.withDefaults(),
		chats:  chats,
		sched:  sched,
		clock:  clk,
		bus:    b,
		logger: logger,
		tasks:  make(map[*task]struct{}),
	}
}

// SetArchive enables transcript persistence. A nil archive keeps transcripts
// session-only: every Open starts from an empty transcript.
func (s *Session) SetArchive(a Archive) {
	s.archive = a
}

// State returns Open when a chat is active.
func (s *Session) State() State {
	if s.open {
		return Open
	}
	return Closed
}

// ActiveID returns the id of the open chat.
func (s *Session) ActiveID() (int64, bool) {
	return s.activeID, s.open
}

// Typing reports whether the typing indicator is shown.
func (s *Session) Typing() bool { return s.typing }

// Pending returns the number of scheduled reply steps.
func (s *Session) Pending() int { return len(s.tasks) }

// Transcript returns a copy of the entries appended since the chat was opened.
func (s *Session) Transcript() []Entry {
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Snapshot returns the current state for presentation.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:   s.State(),
		Entries: s.Transcript(),
		Typing:  s.typing,
		Pending: len(s.tasks),
	}
	if s.open {
		if r, ok := s.chats.Get(s.activeID); ok {
			snap.Chat = &r
		}
	}
	return snap
}

// Open makes id the active chat, marks it read and starts a fresh transcript.
// Pending replies of the previous conversation are canceled.
func (s *Session) Open(id int64) (chat.Record, error) {
	if _, ok := s.chats.Get(id); !ok {
		return chat.Record{}, fmt.Errorf("%w: %d", ErrChatNotFound, id)
	}

	s.cancelTasks()
	s.resetTyping()

	s.open = true
	s.activeID = id
	s.chats.MarkRead(id)
	s.transcript = nil

	if s.archive != nil {
		entries, err := s.archive.ListEntries(id)
		if err != nil {
			s.logger.Warn("failed to load transcript", zap.Int64("chat_id", id), zap.Error(err))
		} else {
			s.transcript = entries
		}
	}

	rec, _ := s.chats.Get(id)
	s.bus.Emit(EventOpened, s.clock.Now(), rec)
	return rec, nil
}

// Close leaves the conversation view. Pending replies are canceled and the
// transcript is dropped. Closing a closed session is a no-op.
func (s *Session) Close() {
	s.cancelTasks()
	s.resetTyping()
	s.transcript = nil
	if !s.open {
		return
	}
	id := s.activeID
	s.open = false
	s.activeID = 0
	s.bus.Emit(EventClosed, s.clock.Now(), id)
}

// SendText appends an outgoing text entry and starts the reply sequence.
// Blank text is rejected.
func (s *Session) SendText(text string) (Entry, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, false
	}
	e := s.appendEntry(Outgoing, KindText, text, nil)
	s.startReply()
	return e, true
}

// SendSticker appends an outgoing sticker and starts the reply sequence after
// the sticker delay. A blank glyph is rejected.
func (s *Session) SendSticker(glyph string) (Entry, bool) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return Entry{}, false
	}
	e := s.appendEntry(Outgoing, KindSticker, glyph, nil)
	s.schedule(s.opts.StickerDelay, s.startReply)
	return e, true
}

// SendImage appends an outgoing image entry. Images do not trigger a reply.
func (s *Session) SendImage(img Image) (Entry, error) {
	if len(img.Data) == 0 {
		return Entry{}, ErrEmptyImage
	}
	if img.MIME == "" {
		img.MIME = DefaultImageMIME
	}
	return s.appendEntry(Outgoing, KindImage, "", &img), nil
}

// startReply shows the typing indicator now and, after the reply delay,
// hides it and appends the canned reply. Every call is independent.
func (s *Session) startReply() {
	s.schedule(s.opts.ReplyDelay, func() {
		s.setTyping(false)
		s.appendEntry(Incoming, KindText, s.opts.ReplyText, nil)
	})
	s.setTyping(true)
}

func (s *Session) appendEntry(dir Direction, kind Kind, text string, img *Image) Entry {
	now := s.clock.Now()
	e := Entry{
		ID:        uuid.NewString(),
		ChatID:    s.activeID,
		Direction: dir,
		Kind:      kind,
		Text:      text,
		Markup:    EscapeMarkup(text),
		Image:     img,
		At:        now,
		Time:      ShortTime(now),
	}
	s.transcript = append(s.transcript, e)

	if s.open && s.archive != nil {
		if err := s.archive.AppendEntry(e); err != nil {
			s.logger.Warn("failed to archive entry", zap.String("entry_id", e.ID), zap.Error(err))
		}
	}

	s.bus.Emit(EventEntryAppended, now, e)
	return e
}

func (s *Session) setTyping(on bool) {
	s.typing = on
	s.bus.Emit(EventTypingChanged, s.clock.Now(), TypingChange{ChatID: s.activeID, Typing: on})
}

func (s *Session) resetTyping() {
	if s.typing {
		s.setTyping(false)
	}
}

func (s *Session) schedule(d time.Duration, fn func()) {
	t := &task{}
	s.tasks[t] = struct{}{}
	t.stop = s.sched.AfterFunc(d, func() {
		if t.canceled {
			return
		}
		delete(s.tasks, t)
		fn()
	})
}

func (s *Session) cancelTasks() {
	for t := range s.tasks {
		t.cancel()
	}
	clear(s.tasks)
}
