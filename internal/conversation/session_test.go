package conversation

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/matheus3301/wppmock/internal/bus"
	"github.com/matheus3301/wppmock/internal/chat"
)

var base = time.Date(2026, 10, 18, 9, 5, 0, 0, time.UTC)

// manualScheduler fires callbacks synchronously when the test advances time.
type manualScheduler struct {
	clk    *clock.Mock
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	due     time.Duration
	seq     int
	fn      func()
	done    bool
	stopped bool
}

func newManualScheduler() *manualScheduler {
	clk := clock.NewMock()
	clk.Set(base)
	return &manualScheduler{clk: clk}
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	t := &manualTimer{due: m.now + d, seq: m.seq, fn: f}
	m.seq++
	m.timers = append(m.timers, t)
	return func() bool {
		active := !t.done && !t.stopped
		t.stopped = true
		return active
	}
}

func (m *manualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		var due []*manualTimer
		for _, t := range m.timers {
			if !t.done && !t.stopped && t.due <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].due != due[j].due {
				return due[i].due < due[j].due
			}
			return due[i].seq < due[j].seq
		})
		next := due[0]
		next.done = true
		m.now = next.due
		m.clk.Set(base.Add(m.now))
		next.fn()
	}
	m.now = target
	m.clk.Set(base.Add(m.now))
}

type fixture struct {
	chats   *chat.Store
	sched   *manualScheduler
	session *Session
	events  <-chan bus.Event
}

func newFixture(t *testing.T, seed ...chat.Record) *fixture {
	t.Helper()
	if len(seed) == 0 {
		seed = chat.DefaultSeed()
	}
	chats, err := chat.NewStore(seed)
	if err != nil {
		t.Fatal(err)
	}
	b := bus.New()
	events, unsub := b.Subscribe("conversation.", 256)
	t.Cleanup(unsub)

	sched := newManualScheduler()
	return &fixture{
		chats:   chats,
		sched:   sched,
		session: NewSession(chats, sched, sched.clk, b, nil, Options{}),
		events:  events,
	}
}

// drain returns every event published so far.
func (f *fixture) drain() []bus.Event {
	var out []bus.Event
	for {
		select {
		case evt := <-f.events:
			out = append(out, evt)
		default:
			return out
		}
	}
}

func describe(evts []bus.Event) []string {
	var out []string
	for _, evt := range evts {
		switch p := evt.Payload.(type) {
		case Entry:
			out = append(out, string(p.Direction))
		case TypingChange:
			if p.Typing {
				out = append(out, "typing")
			} else {
				out = append(out, "idle")
			}
		default:
			out = append(out, evt.Kind)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSendTextThenReply(t *testing.T) {
	f := newFixture(t, chat.Record{ID: 1, Name: "Solo"})
	s := f.session

	e, ok := s.SendText("hi")
	if !ok {
		t.Fatal("SendText(hi) rejected")
	}
	if e.Direction != Outgoing || e.Kind != KindText || e.Text != "hi" {
		t.Errorf("entry = %+v", e)
	}
	if e.Time != "09:05" {
		t.Errorf("time = %q, want 09:05", e.Time)
	}
	if !s.Typing() {
		t.Error("typing indicator not shown after send")
	}

	f.sched.Advance(1199 * time.Millisecond)
	if n := len(s.Transcript()); n != 1 {
		t.Fatalf("reply arrived early: %d entries", n)
	}

	f.sched.Advance(time.Millisecond)
	got := s.Transcript()
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	reply := got[1]
	if reply.Direction != Incoming || reply.Text != "Thanks — got your message!" {
		t.Errorf("reply = %+v", reply)
	}
	if reply.Time != "09:05" {
		t.Errorf("reply time = %q, want 09:05", reply.Time)
	}
	if s.Typing() {
		t.Error("typing indicator still shown after reply")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}

	want := []string{"outgoing", "typing", "idle", "incoming"}
	if got := describe(f.drain()); !equalStrings(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestSendTextRejectsBlank(t *testing.T) {
	f := newFixture(t)
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, ok := f.session.SendText(text); ok {
			t.Errorf("SendText(%q) accepted", text)
		}
	}
	if n := len(f.session.Transcript()); n != 0 {
		t.Errorf("got %d entries, want 0", n)
	}
	if f.session.Typing() || f.session.Pending() != 0 {
		t.Error("blank send started a reply sequence")
	}
	if evts := f.drain(); len(evts) != 0 {
		t.Errorf("blank send published %v", describe(evts))
	}
}

func TestSendTextTrims(t *testing.T) {
	f := newFixture(t)
	e, _ := f.session.SendText("  hello \n")
	if e.Text != "hello" {
		t.Errorf("text = %q, want hello", e.Text)
	}
}

func TestSendTextEscapesMarkup(t *testing.T) {
	f := newFixture(t)
	e, ok := f.session.SendText("<script>")
	if !ok {
		t.Fatal("rejected")
	}
	if e.Markup != "&lt;script&gt;" {
		t.Errorf("markup = %q, want &lt;script&gt;", e.Markup)
	}
	if e.Text != "<script>" {
		t.Errorf("text = %q, want literal <script>", e.Text)
	}
}

func TestOverlappingSendsAreNotCoalesced(t *testing.T) {
	f := newFixture(t)
	s := f.session
	if _, err := s.Open(1); err != nil {
		t.Fatal(err)
	}
	f.drain()

	s.SendText("one")
	f.sched.Advance(100 * time.Millisecond)
	s.SendText("two")
	if s.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", s.Pending())
	}

	f.sched.Advance(1100 * time.Millisecond)
	if s.Typing() {
		t.Error("first reply should hide the indicator")
	}
	f.sched.Advance(100 * time.Millisecond)

	var incoming int
	for _, e := range s.Transcript() {
		if e.Direction == Incoming {
			incoming++
		}
	}
	if incoming != 2 {
		t.Errorf("got %d replies, want 2", incoming)
	}

	want := []string{
		"outgoing", "typing",
		"outgoing", "typing",
		"idle", "incoming",
		"idle", "incoming",
	}
	if got := describe(f.drain()); !equalStrings(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestSendStickerDelaysReply(t *testing.T) {
	f := newFixture(t)
	s := f.session

	e, ok := s.SendSticker("😀")
	if !ok {
		t.Fatal("sticker rejected")
	}
	if e.Kind != KindSticker || e.Markup != "😀" {
		t.Errorf("entry = %+v", e)
	}
	if s.Typing() {
		t.Error("typing shown before sticker delay")
	}

	f.sched.Advance(800 * time.Millisecond)
	if !s.Typing() {
		t.Error("typing not shown after sticker delay")
	}
	f.sched.Advance(1199 * time.Millisecond)
	if n := len(s.Transcript()); n != 1 {
		t.Fatalf("reply arrived early: %d entries", n)
	}
	f.sched.Advance(time.Millisecond)
	if n := len(s.Transcript()); n != 2 {
		t.Fatalf("got %d entries, want 2", n)
	}
}

func TestSendStickerEscapesAndRejectsBlank(t *testing.T) {
	f := newFixture(t)
	if _, ok := f.session.SendSticker("  "); ok {
		t.Error("blank sticker accepted")
	}
	e, _ := f.session.SendSticker(`<b>"x"</b>`)
	if e.Markup != "&lt;b&gt;&quot;x&quot;&lt;/b&gt;" {
		t.Errorf("markup = %q", e.Markup)
	}
}

func TestSendImage(t *testing.T) {
	f := newFixture(t)
	s := f.session

	if _, err := s.SendImage(Image{}); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("SendImage(empty) error = %v, want ErrEmptyImage", err)
	}

	e, err := s.SendImage(Image{Data: []byte{0x89, 'P', 'N', 'G'}})
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != KindImage || e.Image == nil || e.Image.MIME != "image/png" {
		t.Errorf("entry = %+v", e)
	}
	if e.Markup != "" {
		t.Errorf("image markup = %q, want empty", e.Markup)
	}
	if s.Pending() != 0 || s.Typing() {
		t.Error("image should not trigger a reply")
	}
}

func TestOpenMarksReadAndResetsTranscript(t *testing.T) {
	f := newFixture(t)
	s := f.session

	s.SendText("detached")
	rec, err := s.Open(2)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Unread != 0 {
		t.Errorf("returned record unread = %d, want 0", rec.Unread)
	}
	stored, _ := f.chats.Get(2)
	if stored.Unread != 0 {
		t.Errorf("store unread = %d, want 0", stored.Unread)
	}
	for _, r := range f.chats.RecordsForTab(chat.TabUnread) {
		if r.ID == 2 {
			t.Error("opened chat still listed under unread")
		}
	}
	if n := len(s.Transcript()); n != 0 {
		t.Errorf("transcript has %d entries after open, want 0", n)
	}
	if s.State() != Open {
		t.Errorf("state = %s, want OPEN", s.State())
	}
	if id, ok := s.ActiveID(); !ok || id != 2 {
		t.Errorf("ActiveID() = %d, %v", id, ok)
	}
}

func TestOpenUnknownChat(t *testing.T) {
	f := newFixture(t)
	if _, err := f.session.Open(404); !errors.Is(err, ErrChatNotFound) {
		t.Errorf("Open(404) error = %v, want ErrChatNotFound", err)
	}
	if f.session.State() != Closed {
		t.Errorf("state = %s, want CLOSED", f.session.State())
	}
}

func TestCloseCancelsPendingReply(t *testing.T) {
	f := newFixture(t)
	s := f.session
	if _, err := s.Open(1); err != nil {
		t.Fatal(err)
	}
	s.SendText("hi")
	s.SendSticker("👍")
	s.Close()

	if s.Typing() {
		t.Error("typing indicator survived close")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after close", s.Pending())
	}
	f.sched.Advance(5 * time.Second)
	if n := len(s.Transcript()); n != 0 {
		t.Errorf("reply leaked after close: %d entries", n)
	}
	if s.State() != Closed {
		t.Errorf("state = %s, want CLOSED", s.State())
	}
}

func TestOpenAnotherChatCancelsPendingReply(t *testing.T) {
	f := newFixture(t)
	s := f.session
	if _, err := s.Open(1); err != nil {
		t.Fatal(err)
	}
	s.SendText("for chat one")
	f.sched.Advance(600 * time.Millisecond)

	if _, err := s.Open(3); err != nil {
		t.Fatal(err)
	}
	f.sched.Advance(2 * time.Second)

	for _, e := range s.Transcript() {
		t.Errorf("unexpected entry in chat 3: %+v", e)
	}
}

func TestReopenStartsEmpty(t *testing.T) {
	f := newFixture(t)
	s := f.session
	if _, err := s.Open(1); err != nil {
		t.Fatal(err)
	}
	s.SendText("hello")
	f.sched.Advance(2 * time.Second)
	s.Close()

	if _, err := s.Open(1); err != nil {
		t.Fatal(err)
	}
	if n := len(s.Transcript()); n != 0 {
		t.Errorf("reopened transcript has %d entries, want 0", n)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.session.Close()
	f.session.Close()
	if evts := f.drain(); len(evts) != 0 {
		t.Errorf("closing a closed session published %v", describe(evts))
	}
}

type memArchive struct {
	entries map[int64][]Entry
}

func (a *memArchive) AppendEntry(e Entry) error {
	a.entries[e.ChatID] = append(a.entries[e.ChatID], e)
	return nil
}

func (a *memArchive) ListEntries(chatID int64) ([]Entry, error) {
	return append([]Entry(nil), a.entries[chatID]...), nil
}

func TestArchiveKeepsTranscriptAcrossReopen(t *testing.T) {
	f := newFixture(t)
	s := f.session
	archive := &memArchive{entries: map[int64][]Entry{}}
	s.SetArchive(archive)

	if _, err := s.Open(1); err != nil {
		t.Fatal(err)
	}
	s.SendText("persist me")
	f.sched.Advance(2 * time.Second)
	s.Close()

	// Detached sends are never archived.
	s.SendText("nowhere")

	if _, err := s.Open(1); err != nil {
		t.Fatal(err)
	}
	got := s.Transcript()
	if len(got) != 2 {
		t.Fatalf("got %d archived entries, want 2", len(got))
	}
	if got[0].Text != "persist me" || got[1].Direction != Incoming {
		t.Errorf("transcript = %+v", got)
	}
	if n := len(archive.entries[0]); n != 0 {
		t.Errorf("archived %d detached entries", n)
	}
}

func TestSnapshot(t *testing.T) {
	f := newFixture(t)
	s := f.session

	snap := s.Snapshot()
	if snap.State != Closed || snap.Chat != nil {
		t.Errorf("closed snapshot = %+v", snap)
	}

	if _, err := s.Open(3); err != nil {
		t.Fatal(err)
	}
	s.SendText("yo")
	snap = s.Snapshot()
	if snap.Chat == nil || snap.Chat.Name != "John Public" {
		t.Fatalf("snapshot chat = %+v", snap.Chat)
	}
	if len(snap.Entries) != 1 || !snap.Typing || snap.Pending != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestCustomOptions(t *testing.T) {
	chats, _ := chat.NewStore(chat.DefaultSeed())
	sched := newManualScheduler()
	s := NewSession(chats, sched, sched.clk, nil, nil, Options{ReplyText: "ok", ReplyDelay: time.Second})

	s.SendText("ping")
	sched.Advance(time.Second)
	got := s.Transcript()
	if len(got) != 2 || got[1].Text != "ok" {
		t.Errorf("transcript = %+v", got)
	}
}
