package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("conversation.", 10)
	defer unsub()

	b.Publish(Event{Kind: "conversation.opened", Timestamp: time.Now(), Payload: int64(2)})

	select {
	case evt := <-ch:
		if evt.Kind != "conversation.opened" {
			t.Errorf("got kind %q, want conversation.opened", evt.Kind)
		}
		if evt.Payload.(int64) != 2 {
			t.Errorf("payload = %v, want 2", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("chatlist.", 10)
	defer unsub()

	b.Publish(Event{Kind: "conversation.typing_changed"})
	b.Publish(Event{Kind: "chatlist.rendered"})

	select {
	case evt := <-ch:
		if evt.Kind != "chatlist.rendered" {
			t.Errorf("got kind %q, want chatlist.rendered", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	// Ensure the conversation event was not delivered.
	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEmptyNamespaceReceivesEverything(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("", 10)
	defer unsub()

	b.Emit("chatlist.rendered", time.Now(), nil)
	b.Emit("daemon.status_changed", time.Now(), nil)

	for _, want := range []string{"chatlist.rendered", "daemon.status_changed"} {
		select {
		case evt := <-ch:
			if evt.Kind != want {
				t.Errorf("got kind %q, want %q", evt.Kind, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for %s", want)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("conversation.", 10)
	unsub()

	b.Publish(Event{Kind: "conversation.closed"})

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
	if n := b.Subscribers(); n != 0 {
		t.Errorf("Subscribers() = %d, want 0", n)
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("test.", 1)
	defer unsub()

	b.Publish(Event{Kind: "test.one"})
	// Dropped: buffer is full.
	b.Publish(Event{Kind: "test.two"})

	evt := <-ch
	if evt.Kind != "test.one" {
		t.Errorf("got %q, want test.one", evt.Kind)
	}
}

func TestPublishOnNilBus(t *testing.T) {
	var b *Bus
	b.Publish(Event{Kind: "conversation.opened"})
	b.Emit("conversation.closed", time.Now(), nil)
}

func TestEventNamespace(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"conversation.entry_appended", "conversation"},
		{"chatlist.rendered", "chatlist"},
		{"bare", "bare"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := (Event{Kind: tt.kind}).Namespace(); got != tt.want {
			t.Errorf("Namespace(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
