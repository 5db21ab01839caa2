package status

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/matheus3301/wppmock/internal/bus"
)

func TestInitialState(t *testing.T) {
	m := NewMachine(nil, nil)
	if m.Current() != Booting {
		t.Errorf("initial state = %s, want BOOTING", m.Current())
	}
}

func TestValidTransitions(t *testing.T) {
	tests := []struct {
		from State
		to   State
	}{
		{Booting, Seeding},
		{Booting, Error},
		{Booting, Stopping},
		{Seeding, Ready},
		{Seeding, Error},
		{Ready, Stopping},
		{Ready, Error},
		{Stopping, Error},
		{Error, Booting},
		{Error, Stopping},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			m := NewMachine(nil, nil)
			walkTo(t, m, tt.from)
			if err := m.Transition(tt.to); err != nil {
				t.Errorf("Transition(%s -> %s) error = %v", tt.from, tt.to, err)
			}
			if m.Current() != tt.to {
				t.Errorf("state = %s, want %s", m.Current(), tt.to)
			}
		})
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		from State
		to   State
	}{
		{Booting, Ready},
		{Ready, Seeding},
		{Ready, Booting},
		{Stopping, Ready},
		{Error, Ready},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			m := NewMachine(nil, nil)
			walkTo(t, m, tt.from)
			if err := m.Transition(tt.to); err == nil {
				t.Errorf("Transition(%s -> %s) should fail", tt.from, tt.to)
			}
			if m.Current() != tt.from {
				t.Errorf("state = %s, want %s (should not have changed)", m.Current(), tt.from)
			}
		})
	}
}

func TestTransitionEmitsEvent(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("daemon.", 10)
	defer unsub()

	clk := clock.NewMock()
	m := NewMachine(b, clk)
	clk.Add(time.Minute)
	if err := m.Transition(Seeding); err != nil {
		t.Fatal(err)
	}

	evt := <-ch
	if evt.Kind != EventStatusChanged {
		t.Errorf("event kind = %q, want %s", evt.Kind, EventStatusChanged)
	}
	if !evt.Timestamp.Equal(clk.Now()) {
		t.Errorf("timestamp = %v, want %v", evt.Timestamp, clk.Now())
	}
	change, ok := evt.Payload.(StatusChange)
	if !ok {
		t.Fatalf("payload type = %T, want StatusChange", evt.Payload)
	}
	if change.From != Booting || change.To != Seeding {
		t.Errorf("change = %v -> %v, want BOOTING -> SEEDING", change.From, change.To)
	}
}

// TestStartupAndShutdownLifecycle walks the path a daemon takes on a clean run:
// BOOTING → SEEDING → READY → STOPPING
func TestStartupAndShutdownLifecycle(t *testing.T) {
	m := NewMachine(nil, nil)

	for _, s := range []State{Seeding, Ready, Stopping} {
		if err := m.Transition(s); err != nil {
			t.Fatalf("Transition to %s: %v (current: %s)", s, err, m.Current())
		}
	}
	if m.Current() != Stopping {
		t.Errorf("final state = %s, want STOPPING", m.Current())
	}
}

func TestFail(t *testing.T) {
	m := NewMachine(nil, nil)
	walkTo(t, m, Ready)
	m.Fail()
	if m.Current() != Error {
		t.Errorf("state = %s, want ERROR", m.Current())
	}
	// Failing twice stays in Error.
	m.Fail()
	if m.Current() != Error {
		t.Errorf("state = %s, want ERROR", m.Current())
	}
}

func TestUptimeAndSince(t *testing.T) {
	clk := clock.NewMock()
	m := NewMachine(nil, clk)
	clk.Add(90 * time.Second)
	if err := m.Transition(Seeding); err != nil {
		t.Fatal(err)
	}
	if got := m.Uptime(); got != 90*time.Second {
		t.Errorf("Uptime() = %v, want 1m30s", got)
	}
	if !m.Since().Equal(clk.Now()) {
		t.Errorf("Since() = %v, want %v", m.Since(), clk.Now())
	}
}

// walkTo is a helper that transitions the machine to a target state.
func walkTo(t *testing.T, m *Machine, target State) {
	t.Helper()
	paths := map[State][]State{
		Booting:  {},
		Seeding:  {Seeding},
		Ready:    {Seeding, Ready},
		Stopping: {Stopping},
		Error:    {Error},
	}
	for _, s := range paths[target] {
		if err := m.Transition(s); err != nil {
			t.Fatalf("walkTo(%s): %v", target, err)
		}
	}
}
