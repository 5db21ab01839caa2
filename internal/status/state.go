package status

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/matheus3301/wppmock/internal/bus"
)

// EventStatusChanged is published on every accepted transition.
const EventStatusChanged = "daemon.status_changed"

// State represents a daemon lifecycle state.
type State string

const (
	Booting  State = "BOOTING"
	Seeding  State = "SEEDING"
	Ready    State = "READY"
	Stopping State = "STOPPING"
	Error    State = "ERROR"
)

// validTransitions defines allowed state transitions.
var validTransitions = map[State][]State{
	Booting:  {Seeding, Stopping, Error},
	Seeding:  {Ready, Stopping, Error},
	Ready:    {Stopping, Error},
	Stopping: {Error},
	Error:    {Booting, Stopping},
}

// Machine tracks and enforces daemon lifecycle transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
	since   time.Time
	started time.Time
	bus     *bus.Bus
	clock   clock.Clock
}

// NewMachine creates a new state machine starting in Booting state.
func NewMachine(b *bus.Bus, clk clock.Clock) *Machine {
	if clk == nil {
		clk = clock.New()
	}
	now := clk.Now()
	return &Machine{
		current: Booting,
		since:   now,
		started: now,
		bus:     b,
		clock:   clk,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Since returns when the current state was entered.
func (m *Machine) Since() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.since
}

// Uptime returns how long the machine has existed.
func (m *Machine) Uptime() time.Duration {
	return m.clock.Since(m.started)
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	allowed := validTransitions[m.current]
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	m.since = m.clock.Now()
	m.bus.Emit(EventStatusChanged, m.since, StatusChange{From: from, To: to})
	return nil
}

// Fail moves the machine to Error from any state but Error.
func (m *Machine) Fail() {
	if m.Current() != Error {
		_ = m.Transition(Error)
	}
}

// StatusChange is the payload for status change events.
type StatusChange struct {
	From State `json:"from"`
	To   State `json:"to"`
}
