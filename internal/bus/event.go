package bus

import "time"

// Event represents a state change published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Namespace returns the part of Kind before the first dot ("conversation" for
// "conversation.entry_appended").
func (e Event) Namespace() string {
	for i := 0; i < len(e.Kind); i++ {
		if e.Kind[i] == '.' {
			return e.Kind[:i]
		}
	}
	return e.Kind
}
