package chat

import (
	"fmt"
	"strings"
)

// Store holds the canonical, ordered chat list. Tab views are derived from it
// on every call so they always reflect the latest unread counters.
//
// Store is not safe for concurrent use; the app controller owns it from a
// single goroutine.
type Store struct {
	records []*Record
	byID    map[int64]*Record
}

// NewStore creates a store from seed records, keeping their order.
func NewStore(seed []Record) (*Store, error) {
	s := &Store{
		records: make([]*Record, 0, len(seed)),
		byID:    make(map[int64]*Record, len(seed)),
	}
	for i := range seed {
		r := seed[i]
		if r.Name == "" {
			return nil, fmt.Errorf("chat %d: empty name", r.ID)
		}
		if r.Unread < 0 {
			return nil, fmt.Errorf("chat %d: negative unread count %d", r.ID, r.Unread)
		}
		if _, dup := s.byID[r.ID]; dup {
			return nil, fmt.Errorf("chat %d: duplicate id", r.ID)
		}
		s.records = append(s.records, &r)
		s.byID[r.ID] = &r
	}
	return s, nil
}

// Len returns the number of chats.
func (s *Store) Len() int { return len(s.records) }

// Get returns a copy of the record with the given id.
func (s *Store) Get(id int64) (Record, bool) {
	r, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// RecordsForTab returns the records belonging to tab in insertion order.
// Status and calls have no data source and are always empty. An empty result
// is a real empty result; callers must not substitute the full list.
func (s *Store) RecordsForTab(tab Tab) []Record {
	out := []Record{}
	for _, r := range s.records {
		if tab.match(r) {
			out = append(out, *r)
		}
	}
	return out
}

// Count returns how many records belong to tab.
func (s *Store) Count(tab Tab) int {
	n := 0
	for _, r := range s.records {
		if tab.match(r) {
			n++
		}
	}
	return n
}

// MarkRead zeroes the unread counter of the given chat. Unknown ids are ignored.
// Reports whether the counter changed.
func (s *Store) MarkRead(id int64) bool {
	r, ok := s.byID[id]
	if !ok || r.Unread == 0 {
		return false
	}
	r.Unread = 0
	return true
}

// MarkAllRead zeroes every unread counter and returns the ids that changed.
func (s *Store) MarkAllRead() []int64 {
	var changed []int64
	for _, r := range s.records {
		if r.Unread != 0 {
			r.Unread = 0
			changed = append(changed, r.ID)
		}
	}
	return changed
}

// FilterByQuery returns the records whose name or preview contains query,
// ignoring case. A blank query returns records unchanged.
func FilterByQuery(records []Record, query string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	out := []Record{}
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Preview), q) {
			out = append(out, r)
		}
	}
	return out
}
