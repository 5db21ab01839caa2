package chat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTab is returned by ParseTab for names outside the tab set.
var ErrUnknownTab = errors.New("unknown tab")

// Tab is a named filter over the chat list.
type Tab string

const (
	TabChats     Tab = "chats"
	TabUnread    Tab = "unread"
	TabFavorites Tab = "favorites"
	TabGroups    Tab = "groups"
	TabStatus    Tab = "status"
	TabCalls     Tab = "calls"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabChats, TabUnread, TabFavorites, TabGroups, TabStatus, TabCalls}

// ParseTab resolves a tab name, ignoring case and surrounding space.
func ParseTab(name string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Tabs {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTab, name)
}

// Title returns the tab label as shown in the tab bar.
func (t Tab) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// match reports whether r belongs to the tab. Placeholder tabs match nothing.
func (t Tab) match(r *Record) bool {
	switch t {
	case TabChats:
		return true
	case TabUnread:
		return r.Unread > 0
	case TabFavorites:
		return r.IsFavorite
	case TabGroups:
		return r.IsGroup
	default:
		return false
	}
}
