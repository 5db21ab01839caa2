package chat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Record is the metadata of one conversation thread as shown in the chat list.
// It never carries message content.
type Record struct {
	ID         int64  `json:"id" toml:"id"`
	Name       string `json:"name" toml:"name"`
	Preview    string `json:"preview" toml:"preview"`
	Time       string `json:"time" toml:"time"` // display label ("12:01", "Yesterday"), never parsed
	Unread     int    `json:"unread" toml:"unread"`
	IsFavorite bool   `json:"is_favorite" toml:"is_favorite"`
	IsGroup    bool   `json:"is_group" toml:"is_group"`
	IsOnline   bool   `json:"is_online" toml:"is_online"`
}

// Initials returns the upper-cased first letter of every word in the name.
func (r Record) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(r.Name) {
		first, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(first))
	}
	return b.String()
}

// Status returns the presence line shown in the conversation header.
func (r Record) Status() string {
	if r.IsOnline {
		return "online"
	}
	return "last seen recently"
}

// DefaultSeed returns the chats a fresh session starts with.
func DefaultSeed() []Record {
	return []Record{
		{ID: 1, Name: "Asap Ramy", Preview: "Tap to chat", Time: "12:01", IsOnline: true},
		{ID: 2, Name: "Ngeima Group", Preview: "No messages yet", Time: "Yesterday", Unread: 2, IsGroup: true},
		{ID: 3, Name: "John Public", Preview: "Say hi!", Time: "Mon", IsFavorite: true},
	}
}
