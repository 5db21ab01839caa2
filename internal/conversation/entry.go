package conversation

import (
	"strings"
	"time"
)

// Direction tells whether an entry was sent or received.
type Direction string

const (
	Outgoing Direction = "outgoing"
	Incoming Direction = "incoming"
)

// Kind is the payload variant of an entry.
type Kind string

const (
	KindText    Kind = "text"
	KindSticker Kind = "sticker" // rendered at a larger scale than text
	KindImage   Kind = "image"
)

// Image is an opaque captured picture.
type Image struct {
	MIME string `json:"mime"`
	Data []byte `json:"data"`
}

// Entry is one message bubble in a transcript.
type Entry struct {
	ID        string    `json:"id"`
	ChatID    int64     `json:"chat_id"` // 0 when sent with no chat open
	Direction Direction `json:"direction"`
	Kind      Kind      `json:"kind"`
	Text      string    `json:"text,omitempty"`
	Markup    string    `json:"markup,omitempty"` // Text with HTML-special characters escaped
	Image     *Image    `json:"image,omitempty"`
	At        time.Time `json:"at"`
	Time      string    `json:"time"` // HH:MM
}

// TypingChange is the payload of a typing indicator toggle.
type TypingChange struct {
	ChatID int64 `json:"chat_id"`
	Typing bool  `json:"typing"`
}

var markupReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeMarkup maps & < > " ' to character references so user text is always
// displayed literally.
func EscapeMarkup(s string) string {
	return markupReplacer.Replace(s)
}

// ShortTime formats t as a zero-padded 24-hour HH:MM label.
func ShortTime(t time.Time) string {
	return t.Format("15:04")
}
