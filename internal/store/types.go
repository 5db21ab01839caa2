package store

// Chat is a persisted chat-list row.
type Chat struct {
	ID         int64
	Name       string
	Preview    string
	TimeLabel  string
	Unread     int
	IsFavorite bool
	IsGroup    bool
	IsOnline   bool
	Position   int
}

// Entry is a persisted transcript entry.
type Entry struct {
	ID        string
	ChatID    int64
	Direction string // outgoing, incoming
	Kind      string // text, sticker, image
	Body      string
	MIME      string
	Data      []byte
	At        int64 // unix millis
}
