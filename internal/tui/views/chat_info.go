package views

import (
	"fmt"

	"github.com/matheus3301/wppmock/internal/api"
	"github.com/matheus3301/wppmock/internal/conversation"
	"github.com/matheus3301/wppmock/internal/tui/ui"
	"github.com/rivo/tview"
)

// ChatInfo displays the details of the open chat.
type ChatInfo struct {
	*tview.TextView
	theme *ui.Theme
}

// NewChatInfo creates a new chat details view.
func NewChatInfo(theme *ui.Theme) *ChatInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Chat Details ")
	tv.SetTitleColor(theme.TitleColor)

	return &ChatInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Name implements Component.
func (ci *ChatInfo) Name() string { return "Details" }

// Init implements Component.
func (ci *ChatInfo) Init() {}

// Start implements Component.
func (ci *ChatInfo) Start() {}

// Stop implements Component.
func (ci *ChatInfo) Stop() {}

// Hints implements Component.
func (ci *ChatInfo) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
		{Key: ":", Description: "Command"},
		{Key: "?", Description: "Help"},
	}
}

// Update renders the open chat's details and transcript counters.
func (ci *ChatInfo) Update(snap api.Conversation) {
	ci.Clear()
	if snap.Chat == nil {
		_, _ = fmt.Fprint(ci, "\n No chat open")
		ci.SetTitle(" Chat Details ")
		return
	}
	c := snap.Chat

	fg := hexColor(ci.theme.FgColor)
	ct := hexColor(ci.theme.CounterColor)

	chatType := "Direct Message"
	if c.IsGroup {
		chatType = "Group"
	}

	sent, received := 0, 0
	for _, e := range snap.Entries {
		if e.Direction == conversation.Outgoing {
			sent++
		} else {
			received++
		}
	}

	text := fmt.Sprintf(
		"\n [%s::b]Name:[-:-:-]      [%s]%s[-]\n"+
			" [%s::b]Initials:[-:-:-]  [%s]%s[-]\n"+
			" [%s::b]ID:[-:-:-]        [%s]%d[-]\n"+
			" [%s::b]Type:[-:-:-]      [%s]%s[-]\n"+
			" [%s::b]Presence:[-:-:-]  [%s]%s[-]\n"+
			" [%s::b]Favorite:[-:-:-]  [%s]%t[-]\n"+
			" [%s::b]Last seen:[-:-:-] [%s]%s[-]\n"+
			" [%s::b]Preview:[-:-:-]   [%s]%s[-]\n"+
			" [%s::b]Sent:[-:-:-]      [%s]%d[-]\n"+
			" [%s::b]Received:[-:-:-]  [%s]%d[-]\n"+
			" [%s::b]Pending:[-:-:-]   [%s]%d[-]",
		fg, ct, tview.Escape(sanitizeForTerminal(c.Name)),
		fg, ct, tview.Escape(c.Initials()),
		fg, ct, c.ID,
		fg, ct, chatType,
		fg, ct, c.Status(),
		fg, ct, c.IsFavorite,
		fg, ct, tview.Escape(c.Time),
		fg, ct, tview.Escape(sanitizeForTerminal(c.Preview)),
		fg, ct, sent,
		fg, ct, received,
		fg, ct, snap.Pending,
	)

	_, _ = fmt.Fprint(ci, text)
	ci.SetTitle(fmt.Sprintf(" %s Details ", tview.Escape(sanitizeForTerminal(c.Name))))
}

func hexColor(c interface{ Hex() int32 }) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
