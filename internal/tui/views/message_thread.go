package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/wppmock/internal/api"
	"github.com/matheus3301/wppmock/internal/conversation"
	"github.com/matheus3301/wppmock/internal/tui/ui"
	"github.com/rivo/tview"
)

// MessageThread displays the open conversation and a composer.
type MessageThread struct {
	*tview.Flex
	theme    *ui.Theme
	messages *tview.TextView
	composer *tview.InputField
	snap     api.Conversation
	onSend   func(text string)
	onLeave  func()
}

// NewMessageThread creates a new message thread view.
func NewMessageThread(theme *ui.Theme) *MessageThread {
	messages := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	messages.SetBorder(true)
	messages.SetBorderColor(theme.BorderColor)
	messages.SetBackgroundColor(theme.BgColor)
	messages.SetTextColor(theme.FgColor)
	messages.SetTitle(" Messages ")
	messages.SetTitleColor(theme.TitleColor)

	composer := tview.NewInputField().
		SetLabel(" > ").
		SetFieldWidth(0)
	composer.SetBorder(true)
	composer.SetBorderColor(theme.BorderColor)
	composer.SetBackgroundColor(theme.BgColor)
	composer.SetFieldBackgroundColor(theme.BgColor)
	composer.SetFieldTextColor(theme.FgColor)
	composer.SetLabelColor(theme.MenuKeyColor)
	composer.SetTitle(" Type a message (i to focus) ")
	composer.SetTitleColor(theme.TitleColor)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(messages, 0, 1, true).
		AddItem(composer, 3, 0, false)

	mt := &MessageThread{
		Flex:     flex,
		theme:    theme,
		messages: messages,
		composer: composer,
		snap:     api.Conversation{State: conversation.Closed},
	}

	composer.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := composer.GetText()
			if strings.TrimSpace(text) != "" && mt.onSend != nil {
				mt.onSend(text)
			}
			composer.SetText("")
		case tcell.KeyEscape:
			if mt.onLeave != nil {
				mt.onLeave()
			}
		}
	})

	return mt
}

// Name implements Component.
func (mt *MessageThread) Name() string {
	if mt.snap.Chat != nil {
		return mt.snap.Chat.Name
	}
	return "Messages"
}

// Init implements Component.
func (mt *MessageThread) Init() {}

// Start implements Component.
func (mt *MessageThread) Start() {}

// Stop implements Component.
func (mt *MessageThread) Stop() {}

// Hints implements Component.
func (mt *MessageThread) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "s", Description: "Sticker"},
		{Key: "d", Description: "Details"},
		{Key: "Esc", Description: "Back"},
		{Key: ":", Description: "Command"},
		{Key: "?", Description: "Help"},
	}
}

// SetOnSend sets the callback when the composer submits text.
func (mt *MessageThread) SetOnSend(fn func(text string)) {
	mt.onSend = fn
}

// SetOnLeaveComposer sets the callback when Esc is pressed in the composer.
func (mt *MessageThread) SetOnLeaveComposer(fn func()) {
	mt.onLeave = fn
}

// Update re-renders the transcript.
func (mt *MessageThread) Update(snap api.Conversation) {
	mt.snap = snap
	mt.messages.SetTitle(ThreadTitle(snap))
	mt.messages.Clear()
	_, _ = fmt.Fprint(mt.messages, RenderTranscript(snap, mt.theme))
	mt.messages.ScrollToEnd()
}

// Messages returns the messages text view (for focus management).
func (mt *MessageThread) Messages() *tview.TextView {
	return mt.messages
}

// Composer returns the composer input field (for focus management).
func (mt *MessageThread) Composer() *tview.InputField {
	return mt.composer
}

// ThreadTitle is the border title: chat name and presence.
func ThreadTitle(snap api.Conversation) string {
	if snap.Chat == nil {
		return " No chat open "
	}
	return fmt.Sprintf(" %s %s · %s ", Avatar(*snap.Chat),
		tview.Escape(sanitizeForTerminal(snap.Chat.Name)), snap.Chat.Status())
}

// RenderTranscript renders entries as tview-tagged bubbles, oldest first,
// followed by the typing indicator when the other side is typing.
func RenderTranscript(snap api.Conversation, theme *ui.Theme) string {
	out := hexColor(theme.OutgoingColor)
	in := hexColor(theme.IncomingColor)
	dim := hexColor(theme.TypingColor)

	peer := "Them"
	if snap.Chat != nil {
		peer = tview.Escape(sanitizeForTerminal(snap.Chat.Name))
	}

	var b strings.Builder
	if len(snap.Entries) == 0 && !snap.Typing {
		fmt.Fprintf(&b, "\n  [%s::d]No messages yet. Press i to say hi.[-:-:-]\n", dim)
	}
	for _, e := range snap.Entries {
		color, who, arrow := in, peer, "◀"
		if e.Direction == conversation.Outgoing {
			color, who, arrow = out, "You", "▶"
		}
		fmt.Fprintf(&b, "[%s::b]%s %s[-:-:-] [%s::d]%s[-:-:-]\n", color, arrow, who, dim, e.Time)
		b.WriteString(renderBody(e))
		b.WriteString("\n")
	}
	if snap.Typing {
		fmt.Fprintf(&b, "[%s::i]%s is typing…[-:-:-]\n", dim, peer)
	}
	return b.String()
}

func renderBody(e conversation.Entry) string {
	switch e.Kind {
	case conversation.KindSticker:
		return renderSticker(e.Text)
	case conversation.KindImage:
		mime, size := "image", 0
		if e.Image != nil {
			if e.Image.MIME != "" {
				mime = e.Image.MIME
			}
			size = len(e.Image.Data)
		}
		return fmt.Sprintf("  %s\n", tview.Escape(fmt.Sprintf("[photo %s, %s]", mime, formatBytes(size))))
	default:
		var b strings.Builder
		for _, line := range strings.Split(e.Text, "\n") {
			b.WriteString("  ")
			b.WriteString(tview.Escape(sanitizeForTerminal(line)))
			b.WriteString("\n")
		}
		return b.String()
	}
}

// renderSticker draws the glyph inside a frame so it reads larger than text.
func renderSticker(glyph string) string {
	g := tview.Escape(sanitizeForTerminal(glyph))
	w := tview.TaggedStringWidth(g) + 4
	edge := strings.Repeat("─", w)
	pad := strings.Repeat(" ", w)
	return fmt.Sprintf("  ╭%s╮\n  │%s│\n  │  %s  │\n  │%s│\n  ╰%s╯\n", edge, pad, g, pad, edge)
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
