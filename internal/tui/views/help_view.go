package views

import (
	"fmt"
	"strings"

	"github.com/matheus3301/wppmock/internal/tui/keys"
	"github.com/matheus3301/wppmock/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpSection is one titled group of key bindings.
type HelpSection struct {
	Title string
	Hints []keys.Hint
}

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)

	return &HelpView{
		TextView: tv,
		theme:    theme,
	}
}

// Name implements Component.
func (hv *HelpView) Name() string { return "Help" }

// Init implements Component.
func (hv *HelpView) Init() {}

// Start implements Component.
func (hv *HelpView) Start() { hv.ScrollToBeginning() }

// Stop implements Component.
func (hv *HelpView) Stop() {}

// Hints implements Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// Update renders the given binding sections followed by the command list.
func (hv *HelpView) Update(sections []HelpSection) {
	hv.Clear()
	_, _ = fmt.Fprint(hv, RenderHelp(sections, hexColor(hv.theme.MenuKeyColor)))
}

var commandHelp = []keys.Hint{
	{Key: ":tab <name>", Description: "Switch tab (chats, unread, favorites, groups, status, calls)"},
	{Key: ":search <query>", Description: "Filter chats by name or last message"},
	{Key: ":read-all", Description: "Mark every chat read"},
	{Key: ":open <id>", Description: "Open a chat by id"},
	{Key: ":close", Description: "Close the open chat"},
	{Key: ":sticker [glyph]", Description: "Send a sticker, or pick one"},
	{Key: ":image <path>", Description: "Send a picture from disk"},
	{Key: ":link", Description: "Show the link-device code"},
	{Key: ":help", Description: "Show this help"},
	{Key: ":quit", Description: "Quit"},
}

// RenderHelp formats help sections as tview-tagged text.
func RenderHelp(sections []HelpSection, keyColor string) string {
	sections = append(sections, HelpSection{Title: "Commands (: mode)", Hints: commandHelp})

	var b strings.Builder
	for _, s := range sections {
		if len(s.Hints) == 0 {
			continue
		}
		width := 0
		for _, h := range s.Hints {
			width = max(width, len(h.Key))
		}
		fmt.Fprintf(&b, "\n  [::b]%s[-:-:-]\n\n", s.Title)
		for _, h := range s.Hints {
			key := tview.Escape(h.Key)
			fmt.Fprintf(&b, "  [%s]%s[-:-:-]%s  %s\n", keyColor, key, strings.Repeat(" ", width-len(h.Key)), h.Description)
		}
	}
	return b.String()
}
