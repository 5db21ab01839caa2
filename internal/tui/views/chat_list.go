package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/wppmock/internal/api"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/tui/ui"
	"github.com/rivo/tview"
)

// ChatList is the main view: a tab bar over the chat table.
type ChatList struct {
	*tview.Flex
	theme *ui.Theme
	tabs  *tview.TextView
	table *tview.Table
	view  api.ChatList
}

// NewChatList creates the chat list view.
func NewChatList(theme *ui.Theme) *ChatList {
	tabs := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(false)
	tabs.SetBackgroundColor(theme.BgColor)

	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	table.SetTitleColor(theme.TitleColor)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tabs, 1, 0, false).
		AddItem(table, 0, 1, true)

	cl := &ChatList{
		Flex:  flex,
		theme: theme,
		tabs:  tabs,
		table: table,
		view:  api.ChatList{Tab: chat.TabChats},
	}
	cl.render()
	return cl
}

// Name implements Component.
func (cl *ChatList) Name() string { return cl.view.Tab.Title() }

// Init implements Component.
func (cl *ChatList) Init() {}

// Start implements Component.
func (cl *ChatList) Start() {}

// Stop implements Component.
func (cl *ChatList) Stop() {}

// Hints implements Component.
func (cl *ChatList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Filter"},
		{Key: ":", Description: "Command"},
		{Key: "a", Description: "Read all"},
		{Key: "Tab", Description: "Next tab"},
		{Key: "l", Description: "Link device"},
		{Key: "?", Description: "Help"},
		{Key: "q", Description: "Quit"},
		{Key: "1-6", Description: "Tab", Range: true},
	}
}

// Table returns the chat table (for focus management).
func (cl *ChatList) Table() *tview.Table { return cl.table }

// SetSelectedFunc sets the callback fired with the chat id when a row is
// chosen with Enter.
func (cl *ChatList) SetSelectedFunc(fn func(id int64)) {
	cl.table.SetSelectedFunc(func(row, _ int) {
		if id, ok := cl.chatAt(row); ok {
			fn(id)
		}
	})
}

// Update refreshes the list with a new view. The cursor resets to the top
// when the tab changes.
func (cl *ChatList) Update(view api.ChatList) {
	tabChanged := view.Tab != cl.view.Tab
	cl.view = view
	cl.render()
	if tabChanged {
		cl.table.Select(1, 0)
		cl.table.ScrollToBeginning()
	}
}

// View returns the view currently shown.
func (cl *ChatList) View() api.ChatList { return cl.view }

// SelectedChat returns the id of the chat under the cursor.
func (cl *ChatList) SelectedChat() (int64, bool) {
	row, _ := cl.table.GetSelection()
	return cl.chatAt(row)
}

func (cl *ChatList) chatAt(row int) (int64, bool) {
	idx := row - 1 // account for header
	if idx < 0 || idx >= len(cl.view.Records) {
		return 0, false
	}
	return cl.view.Records[idx].ID, true
}

func (cl *ChatList) render() {
	cl.tabs.Clear()
	_, _ = fmt.Fprint(cl.tabs, TabBar(cl.view.Tab, cl.view.Counts, cl.theme))

	cl.table.Clear()
	headers := []struct {
		text string
		exp  int
	}{
		{" ", 0},
		{" NAME", 1},
		{" LAST MESSAGE", 2},
		{" TIME", 0},
		{" UNREAD", 0},
	}
	for col, h := range headers {
		cell := tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(cl.theme.TableHeaderFg).
			SetBackgroundColor(cl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp)
		cl.table.SetCell(0, col, cell)
	}

	if cl.view.Empty || len(cl.view.Records) == 0 {
		notice := cl.view.Notice
		if notice == "" {
			notice = fmt.Sprintf("No %s found", cl.view.Tab)
		}
		cl.table.SetCell(1, 1, tview.NewTableCell(" "+tview.Escape(notice)).
			SetSelectable(false).
			SetExpansion(1).
			SetTextColor(cl.theme.TypingColor).
			SetAttributes(tcell.AttrDim))
	}

	for i, r := range cl.view.Records {
		row := i + 1
		cl.table.SetCell(row, 0, tview.NewTableCell(" "+Avatar(r)).SetTextColor(cl.theme.CounterColor))
		cl.table.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(ChatLabel(r)))).
			SetExpansion(1).SetTextColor(cl.nameColor(r)))
		cl.table.SetCell(row, 2, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(r.Preview))).
			SetExpansion(2).SetTextColor(cl.theme.FgColor))
		cl.table.SetCell(row, 3, tview.NewTableCell(" "+tview.Escape(r.Time)).
			SetAlign(tview.AlignRight).SetTextColor(cl.theme.FgColor))
		cl.table.SetCell(row, 4, tview.NewTableCell(UnreadBadge(r.Unread)+" ").
			SetAlign(tview.AlignRight).SetTextColor(cl.theme.BadgeColor).SetAttributes(tcell.AttrBold))
	}

	title := fmt.Sprintf(" %s (%d) ", cl.view.Tab.Title(), len(cl.view.Records))
	if cl.view.Query != "" {
		title = fmt.Sprintf(" %s (%d) filter: %s ", cl.view.Tab.Title(), len(cl.view.Records), tview.Escape(cl.view.Query))
	}
	cl.table.SetTitle(title)
}

func (cl *ChatList) nameColor(r chat.Record) tcell.Color {
	if r.IsOnline {
		return cl.theme.OnlineColor
	}
	return cl.theme.FgColor
}

// Avatar returns the bracketed initials shown left of a chat name.
func Avatar(r chat.Record) string {
	initials := []rune(r.Initials())
	if len(initials) > 2 {
		initials = initials[:2]
	}
	return fmt.Sprintf("(%-2s)", string(initials))
}

// ChatLabel decorates a chat name with its presence, group and favorite markers.
func ChatLabel(r chat.Record) string {
	var b strings.Builder
	if r.IsOnline {
		b.WriteString("● ")
	}
	b.WriteString(r.Name)
	if r.IsGroup {
		b.WriteString(" [group]")
	}
	if r.IsFavorite {
		b.WriteString(" ★")
	}
	return b.String()
}

// UnreadBadge renders an unread count, or nothing for zero.
func UnreadBadge(n int) string {
	switch {
	case n <= 0:
		return ""
	case n > 99:
		return "99+"
	default:
		return fmt.Sprintf("%d", n)
	}
}

// TabBar renders the numbered tab strip with the active tab highlighted and
// non-zero counts shown as badges.
func TabBar(active chat.Tab, counts map[chat.Tab]int, theme *ui.Theme) string {
	activeFg := hexColor(theme.TabActiveFg)
	activeBg := hexColor(theme.TabActiveBg)
	numFg := hexColor(theme.NumericKeyColor)

	parts := make([]string, 0, len(chat.Tabs))
	for i, tab := range chat.Tabs {
		label := tab.Title()
		if n := counts[tab]; n > 0 {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
		if tab == active {
			parts = append(parts, fmt.Sprintf("[%s:%s:b] %d %s [-:-:-]", activeFg, activeBg, i+1, label))
		} else {
			parts = append(parts, fmt.Sprintf("[%s::b] %d[-:-:-] %s ", numFg, i+1, label))
		}
	}
	return strings.Join(parts, " ")
}
