package views

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/rivo/tview"
)

// StatusBar displays persistent session status and the local clock.
type StatusBar struct {
	*tview.TextView
	clock   clock.Clock
	session string
	status  string
	where   string
	live    bool
}

// NewStatusBar creates a new status bar. A nil clock means wall time.
func NewStatusBar(clk clock.Clock) *StatusBar {
	if clk == nil {
		clk = clock.New()
	}
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv, clock: clk}
}

// SetSession updates the session name display.
func (sb *StatusBar) SetSession(name string) {
	sb.session = name
	sb.render()
}

// SetStatus updates the daemon status display.
func (sb *StatusBar) SetStatus(status string) {
	sb.status = status
	sb.render()
}

// SetWhere shows the current tab or chat.
func (sb *StatusBar) SetWhere(where string) {
	sb.where = where
	sb.render()
}

// SetLive toggles the live-updates indicator.
func (sb *StatusBar) SetLive(live bool) {
	sb.live = live
	sb.render()
}

// Tick redraws the clock.
func (sb *StatusBar) Tick() {
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()
	_, _ = fmt.Fprint(sb, sb.line())
}

func (sb *StatusBar) line() string {
	liveIcon := "[red]○[-]"
	if sb.live {
		liveIcon = "[green]●[-]"
	}

	line := fmt.Sprintf(" [::b]%s[-:-:-] | %s %s | %s", tview.Escape(sb.session), sb.status, liveIcon, sb.clock.Now().Format("15:04"))
	if sb.where != "" {
		line += " | " + tview.Escape(sb.where)
	}
	return line
}
