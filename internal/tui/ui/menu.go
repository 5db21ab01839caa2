package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// Menu lists the keys of the screen on top of the stack, one per line in
// the header between the session box and the logo.
type Menu struct {
	*tview.TextView
	theme *Theme
}

// NewMenu creates an empty key menu.
func NewMenu(theme *Theme) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 2, 0)

	return &Menu{
		TextView: tv,
		theme:    theme,
	}
}

// Update replaces the menu with hints. Keys are padded to a common width
// so descriptions line up.
func (m *Menu) Update(hints []MenuHint) {
	m.Clear()

	keyColor := colorName(m.theme.MenuKeyColor)
	rangeColor := colorName(m.theme.NumericKeyColor)

	width := 0
	for _, h := range hints {
		width = max(width, tview.TaggedStringWidth(h.Key))
	}
	for _, h := range hints {
		kc := keyColor
		if h.Range {
			kc = rangeColor
		}
		pad := strings.Repeat(" ", width-tview.TaggedStringWidth(h.Key))
		_, _ = fmt.Fprintf(m, "[%s::b]<%s>[-:-:-]%s %s\n", kc, tview.Escape(h.Key), pad, h.Description)
	}
}
