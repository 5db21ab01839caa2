package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// crumbWidth caps a single crumb so long chat names leave room for the
// rest of the trail.
const crumbWidth = 24

// Crumbs is the one-line trail under the pages, e.g. "Chats > Ngeima Group > Stickers".
type Crumbs struct {
	*tview.TextView
	theme *Theme
}

// NewCrumbs creates an empty crumb bar.
func NewCrumbs(theme *Theme) *Crumbs {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)

	return &Crumbs{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders one crumb per stack entry, the last one highlighted.
// Names come from chat records, so they are clipped and escaped.
func (c *Crumbs) Update(names []string) {
	c.Clear()
	if len(names) == 0 {
		return
	}

	parts := make([]string, 0, len(names))
	for i, name := range names {
		label := tview.Escape(clipCrumb(name))
		if i == len(names)-1 {
			parts = append(parts, fmt.Sprintf("[%s:%s:b] %s [-:-:-]",
				colorName(c.theme.CrumbActiveFg), colorName(c.theme.CrumbActiveBg), label))
			continue
		}
		parts = append(parts, fmt.Sprintf("[%s:%s:] %s [-:-:-]",
			colorName(c.theme.CrumbInactiveFg), colorName(c.theme.CrumbInactiveBg), label))
	}
	_, _ = fmt.Fprint(c, strings.Join(parts, " > "))
}

func clipCrumb(name string) string {
	r := []rune(name)
	if len(r) <= crumbWidth {
		return name
	}
	return string(r[:crumbWidth-1]) + "…"
}

// colorName returns the tview tag name for c, falling back to hex.
func colorName(c tcell.Color) string {
	for name, val := range tcell.ColorNames {
		if val == c {
			return name
		}
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
