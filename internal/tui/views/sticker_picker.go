package views

import (
	"github.com/matheus3301/wppmock/internal/tui/ui"
	"github.com/rivo/tview"
)

// StickerPicker lists the daemon's sticker set.
type StickerPicker struct {
	*tview.List
	theme    *ui.Theme
	stickers []string
	onPick   func(glyph string)
}

// NewStickerPicker creates an empty sticker picker.
func NewStickerPicker(theme *ui.Theme) *StickerPicker {
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true)
	list.SetBorderColor(theme.BorderColor)
	list.SetBackgroundColor(theme.BgColor)
	list.SetMainTextColor(theme.FgColor)
	list.SetShortcutColor(theme.NumericKeyColor)
	list.SetSelectedTextColor(theme.TableCursorFg)
	list.SetSelectedBackgroundColor(theme.TableCursorBg)
	list.SetTitle(" Stickers ")
	list.SetTitleColor(theme.TitleColor)

	sp := &StickerPicker{List: list, theme: theme}
	list.SetSelectedFunc(func(i int, _, _ string, _ rune) {
		if i >= 0 && i < len(sp.stickers) && sp.onPick != nil {
			sp.onPick(sp.stickers[i])
		}
	})
	return sp
}

// Name implements Component.
func (sp *StickerPicker) Name() string { return "Stickers" }

// Init implements Component.
func (sp *StickerPicker) Init() {}

// Start implements Component.
func (sp *StickerPicker) Start() {}

// Stop implements Component.
func (sp *StickerPicker) Stop() {}

// Hints implements Component.
func (sp *StickerPicker) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Send"},
		{Key: "1-9", Description: "Pick", Range: true},
		{Key: "Esc", Description: "Back"},
	}
}

// SetOnPick sets the callback fired with the chosen glyph.
func (sp *StickerPicker) SetOnPick(fn func(glyph string)) {
	sp.onPick = fn
}

// Update replaces the sticker set.
func (sp *StickerPicker) Update(stickers []string) {
	sp.stickers = stickers
	sp.Clear()
	for i, s := range stickers {
		var shortcut rune
		if i < 9 {
			shortcut = rune('1' + i)
		}
		sp.AddItem("  "+tview.Escape(sanitizeForTerminal(s)), "", shortcut, nil)
	}
	if len(stickers) == 0 {
		sp.SetTitle(" Stickers (none) ")
	} else {
		sp.SetTitle(" Stickers ")
	}
}

// Len returns the number of stickers shown.
func (sp *StickerPicker) Len() int { return len(sp.stickers) }
