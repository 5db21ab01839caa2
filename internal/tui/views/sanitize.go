package views

import (
	"strings"
	"unicode/utf8"
)

// sanitizeForTerminal strips the emoji modifiers tcell measures wrongly:
// skin tones, zero width joiners and variation selectors. Chat names and
// text bubbles stay aligned, and renderSticker can size its frame from the
// glyph width because a thumbs up with a skin tone collapses to a plain
// two-cell thumbs up.
func sanitizeForTerminal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isEmojiModifier(r) {
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

func isEmojiModifier(r rune) bool {
	switch {
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tones
		return true
	case r == 0x200D: // zero width joiner
		return true
	case r >= 0xFE00 && r <= 0xFE0F, r >= 0xE0100 && r <= 0xE01EF: // variation selectors
		return true
	default:
		return false
	}
}
