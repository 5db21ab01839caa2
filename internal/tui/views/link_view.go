package views

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/matheus3301/wppmock/internal/tui/ui"
	"github.com/rivo/tview"
	qrcode "github.com/skip2/go-qrcode"
)

// LinkURIPrefix starts every pairing payload encoded in the QR code.
const LinkURIPrefix = "wppmock://link/"

// Pairing is one simulated link-device attempt.
type Pairing struct {
	Token string
	Code  string
}

// NewPairing returns a fresh random pairing. Code is the 8-character form a
// user would type instead of scanning.
func NewPairing() Pairing {
	token := uuid.New()
	hex := strings.ToUpper(strings.ReplaceAll(token.String(), "-", ""))
	return Pairing{Token: token.String(), Code: hex[:4] + "-" + hex[4:8]}
}

// URI is the payload encoded in the QR code.
func (p Pairing) URI() string { return LinkURIPrefix + p.Token }

// LinkView shows a link-device QR code. Linking is simulated: nothing ever
// scans it and no connection is made.
type LinkView struct {
	*tview.TextView
	theme   *ui.Theme
	pairing Pairing
}

// NewLinkView creates a link view with a fresh pairing.
func NewLinkView(theme *ui.Theme) *LinkView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Link a Device ")
	tv.SetTitleColor(theme.TitleColor)

	lv := &LinkView{TextView: tv, theme: theme}
	lv.Refresh()
	return lv
}

// Name implements Component.
func (lv *LinkView) Name() string { return "Link" }

// Init implements Component.
func (lv *LinkView) Init() {}

// Start implements Component.
func (lv *LinkView) Start() { lv.Refresh() }

// Stop implements Component.
func (lv *LinkView) Stop() {}

// Hints implements Component.
func (lv *LinkView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "r", Description: "New code"},
		{Key: "Esc", Description: "Back"},
	}
}

// Pairing returns the pairing currently shown.
func (lv *LinkView) Pairing() Pairing { return lv.pairing }

// Refresh generates a new pairing and redraws the QR code.
func (lv *LinkView) Refresh() {
	lv.pairing = NewPairing()
	lv.Clear()
	_, _ = fmt.Fprintf(lv, "\n  Scan this code from the device you want to link:\n\n%s\n  Or enter the code [%s::b]%s[-:-:-]\n\n  [::d]Linking is simulated. Nothing will connect.[-:-:-]",
		renderQR(lv.pairing.URI()), hexColor(lv.theme.CounterColor), lv.pairing.Code)
}

// renderQR converts a string to a compact QR code using Unicode
// half-block characters. Two bitmap rows become one terminal line.
func renderQR(content string) string {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return "  (QR generation failed: " + err.Error() + ")"
	}

	bitmap := qr.Bitmap()
	rows := len(bitmap)
	cols := 0
	if rows > 0 {
		cols = len(bitmap[0])
	}

	var sb strings.Builder
	for y := 0; y < rows; y += 2 {
		sb.WriteString("  ")
		for x := 0; x < cols; x++ {
			top := bitmap[y][x] // true = black module
			bot := y+1 < rows && bitmap[y+1][x]
			switch {
			case top && bot:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bot:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
