package tui

import "github.com/mattn/go-runewidth"

const (
	minListWidth = 24
	chromeHeight = 7 // header, banner, status, help and card borders
)

// paneSizes splits the terminal into the theme list and the preview pane.
func paneSizes(width, height int) (listW, previewW, bodyH int) {
	usable := width - 8 // padding plus two card borders
	if usable < 0 {
		usable = 0
	}

	listW = usable / 3
	if listW < minListWidth {
		listW = minListWidth
	}
	if listW > usable {
		listW = usable
	}
	previewW = usable - listW

	bodyH = height - chromeHeight
	if bodyH < 3 {
		bodyH = 3
	}
	return listW, previewW, bodyH
}

func statusLine(t styles, busy bool, toast, errMsg string, width int) string {
	switch {
	case errMsg != "":
		return t.Error.Render(clampString("✗ "+errMsg, width))
	case busy:
		return t.Help.Render("working…")
	case toast != "":
		return t.Toast.Render(clampString("✓ "+toast, width))
	default:
		return ""
	}
}

// clampString truncates s to maxLen terminal cells, ellipsis included.
func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}
