package termformat

import "strings"

// PadRight pads s on the right with spaces until its visible width equals
// width. Strings already at or beyond width are returned unchanged.
func PadRight(s string, width int) string {
	pad := width - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// Center centers s within width by visible width, placing the extra space
// on the right when the padding is odd. Strings at or beyond width are
// returned unchanged.
func Center(s string, width int) string {
	space := width - VisibleWidth(s)
	if space <= 0 {
		return s
	}
	left := space / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", space-left)
}
