package render

import (
	"strings"

	"github.com/lukind/worddiff/internal/q/termformat"
)

// WrapTokens greedily word-wraps styled tokens to the given visible width.
// Tokens are joined with single spaces and never split, so a token's ANSI
// markers always stay attached to its text; width accounting ignores the
// markers entirely. A token whose visible width alone exceeds width is
// emitted on its own line, unbroken.
func WrapTokens(tokens []string, width int) []string {
	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, tok := range tokens {
		w := termformat.VisibleWidth(tok)
		switch {
		case curWidth == 0:
			cur.WriteString(tok)
			curWidth = w
		case curWidth+1+w <= width:
			cur.WriteByte(' ')
			cur.WriteString(tok)
			curWidth += 1 + w
		default:
			flush()
			cur.WriteString(tok)
			curWidth = w
		}
	}
	if curWidth > 0 {
		flush()
	}
	return lines
}
