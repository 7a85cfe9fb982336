// Package render turns classified token streams into fixed-width,
// column-paired terminal output. It owns all visual concerns: the color
// escape sequences, underline, wrapping, padding, and the column separator.
// Widths are always measured visibly (ANSI markers count as zero), so every
// rendered half lines up exactly at the configured column width.
package render

import (
	"github.com/lukind/worddiff/internal/diff"
	"github.com/lukind/worddiff/internal/q/termformat"
)

// Separator joins the left and right column of every output row.
const Separator = " | "

// RenderPair renders one classified line pair into zero or more output
// rows. Both sides are styled, wrapped to width, padded to the same row
// count, then each segment is right-padded to exactly width visible cells
// and joined with Separator. Rendering is pure: the same inputs always
// produce byte-identical rows.
func RenderPair(left, right []diff.StyledToken, width int, st Style) []string {
	leftLines := WrapTokens(styleTokens(left, st), width)
	rightLines := WrapTokens(styleTokens(right, st), width)

	n := max(len(leftLines), len(rightLines))
	rows := make([]string, 0, n)
	for k := 0; k < n; k++ {
		var l, r string
		if k < len(leftLines) {
			l = leftLines[k]
		}
		if k < len(rightLines) {
			r = rightLines[k]
		}
		rows = append(rows, termformat.PadRight(l, width)+Separator+termformat.PadRight(r, width))
	}
	return rows
}

// Header renders the single header row: each title centered within width
// and underlined, joined with Separator. The underline is applied whenever
// a header is configured, independent of the style toggles.
func Header(leftTitle, rightTitle string, width int) string {
	return underlined(termformat.Center(leftTitle, width)) + Separator + underlined(termformat.Center(rightTitle, width))
}

func underlined(s string) string {
	return ansiUnderline + s + ansiReset
}
