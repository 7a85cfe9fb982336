package termformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleWidthPlain(t *testing.T) {
	require.Equal(t, 11, VisibleWidth("hello world"))
}

func TestVisibleWidthSGR(t *testing.T) {
	colored := "\x1b[31m" + "世a" + "\x1b[0m" + "!"
	require.Equal(t, 4, VisibleWidth(colored))
}

func TestVisibleWidthOSCBELTerminator(t *testing.T) {
	hyperlink := "\x1b]8;;https://example.com\x07link\x1b]8;;\x07"
	require.Equal(t, 4, VisibleWidth(hyperlink))
}

func TestVisibleWidthOSCSTTerminator(t *testing.T) {
	hyperlink := "\x1b]8;;https://example.com\x1b\\label\x1b]8;;\x1b\\"
	require.Equal(t, 5, VisibleWidth(hyperlink))
}

func TestVisibleWidthDefaultEscape(t *testing.T) {
	require.Equal(t, 2, VisibleWidth("ok\x1bc"))
}

func TestVisibleWidthEmpty(t *testing.T) {
	assert.Equal(t, 0, VisibleWidth(""))
}
