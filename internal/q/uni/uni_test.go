package uni

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextWidthASCII(t *testing.T) {
	require.Equal(t, 0, TextWidth("", nil))
	require.Equal(t, 11, TextWidth("hello world", nil))
}

func TestTextWidthWide(t *testing.T) {
	require.Equal(t, 2, TextWidth("世", nil))
	require.Equal(t, 3, TextWidth("a世", nil))
}

func TestRuneWidth(t *testing.T) {
	require.Equal(t, 1, RuneWidth('x', nil))
	require.Equal(t, 2, RuneWidth('界', nil))
}
