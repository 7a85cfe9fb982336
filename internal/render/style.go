package render

import (
	"fmt"
	"strings"

	"github.com/lukind/worddiff/internal/diff"
)

// Color identifies one of the supported terminal foreground colors. The set
// is closed: color names coming from flags or config files are resolved to
// a Color once, during configuration resolution, and the escape sequences
// live here.
type Color int

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGrey
)

const (
	ansiUnderline = "\x1b[4m"
	ansiReset     = "\x1b[0m"
)

// ParseColor resolves a color name to a Color. Names are matched
// case-insensitively with surrounding whitespace ignored.
func ParseColor(name string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "black":
		return ColorBlack, nil
	case "red":
		return ColorRed, nil
	case "green":
		return ColorGreen, nil
	case "yellow":
		return ColorYellow, nil
	case "blue":
		return ColorBlue, nil
	case "magenta":
		return ColorMagenta, nil
	case "cyan":
		return ColorCyan, nil
	case "white":
		return ColorWhite, nil
	case "grey", "gray":
		return ColorGrey, nil
	default:
		return 0, fmt.Errorf("unsupported color %q", name)
	}
}

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGrey:
		return "grey"
	default:
		return "unknown"
	}
}

// sgr returns the SGR foreground sequence for c.
func (c Color) sgr() string {
	switch c {
	case ColorBlack:
		return "\x1b[30m"
	case ColorRed:
		return "\x1b[31m"
	case ColorGreen:
		return "\x1b[32m"
	case ColorYellow:
		return "\x1b[33m"
	case ColorBlue:
		return "\x1b[34m"
	case ColorMagenta:
		return "\x1b[35m"
	case ColorCyan:
		return "\x1b[36m"
	case ColorWhite:
		return "\x1b[37m"
	case ColorGrey:
		return "\x1b[90m"
	default:
		return ""
	}
}

// Style is the resolved visual treatment for diff tokens. Color and
// Underline toggle independently: underline may be layered onto tokens even
// when color is off.
type Style struct {
	Color     bool
	Underline bool

	ReplaceLeft  Color
	ReplaceRight Color
	Insert       Color
	Delete       Color
}

func (st Style) classColor(class diff.StyleClass) Color {
	switch class {
	case diff.ClassReplacedLeft:
		return st.ReplaceLeft
	case diff.ClassReplacedRight:
		return st.ReplaceRight
	case diff.ClassInserted:
		return st.Insert
	case diff.ClassDeleted:
		return st.Delete
	default:
		return ColorWhite
	}
}

// styleToken applies st to one classified token. Plain tokens pass through
// untouched; changed tokens get their class color (when color is on) and an
// underline wrapper (when underline is on).
func styleToken(tok diff.StyledToken, st Style) string {
	if tok.Class == diff.ClassPlain {
		return tok.Text
	}
	out := tok.Text
	if st.Color {
		out = st.classColor(tok.Class).sgr() + out + ansiReset
	}
	if st.Underline {
		out = ansiUnderline + out + ansiReset
	}
	return out
}

func styleTokens(tokens []diff.StyledToken, st Style) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = styleToken(tok, st)
	}
	return out
}
