package diff

// OpKind classifies how a sub-range of two token sequences relates.
type OpKind int

// Alignment operations from the left sequence to the right sequence.
const (
	OpEqual OpKind = iota
	OpReplace
	OpInsert
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpReplace:
		return "replace"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// AlignOp is one alignment operation over two token sequences. It covers
// left[I1:I2] and right[J1:J2] (half-open ranges).
//
// Invariants for a []AlignOp produced by Align:
//   - Ops are ordered and contiguous: each op's I1 equals the previous op's
//     I2 (same for J1/J2), starting at 0.
//   - Concatenating all [I1,I2) ranges reconstructs the left sequence; same
//     for [J1,J2) and the right sequence.
//   - OpEqual ranges have equal length and designate pairwise-equal tokens.
//   - OpInsert has I1==I2; OpDelete has J1==J2; OpReplace has both ranges
//     non-empty.
type AlignOp struct {
	Kind           OpKind
	I1, I2, J1, J2 int
}

// StyleClass tags a word token with how it should be presented.
type StyleClass int

const (
	ClassPlain StyleClass = iota
	ClassDeleted
	ClassInserted
	ClassReplacedLeft
	ClassReplacedRight
)

// StyledToken is a single word plus its presentation class. Tokens are
// immutable once produced; classification never reorders them.
type StyledToken struct {
	Text  string
	Class StyleClass
}

// LinePair is one left/right line pairing from a changed region. A missing
// side is the empty string, which word-diffs the real side as a pure
// insert or delete.
type LinePair struct {
	Left  string
	Right string
}
