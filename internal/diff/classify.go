package diff

import "strings"

// ClassifyWords word-diffs one line pair and returns the two classified
// token streams. Both lines are whitespace-split; tokens are emitted in
// alignment order and never reordered:
//   - OpEqual: words copied to both sides as ClassPlain.
//   - OpReplace: left words become ClassReplacedLeft, right words
//     ClassReplacedRight (the two sides style independently, so a reader
//     can tell "changed from" apart from "changed to").
//   - OpDelete: left words become ClassDeleted; right gets nothing.
//   - OpInsert: right words become ClassInserted; left gets nothing.
func ClassifyWords(leftLine, rightLine string) (leftOut, rightOut []StyledToken) {
	leftWords := strings.Fields(leftLine)
	rightWords := strings.Fields(rightLine)

	for _, op := range Align(leftWords, rightWords) {
		switch op.Kind {
		case OpEqual:
			for k := op.I1; k < op.I2; k++ {
				leftOut = append(leftOut, StyledToken{Text: leftWords[k], Class: ClassPlain})
			}
			for k := op.J1; k < op.J2; k++ {
				rightOut = append(rightOut, StyledToken{Text: rightWords[k], Class: ClassPlain})
			}
		case OpReplace:
			for k := op.I1; k < op.I2; k++ {
				leftOut = append(leftOut, StyledToken{Text: leftWords[k], Class: ClassReplacedLeft})
			}
			for k := op.J1; k < op.J2; k++ {
				rightOut = append(rightOut, StyledToken{Text: rightWords[k], Class: ClassReplacedRight})
			}
		case OpDelete:
			for k := op.I1; k < op.I2; k++ {
				leftOut = append(leftOut, StyledToken{Text: leftWords[k], Class: ClassDeleted})
			}
		case OpInsert:
			for k := op.J1; k < op.J2; k++ {
				rightOut = append(rightOut, StyledToken{Text: rightWords[k], Class: ClassInserted})
			}
		}
	}
	return leftOut, rightOut
}
