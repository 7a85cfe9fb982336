package diff

import "strings"

// ExpandChangedPairs turns a line-level alignment into the left/right line
// pairs that need word-level diffing. OpEqual ranges emit nothing (equal
// content is never shown). For changed ranges, lines are paired
// positionally and the shorter side is padded with empty lines; no
// best-match pairing is attempted. Pairs where both sides are blank after
// trimming are dropped, so padding never produces blank-vs-blank rows.
func ExpandChangedPairs(ops []AlignOp, left, right []string) []LinePair {
	var pairs []LinePair
	for _, op := range ops {
		if op.Kind == OpEqual {
			continue
		}
		leftN := op.I2 - op.I1
		rightN := op.J2 - op.J1
		n := max(leftN, rightN)
		for k := 0; k < n; k++ {
			var l, r string
			if k < leftN {
				l = left[op.I1+k]
			}
			if k < rightN {
				r = right[op.J1+k]
			}
			if strings.TrimSpace(l) == "" && strings.TrimSpace(r) == "" {
				continue
			}
			pairs = append(pairs, LinePair{Left: l, Right: r})
		}
	}
	return pairs
}
