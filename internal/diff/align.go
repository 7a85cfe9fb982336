package diff

import (
	"fmt"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Align aligns two token sequences and returns the covering alignment
// operations (see AlignOp for the invariants). The result is equivalent to
// a longest-common-subsequence opcode partition: unchanged runs become
// OpEqual, and each maximal changed run becomes one OpReplace, OpInsert,
// or OpDelete.
//
// Align is a pure function. Either sequence may be empty (degenerate
// all-insert / all-delete alignments).
func Align(left, right []string) []AlignOp {
	rLeft, rRight := internTokens(left, right)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(rLeft, rRight, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var ops []AlignOp
	i, j := 0, 0
	pendingDel, pendingIns := 0, 0

	flush := func() {
		if pendingDel == 0 && pendingIns == 0 {
			return
		}
		var kind OpKind
		switch {
		case pendingDel > 0 && pendingIns > 0:
			kind = OpReplace
		case pendingDel > 0:
			kind = OpDelete
		default:
			kind = OpInsert
		}
		ops = append(ops, AlignOp{Kind: kind, I1: i, I2: i + pendingDel, J1: j, J2: j + pendingIns})
		i += pendingDel
		j += pendingIns
		pendingDel, pendingIns = 0, 0
	}

	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		if n == 0 {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			ops = append(ops, AlignOp{Kind: OpEqual, I1: i, I2: i + n, J1: j, J2: j + n})
			i += n
			j += n
		case diffmatchpatch.DiffDelete:
			pendingDel += n
		case diffmatchpatch.DiffInsert:
			pendingIns += n
		}
	}
	flush()

	if err := validateOps(ops, len(left), len(right)); err != nil {
		panic(fmt.Errorf("diff: Align produced invalid ops: %v", err))
	}
	return ops
}

// internTokens maps each distinct token to a unique rune and encodes both
// sequences, so the rune-based differ can align arbitrary token sequences.
// Same trick diffmatchpatch itself uses for line-mode diffs.
func internTokens(left, right []string) ([]rune, []rune) {
	index := make(map[string]rune, len(left)+len(right))
	encode := func(tokens []string) []rune {
		out := make([]rune, len(tokens))
		for k, tok := range tokens {
			r, ok := index[tok]
			if !ok {
				r = scalarRune(len(index))
				index[tok] = r
			}
			out[k] = r
		}
		return out
	}
	return encode(left), encode(right)
}

// scalarRune returns the nth valid Unicode scalar value, skipping the
// surrogate range so the runes survive UTF-8 round-trips inside the differ.
func scalarRune(n int) rune {
	r := rune(n + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
