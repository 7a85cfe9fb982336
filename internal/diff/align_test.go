package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reconstruct rebuilds both sequences from the op ranges, verifying the
// coverage invariant as it goes.
func reconstruct(t *testing.T, ops []AlignOp, left, right []string) ([]string, []string) {
	t.Helper()
	var gotLeft, gotRight []string
	for _, op := range ops {
		gotLeft = append(gotLeft, left[op.I1:op.I2]...)
		gotRight = append(gotRight, right[op.J1:op.J2]...)
	}
	return gotLeft, gotRight
}

func TestAlign_EqualSequences(t *testing.T) {
	left := []string{"the", "cat", "sat"}
	ops := Align(left, left)
	require.Len(t, ops, 1)
	assert.Equal(t, AlignOp{Kind: OpEqual, I1: 0, I2: 3, J1: 0, J2: 3}, ops[0])
}

func TestAlign_SingleReplacement(t *testing.T) {
	left := []string{"the", "cat", "sat"}
	right := []string{"the", "dog", "sat"}

	ops := Align(left, right)
	require.Equal(t, []AlignOp{
		{Kind: OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
		{Kind: OpReplace, I1: 1, I2: 2, J1: 1, J2: 2},
		{Kind: OpEqual, I1: 2, I2: 3, J1: 2, J2: 3},
	}, ops)
}

func TestAlign_InsertInMiddle(t *testing.T) {
	ops := Align([]string{"a", "c"}, []string{"a", "b", "c"})
	require.Equal(t, []AlignOp{
		{Kind: OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
		{Kind: OpInsert, I1: 1, I2: 1, J1: 1, J2: 2},
		{Kind: OpEqual, I1: 1, I2: 2, J1: 2, J2: 3},
	}, ops)
}

func TestAlign_EmptySides(t *testing.T) {
	assert.Empty(t, Align(nil, nil))

	ops := Align(nil, []string{"x", "y"})
	require.Equal(t, []AlignOp{{Kind: OpInsert, I1: 0, I2: 0, J1: 0, J2: 2}}, ops)

	ops = Align([]string{"x", "y"}, nil)
	require.Equal(t, []AlignOp{{Kind: OpDelete, I1: 0, I2: 2, J1: 0, J2: 0}}, ops)
}

func TestAlign_OpsCoverBothSequences(t *testing.T) {
	left := []string{"one", "two", "three", "four", "five"}
	right := []string{"one", "2", "three", "five", "six"}

	ops := Align(left, right)
	gotLeft, gotRight := reconstruct(t, ops, left, right)
	assert.Equal(t, left, gotLeft)
	assert.Equal(t, right, gotRight)
}

func TestAlign_KindRangeRules(t *testing.T) {
	left := []string{"a", "b", "c", "d"}
	right := []string{"a", "x", "y", "c"}

	for _, op := range Align(left, right) {
		switch op.Kind {
		case OpEqual:
			assert.Equal(t, op.I2-op.I1, op.J2-op.J1)
			assert.Equal(t, left[op.I1:op.I2], right[op.J1:op.J2])
		case OpInsert:
			assert.Equal(t, op.I1, op.I2)
			assert.Less(t, op.J1, op.J2)
		case OpDelete:
			assert.Equal(t, op.J1, op.J2)
			assert.Less(t, op.I1, op.I2)
		case OpReplace:
			assert.Less(t, op.I1, op.I2)
			assert.Less(t, op.J1, op.J2)
		}
	}
}

func TestAlign_RepeatedTokensInternOnce(t *testing.T) {
	left := []string{"spam", "spam", "eggs", "spam"}
	right := []string{"spam", "eggs", "spam"}

	ops := Align(left, right)
	gotLeft, gotRight := reconstruct(t, ops, left, right)
	assert.Equal(t, left, gotLeft)
	assert.Equal(t, right, gotRight)
}

func TestValidateOps_RejectsGapsAndOverlaps(t *testing.T) {
	err := validateOps([]AlignOp{
		{Kind: OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
		{Kind: OpEqual, I1: 2, I2: 3, J1: 2, J2: 3},
	}, 3, 3)
	require.Error(t, err)
}

func TestValidateOps_RejectsPartialCoverage(t *testing.T) {
	err := validateOps([]AlignOp{
		{Kind: OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
	}, 2, 1)
	require.Error(t, err)
}
