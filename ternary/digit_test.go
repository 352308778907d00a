// SPDX-License-Identifier: MIT

package ternary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trehinos/balanced-direction/ternary"
)

// TestFromInt covers the accepted range and rejection outside it.
func TestFromInt(t *testing.T) {
	for _, v := range []int{-1, 0, 1} {
		d, err := ternary.FromInt(v)
		require.NoError(t, err)
		assert.Equal(t, v, d.Int())
		assert.True(t, d.Valid())
	}
	for _, v := range []int{-2, 2, 100} {
		_, err := ternary.FromInt(v)
		assert.ErrorIs(t, err, ternary.ErrInvalidDigit, "FromInt(%d)", v)
	}
	assert.False(t, ternary.Digit(3).Valid())
}

// TestString checks the sign rendering.
func TestString(t *testing.T) {
	assert.Equal(t, "-", ternary.Neg.String())
	assert.Equal(t, "0", ternary.Zero.String())
	assert.Equal(t, "+", ternary.Pos.String())
	assert.Equal(t, "Digit(5)", ternary.Digit(5).String())
}

// TestUnaryTables pins every unary transform over (Neg, Zero, Pos).
func TestUnaryTables(t *testing.T) {
	N, Z, P := ternary.Neg, ternary.Zero, ternary.Pos
	cases := []struct {
		name string
		op   ternary.UnaryOp
		want [3]ternary.Digit
	}{
		{"Not", ternary.Digit.Not, [3]ternary.Digit{P, Z, N}},
		{"Possibly", ternary.Digit.Possibly, [3]ternary.Digit{N, P, P}},
		{"Necessary", ternary.Digit.Necessary, [3]ternary.Digit{N, N, P}},
		{"Contingently", ternary.Digit.Contingently, [3]ternary.Digit{N, P, N}},
		{"Positive", ternary.Digit.Positive, [3]ternary.Digit{Z, Z, P}},
		{"Negative", ternary.Digit.Negative, [3]ternary.Digit{N, Z, Z}},
		{"NotPositive", ternary.Digit.NotPositive, [3]ternary.Digit{N, N, Z}},
		{"NotNegative", ternary.Digit.NotNegative, [3]ternary.Digit{Z, P, P}},
		{"AbsolutePositive", ternary.Digit.AbsolutePositive, [3]ternary.Digit{P, Z, P}},
		{"AbsoluteNegative", ternary.Digit.AbsoluteNegative, [3]ternary.Digit{N, Z, N}},
		{"HtNot", ternary.Digit.HtNot, [3]ternary.Digit{P, N, N}},
		{"Post", ternary.Digit.Post, [3]ternary.Digit{Z, P, N}},
		{"Pre", ternary.Digit.Pre, [3]ternary.Digit{P, N, Z}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i, d := range ternary.Digits() {
				assert.Equal(t, tc.want[i], tc.op(d), "%s(%v)", tc.name, d)
			}
		})
	}
}

// TestBinaryTables pins the binary connectives as 3×3 tables; rows are the
// left operand and columns the right one, both in (Neg, Zero, Pos) order.
func TestBinaryTables(t *testing.T) {
	N, Z, P := ternary.Neg, ternary.Zero, ternary.Pos
	cases := []struct {
		name string
		op   ternary.BinaryOp
		want [3][3]ternary.Digit
	}{
		{"And", ternary.Digit.And, [3][3]ternary.Digit{{N, N, N}, {N, Z, Z}, {N, Z, P}}},
		{"Or", ternary.Digit.Or, [3][3]ternary.Digit{{N, Z, P}, {Z, Z, P}, {P, P, P}}},
		{"Xor", ternary.Digit.Xor, [3][3]ternary.Digit{{N, Z, P}, {Z, Z, Z}, {P, Z, N}}},
		{"K3Imply", ternary.Digit.K3Imply, [3][3]ternary.Digit{{P, P, P}, {Z, Z, P}, {N, Z, P}}},
		{"K3Equiv", ternary.Digit.K3Equiv, [3][3]ternary.Digit{{P, Z, N}, {Z, Z, Z}, {N, Z, P}}},
		{"HtImply", ternary.Digit.HtImply, [3][3]ternary.Digit{{P, P, P}, {N, P, P}, {N, Z, P}}},
	}
	digits := ternary.Digits()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i, a := range digits {
				for j, b := range digits {
					assert.Equal(t, tc.want[i][j], tc.op(a, b), "%s(%v, %v)", tc.name, a, b)
				}
			}
		})
	}
}

// TestPostPreInverse checks that Post and Pre undo each other and cycle in three.
func TestPostPreInverse(t *testing.T) {
	for _, d := range ternary.Digits() {
		assert.Equal(t, d, d.Post().Pre())
		assert.Equal(t, d, d.Pre().Post())
		assert.Equal(t, d, d.Post().Post().Post())
	}
}
