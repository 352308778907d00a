// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"

	"github.com/Trehinos/balanced-direction/ternary"
)

// The logic layer reads each axis as a ternary truth digit:
// -1 False, 0 Unknown, 1 True. BottomRight is (True, True) and
// TopLeft is (False, False); those two are the only certain values.

// IsTrue reports whether b is BottomRight.
func (b Balance) IsTrue() bool {
	return b == BottomRight
}

// IsFalse reports whether b is TopLeft.
func (b Balance) IsFalse() bool {
	return b == TopLeft
}

// HasTrue reports whether either axis is True.
func (b Balance) HasTrue() bool {
	x, y := b.Vector()
	return x == 1 || y == 1
}

// HasFalse reports whether either axis is False.
func (b Balance) HasFalse() bool {
	x, y := b.Vector()
	return x == -1 || y == -1
}

// HasUnknown reports whether either axis is Unknown; it equals IsOrthogonal.
func (b Balance) HasUnknown() bool {
	x, y := b.Vector()
	return x == 0 || y == 0
}

// IsCertain reports whether both axes agree on a definite value.
func (b Balance) IsCertain() bool {
	return b.IsTrue() || b.IsFalse()
}

// IsUncertain is !IsCertain.
func (b Balance) IsUncertain() bool {
	return !b.IsCertain()
}

// IsContradictory reports whether the axes hold opposite definite values
// (TopRight or BottomLeft).
func (b Balance) IsContradictory() bool {
	return b == TopRight || b == BottomLeft
}

// ToBool returns true for BottomRight and false for TopLeft.
// Returns ErrUncertainValue for the other seven values; check IsCertain first.
func (b Balance) ToBool() (bool, error) {
	switch b {
	case BottomRight:
		return true, nil
	case TopLeft:
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrUncertainValue, b)
}

// XToBool converts the x axis to a bool.
// Returns ErrUncertainValue when x is Unknown.
func (b Balance) XToBool() (bool, error) {
	return digitToBool(b.X(), b)
}

// YToBool converts the y axis to a bool.
// Returns ErrUncertainValue when y is Unknown.
func (b Balance) YToBool() (bool, error) {
	return digitToBool(b.Y(), b)
}

func digitToBool(d int, b Balance) (bool, error) {
	switch d {
	case 1:
		return true, nil
	case -1:
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrUncertainValue, b)
}

// And applies ternary.Digit.And per axis.
func (b Balance) And(o Balance) Balance {
	return b.ApplyWith(ternary.Digit.And, ternary.Digit.And, o)
}

// Or applies ternary.Digit.Or per axis.
func (b Balance) Or(o Balance) Balance {
	return b.ApplyWith(ternary.Digit.Or, ternary.Digit.Or, o)
}

// Xor applies ternary.Digit.Xor per axis.
func (b Balance) Xor(o Balance) Balance {
	return b.ApplyWith(ternary.Digit.Xor, ternary.Digit.Xor, o)
}

// Possibly applies ternary.Digit.Possibly per axis.
func (b Balance) Possibly() Balance { return b.ApplyBoth(ternary.Digit.Possibly) }

// Necessary applies ternary.Digit.Necessary per axis.
func (b Balance) Necessary() Balance { return b.ApplyBoth(ternary.Digit.Necessary) }

// Contingently applies ternary.Digit.Contingently per axis.
func (b Balance) Contingently() Balance { return b.ApplyBoth(ternary.Digit.Contingently) }

// Positive applies ternary.Digit.Positive per axis.
func (b Balance) Positive() Balance { return b.ApplyBoth(ternary.Digit.Positive) }

// Negative applies ternary.Digit.Negative per axis.
func (b Balance) Negative() Balance { return b.ApplyBoth(ternary.Digit.Negative) }

// NotPositive applies ternary.Digit.NotPositive per axis.
func (b Balance) NotPositive() Balance { return b.ApplyBoth(ternary.Digit.NotPositive) }

// NotNegative applies ternary.Digit.NotNegative per axis.
func (b Balance) NotNegative() Balance { return b.ApplyBoth(ternary.Digit.NotNegative) }

// AbsolutePositive applies ternary.Digit.AbsolutePositive per axis.
func (b Balance) AbsolutePositive() Balance { return b.ApplyBoth(ternary.Digit.AbsolutePositive) }

// AbsoluteNegative applies ternary.Digit.AbsoluteNegative per axis.
func (b Balance) AbsoluteNegative() Balance { return b.ApplyBoth(ternary.Digit.AbsoluteNegative) }

// HtNot applies ternary.Digit.HtNot per axis.
func (b Balance) HtNot() Balance { return b.ApplyBoth(ternary.Digit.HtNot) }

// Post applies ternary.Digit.Post per axis.
func (b Balance) Post() Balance { return b.ApplyBoth(ternary.Digit.Post) }

// Pre applies ternary.Digit.Pre per axis.
func (b Balance) Pre() Balance { return b.ApplyBoth(ternary.Digit.Pre) }

// K3Imply applies ternary.Digit.K3Imply per axis.
func (b Balance) K3Imply(o Balance) Balance {
	return b.ApplyWith(ternary.Digit.K3Imply, ternary.Digit.K3Imply, o)
}

// K3Equiv applies ternary.Digit.K3Equiv per axis. It equals Mul.
func (b Balance) K3Equiv(o Balance) Balance {
	return b.ApplyWith(ternary.Digit.K3Equiv, ternary.Digit.K3Equiv, o)
}

// HtImply applies ternary.Digit.HtImply per axis.
func (b Balance) HtImply(o Balance) Balance {
	return b.ApplyWith(ternary.Digit.HtImply, ternary.Digit.HtImply, o)
}

// Apply transforms x with opX and y with opY. Both must return
// Neg, Zero or Pos; any other digit panics.
//
// Example:
//
//	Center.Apply(ternary.Digit.NotNegative, ternary.Digit.NotPositive) // TopRight
func (b Balance) Apply(opX, opY ternary.UnaryOp) Balance {
	x, y := b.TernaryPair()
	return mustFromTernaryPair(opX(x), opY(y))
}

// ApplyWith combines b and o axis by axis: opX on both x digits,
// opY on both y digits.
func (b Balance) ApplyWith(opX, opY ternary.BinaryOp, o Balance) Balance {
	x1, y1 := b.TernaryPair()
	x2, y2 := o.TernaryPair()
	return mustFromTernaryPair(opX(x1, x2), opY(y1, y2))
}

// ApplyBoth transforms both axes with op.
func (b Balance) ApplyBoth(op ternary.UnaryOp) Balance {
	return b.Apply(op, op)
}
