// SPDX-License-Identifier: MIT

package ternary

import "fmt"

// Digit is a balanced ternary digit.
type Digit int8

const (
	// Neg is -1, logical False.
	Neg Digit = -1
	// Zero is 0, logical Unknown.
	Zero Digit = 0
	// Pos is +1, logical True.
	Pos Digit = 1
)

// UnaryOp transforms a single digit.
type UnaryOp func(Digit) Digit

// BinaryOp combines two digits into one.
type BinaryOp func(a, b Digit) Digit

// table holds the images of (Neg, Zero, Pos) under a unary transform.
type table [3]Digit

// of looks up d. d must be valid.
func (t table) of(d Digit) Digit {
	return t[d+1]
}

var (
	possiblyTable         = table{Neg, Pos, Pos}
	necessaryTable        = table{Neg, Neg, Pos}
	contingentlyTable     = table{Neg, Pos, Neg}
	positiveTable         = table{Zero, Zero, Pos}
	negativeTable         = table{Neg, Zero, Zero}
	notPositiveTable      = table{Neg, Neg, Zero}
	notNegativeTable      = table{Zero, Pos, Pos}
	absolutePositiveTable = table{Pos, Zero, Pos}
	absoluteNegativeTable = table{Neg, Zero, Neg}
	htNotTable            = table{Pos, Neg, Neg}
	postTable             = table{Zero, Pos, Neg}
	preTable              = table{Pos, Neg, Zero}
)

// Digits returns the three digits in ascending order.
func Digits() []Digit {
	return []Digit{Neg, Zero, Pos}
}

// FromInt converts v to a Digit.
// Returns ErrInvalidDigit if v is not -1, 0 or 1.
func FromInt(v int) (Digit, error) {
	if v < -1 || v > 1 {
		return Zero, fmt.Errorf("%w: got %d", ErrInvalidDigit, v)
	}

	return Digit(v), nil
}

// Int returns d as -1, 0 or 1.
func (d Digit) Int() int {
	return int(d)
}

// Valid reports whether d is one of Neg, Zero or Pos.
func (d Digit) Valid() bool {
	return d >= Neg && d <= Pos
}

// String renders d as "-", "0" or "+".
func (d Digit) String() string {
	switch d {
	case Neg:
		return "-"
	case Zero:
		return "0"
	case Pos:
		return "+"
	default:
		return fmt.Sprintf("Digit(%d)", int8(d))
	}
}

// Not is the Kleene negation: Neg and Pos swap, Zero stays.
func (d Digit) Not() Digit {
	return -d
}

// And is the Kleene conjunction, min(d, o).
func (d Digit) And(o Digit) Digit {
	return min(d, o)
}

// Or is the Kleene disjunction, max(d, o).
func (d Digit) Or(o Digit) Digit {
	return max(d, o)
}

// Xor is the Kleene exclusive or. It is Zero whenever either side is Zero.
func (d Digit) Xor(o Digit) Digit {
	return -(d * o)
}

// Possibly maps Unknown to True.
func (d Digit) Possibly() Digit { return possiblyTable.of(d) }

// Necessary maps Unknown to False.
func (d Digit) Necessary() Digit { return necessaryTable.of(d) }

// Contingently is True only for Unknown.
func (d Digit) Contingently() Digit { return contingentlyTable.of(d) }

// Positive keeps Pos and sends everything else to Zero.
func (d Digit) Positive() Digit { return positiveTable.of(d) }

// Negative keeps Neg and sends everything else to Zero.
func (d Digit) Negative() Digit { return negativeTable.of(d) }

// NotPositive shifts Zero and Pos one step down; Neg stays.
func (d Digit) NotPositive() Digit { return notPositiveTable.of(d) }

// NotNegative shifts Neg and Zero one step up; Pos stays.
func (d Digit) NotNegative() Digit { return notNegativeTable.of(d) }

// AbsolutePositive is |d|.
func (d Digit) AbsolutePositive() Digit { return absolutePositiveTable.of(d) }

// AbsoluteNegative is -|d|.
func (d Digit) AbsoluteNegative() Digit { return absoluteNegativeTable.of(d) }

// HtNot is the Heyting negation, d → False.
func (d Digit) HtNot() Digit { return htNotTable.of(d) }

// Post is the cyclic successor Neg → Zero → Pos → Neg.
func (d Digit) Post() Digit { return postTable.of(d) }

// Pre is the cyclic predecessor Neg → Pos → Zero → Neg.
func (d Digit) Pre() Digit { return preTable.of(d) }

// K3Imply is the Kleene implication, max(-d, o).
func (d Digit) K3Imply(o Digit) Digit {
	return max(-d, o)
}

// K3Equiv is the Kleene equivalence, d·o.
func (d Digit) K3Equiv(o Digit) Digit {
	return d * o
}

// HtImply is the Heyting (Gödel) implication: Pos when d ≤ o, o otherwise.
func (d Digit) HtImply(o Digit) Digit {
	if d <= o {
		return Pos
	}

	return o
}
