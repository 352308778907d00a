// SPDX-License-Identifier: MIT

// Package ternary implements a single balanced ternary digit and the
// three-valued logic defined over it.
//
// What:
//
//   - Digit takes one of three values: Neg (-1), Zero (0) and Pos (1).
//   - Read as truth values they mean False, Unknown and True.
//   - Kleene connectives (And, Or, Xor, Not), Heyting negation and implication,
//     plus a family of modal unary transforms (Possibly, Necessary, ...).
//
// Truth tables, listed for inputs (Neg, Zero, Pos):
//
//	Possibly          -  +  +
//	Necessary         -  -  +
//	Contingently      -  +  -
//	Positive          0  0  +
//	Negative          -  0  0
//	NotPositive       -  -  0
//	NotNegative       0  +  +
//	AbsolutePositive  +  0  +
//	AbsoluteNegative  -  0  -
//	HtNot             +  -  -
//	Post              0  +  -
//	Pre               +  -  0
//
// Binary connectives:
//
//	And(a, b)     = min(a, b)
//	Or(a, b)      = max(a, b)
//	Xor(a, b)     = -(a·b)
//	K3Imply(a, b) = max(-a, b)
//	K3Equiv(a, b) = a·b
//	HtImply(a, b) = Pos if a ≤ b, otherwise b
//
// Every operation is pure and O(1).
//
// Errors:
//
//   - ErrInvalidDigit: an integer outside {-1, 0, 1} was converted to a Digit.
package ternary
