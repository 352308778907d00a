// SPDX-License-Identifier: MIT

// Package balance models the nine positions of a 3×3 grid, an 8-way compass
// plus its center, as a closed value type.
//
// 🧭 Coordinates
//
// Each Balance is an integer pair (x, y) with x, y ∈ {-1, 0, 1}. The y axis
// grows downward (screen convention), so Top is (0, -1):
//
//	TopLeft    (-1,-1) │ Top    (0,-1) │ TopRight    (1,-1)
//	Left       (-1, 0) │ Center (0, 0) │ Right       (1, 0)
//	BottomLeft (-1, 1) │ Bottom (0, 1) │ BottomRight (1, 1)
//
// The underlying int8 of a Balance is its rank, 3y + x, running from -4
// (TopLeft) to 4 (BottomRight). The zero value is Center.
//
// ✨ What you get:
//   - conversions: vector, rank, angle, magnitude, ternary digit pair
//   - predicates: HasTop…HasRight, IsEdge, IsCorner, IsOrthogonal, IsDiagonal
//   - movement: clamped (Up, Down, Left, Right) and wrapping (UpWrap, …)
//   - symmetry: FlipH, FlipV, RotateLeft, RotateRight, CenterH, CenterV
//   - arithmetic: Not (swap axes), Neg, Add/Sub (clamped), Mul
//   - three-valued logic: each axis read as a ternary.Digit
//     (False/Unknown/True), with And/Or/Xor and the modal transforms
//     of package ternary applied per axis
//
// Angles:
//
//	Angles are in degrees, counter-clockwise from Right, on (-180, 180]:
//	Right 0, TopRight 45, Top 90, TopLeft 135, Left 180,
//	BottomLeft -135, Bottom -90, BottomRight -45. Center has none.
//	FromAngle accepts exact multiples of 45° by default; WithNearest
//	snaps any finite angle to the closest direction instead.
//
// Every method is pure and O(1). Methods that can fail on caller input
// return an error; operators are total over the nine values.
//
// Errors:
//
//   - ErrInvalidCoordinate: FromVector/FromTernaryPair outside {-1,0,1}².
//   - ErrInvalidRank:       FromValue outside -4..4.
//   - ErrInvalidAngle:      FromAngle not on a 45° multiple, NaN or ±Inf.
//   - ErrUndefinedAngle:    Angle on Center.
//   - ErrUncertainValue:    ToBool/XToBool/YToBool on an Unknown digit.
package balance
