// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math"

	"github.com/Trehinos/balanced-direction/ternary"
)

// Vector returns the (x, y) pair of b.
func (b Balance) Vector() (x, y int) {
	v := vectors[b.index()]
	return v[0], v[1]
}

// FromVector returns the Balance at (x, y).
// Returns ErrInvalidCoordinate if either component is outside {-1, 0, 1}.
func FromVector(x, y int) (Balance, error) {
	if x < -1 || x > 1 || y < -1 || y > 1 {
		return Center, fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinate, x, y)
	}

	// rank = 3y + x
	return Balance(3*y + x), nil
}

// mustFromVector is FromVector for callers that already hold the range
// invariant. A failure here is a bug in this package.
func mustFromVector(x, y int) Balance {
	b, err := FromVector(x, y)
	if err != nil {
		panic(err)
	}
	return b
}

// Value returns the rank of b, from -4 (TopLeft) to 4 (BottomRight).
func (b Balance) Value() int {
	return int(b)
}

// FromValue returns the Balance with the given rank.
// Returns ErrInvalidRank if rank is outside -4..4.
func FromValue(rank int) (Balance, error) {
	if rank < int(TopLeft) || rank > int(BottomRight) {
		return Center, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}

	return Balance(rank), nil
}

// Scalar returns x²+y²: 0 for Center, 1 for edges, 2 for corners.
func (b Balance) Scalar() int {
	x, y := b.Vector()
	return x*x + y*y
}

// Magnitude returns the Euclidean length of b: 0, 1 or √2.
func (b Balance) Magnitude() float64 {
	switch {
	case b.IsCorner():
		return math.Sqrt2
	case b.IsEdge():
		return 1
	default:
		return 0
	}
}

// TernaryPair returns x and y as ternary digits.
func (b Balance) TernaryPair() (x, y ternary.Digit) {
	vx, vy := b.Vector()
	return ternary.Digit(vx), ternary.Digit(vy)
}

// FromTernaryPair returns the Balance at (x, y).
// Returns ErrInvalidCoordinate if either digit is not Neg, Zero or Pos.
func FromTernaryPair(x, y ternary.Digit) (Balance, error) {
	return FromVector(x.Int(), y.Int())
}

func mustFromTernaryPair(x, y ternary.Digit) Balance {
	return mustFromVector(x.Int(), y.Int())
}
