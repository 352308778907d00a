// SPDX-License-Identifier: MIT

package balance

import "fmt"

// Balance is one of the nine positions of a 3×3 grid. Its value is the rank.
type Balance int8

const (
	// TopLeft is (-1, -1), rank -4.
	TopLeft Balance = iota - 4
	// Top is (0, -1), rank -3.
	Top
	// TopRight is (1, -1), rank -2.
	TopRight
	// Left is (-1, 0), rank -1.
	Left
	// Center is (0, 0), rank 0.
	Center
	// Right is (1, 0), rank 1.
	Right
	// BottomLeft is (-1, 1), rank 2.
	BottomLeft
	// Bottom is (0, 1), rank 3.
	Bottom
	// BottomRight is (1, 1), rank 4.
	BottomRight
)

// vectors is indexed by rank+4.
var vectors = [9][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var names = [9]string{
	"TopLeft", "Top", "TopRight",
	"Left", "Center", "Right",
	"BottomLeft", "Bottom", "BottomRight",
}

var symbols = [9]string{
	"↖️", "⬆️", "↗️",
	"⬅️", "⏺️", "➡️",
	"↙️", "⬇️", "↘️",
}

// All returns the nine values in rank order, TopLeft first.
func All() []Balance {
	return []Balance{
		TopLeft, Top, TopRight,
		Left, Center, Right,
		BottomLeft, Bottom, BottomRight,
	}
}

// Valid reports whether b is one of the nine named values.
func (b Balance) Valid() bool {
	return b >= TopLeft && b <= BottomRight
}

// index maps b to 0..8. Values outside the enumeration only arise from
// unchecked conversions such as Balance(7); they are rejected here.
func (b Balance) index() int {
	if !b.Valid() {
		panic(fmt.Sprintf("balance: invalid value %d", int8(b)))
	}

	return int(b) + 4
}

// String returns the variant name, e.g. "TopLeft".
func (b Balance) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Balance(%d)", int8(b))
	}

	return names[b.index()]
}

// Symbol returns an arrow glyph for b; Center is "⏺️".
func (b Balance) Symbol() string {
	return symbols[b.index()]
}

// X returns the column: -1 (left), 0 or 1 (right).
func (b Balance) X() int {
	return vectors[b.index()][0]
}

// Y returns the row: -1 (top), 0 or 1 (bottom).
func (b Balance) Y() int {
	return vectors[b.index()][1]
}

// HasTop reports whether b lies in the top row.
func (b Balance) HasTop() bool {
	switch b {
	case TopLeft, Top, TopRight:
		return true
	}
	return false
}

// HasBottom reports whether b lies in the bottom row.
func (b Balance) HasBottom() bool {
	switch b {
	case BottomLeft, Bottom, BottomRight:
		return true
	}
	return false
}

// HasLeft reports whether b lies in the left column.
func (b Balance) HasLeft() bool {
	switch b {
	case TopLeft, Left, BottomLeft:
		return true
	}
	return false
}

// HasRight reports whether b lies in the right column.
func (b Balance) HasRight() bool {
	switch b {
	case TopRight, Right, BottomRight:
		return true
	}
	return false
}

// IsEdge reports whether b is one of Top, Bottom, Left or Right.
func (b Balance) IsEdge() bool {
	switch b {
	case Top, Bottom, Left, Right:
		return true
	}
	return false
}

// IsCorner reports whether b is one of the four diagonal values.
func (b Balance) IsCorner() bool {
	switch b {
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return true
	}
	return false
}

// IsOrthogonal reports whether b is Center or an edge.
func (b Balance) IsOrthogonal() bool {
	return b == Center || b.IsEdge()
}

// IsDiagonal reports whether b is Center or a corner.
func (b Balance) IsDiagonal() bool {
	return b == Center || b.IsCorner()
}
