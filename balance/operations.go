// SPDX-License-Identifier: MIT

package balance

// clamp saturates v to {-1, 0, 1}.
func clamp(v int) int {
	return max(-1, min(1, v))
}

// wrap cycles v over {-1, 0, 1}: 2 becomes -1 and -2 becomes 1.
func wrap(v int) int {
	switch {
	case v > 1:
		return -1
	case v < -1:
		return 1
	}
	return v
}

// Up moves one row up, staying put in the top row.
func (b Balance) Up() Balance {
	x, y := b.Vector()
	return mustFromVector(x, clamp(y-1))
}

// Down moves one row down, staying put in the bottom row.
func (b Balance) Down() Balance {
	x, y := b.Vector()
	return mustFromVector(x, clamp(y+1))
}

// Left moves one column left, staying put in the left column.
func (b Balance) Left() Balance {
	x, y := b.Vector()
	return mustFromVector(clamp(x-1), y)
}

// Right moves one column right, staying put in the right column.
func (b Balance) Right() Balance {
	x, y := b.Vector()
	return mustFromVector(clamp(x+1), y)
}

// UpWrap moves one row up; from the top row it wraps to the bottom row.
func (b Balance) UpWrap() Balance {
	x, y := b.Vector()
	return mustFromVector(x, wrap(y-1))
}

// DownWrap moves one row down; from the bottom row it wraps to the top row.
func (b Balance) DownWrap() Balance {
	x, y := b.Vector()
	return mustFromVector(x, wrap(y+1))
}

// LeftWrap moves one column left; from the left column it wraps to the right.
func (b Balance) LeftWrap() Balance {
	x, y := b.Vector()
	return mustFromVector(wrap(x-1), y)
}

// RightWrap moves one column right; from the right column it wraps to the left.
func (b Balance) RightWrap() Balance {
	x, y := b.Vector()
	return mustFromVector(wrap(x+1), y)
}

// FlipH mirrors b across the vertical axis: (x, y) → (-x, y).
func (b Balance) FlipH() Balance {
	x, y := b.Vector()
	return mustFromVector(-x, y)
}

// FlipV mirrors b across the horizontal axis: (x, y) → (x, -y).
func (b Balance) FlipV() Balance {
	x, y := b.Vector()
	return mustFromVector(x, -y)
}

// RotateLeft turns b 90° counter-clockwise about Center: (x, y) → (y, -x).
func (b Balance) RotateLeft() Balance {
	x, y := b.Vector()
	return mustFromVector(y, -x)
}

// RotateRight turns b 90° clockwise about Center: (x, y) → (-y, x).
func (b Balance) RotateRight() Balance {
	x, y := b.Vector()
	return mustFromVector(-y, x)
}

// CenterH projects b onto the vertical axis: (x, y) → (0, y).
func (b Balance) CenterH() Balance {
	_, y := b.Vector()
	return mustFromVector(0, y)
}

// CenterV projects b onto the horizontal axis: (x, y) → (x, 0).
func (b Balance) CenterV() Balance {
	x, _ := b.Vector()
	return mustFromVector(x, 0)
}

// Not swaps the axes: (x, y) → (y, x).
func (b Balance) Not() Balance {
	x, y := b.Vector()
	return mustFromVector(y, x)
}

// Neg points b the opposite way: (x, y) → (-x, -y).
func (b Balance) Neg() Balance {
	x, y := b.Vector()
	return mustFromVector(-x, -y)
}

// Add sums componentwise and clamps, so Right.Add(Right) == Right.
func (b Balance) Add(o Balance) Balance {
	x1, y1 := b.Vector()
	x2, y2 := o.Vector()
	return mustFromVector(clamp(x1+x2), clamp(y1+y2))
}

// Sub subtracts componentwise and clamps.
func (b Balance) Sub(o Balance) Balance {
	x1, y1 := b.Vector()
	x2, y2 := o.Vector()
	return mustFromVector(clamp(x1-x2), clamp(y1-y2))
}

// Mul multiplies componentwise.
func (b Balance) Mul(o Balance) Balance {
	x1, y1 := b.Vector()
	x2, y2 := o.Vector()
	return mustFromVector(x1*x2, y1*y2)
}
