// SPDX-License-Identifier: MIT

package moves

import (
	"fmt"
	"iter"

	"github.com/Trehinos/balanced-direction/balance"
)

// Path is an ordered sequence of steps. Duplicates and empty paths are valid.
// The zero value is an empty Path ready to use.
type Path struct {
	raw []balance.Balance
}

// New returns a Path holding a copy of steps.
func New(steps ...balance.Balance) *Path {
	raw := make([]balance.Balance, len(steps))
	copy(raw, steps)

	return &Path{raw: raw}
}

// FromVector decomposes the displacement (x, y) into unit steps.
// Each step takes the sign of the remaining components, so the result has
// exactly max(|x|, |y|) steps: diagonal ones first, then straight ones.
// FromVector(0, 0) is empty.
//
// Complexity: O(max(|x|, |y|)).
func FromVector(x, y int) *Path {
	raw := make([]balance.Balance, 0, max(abs(x), abs(y)))
	for x != 0 || y != 0 {
		sx, sy := sign(x), sign(y)
		x -= sx
		y -= sy
		b, err := balance.FromVector(sx, sy)
		if err != nil {
			// sign always yields -1, 0 or 1.
			panic(err)
		}
		raw = append(raw, b)
	}

	return &Path{raw: raw}
}

// Len returns the number of steps.
func (p *Path) Len() int {
	return len(p.raw)
}

// IsEmpty reports whether p has no steps.
func (p *Path) IsEmpty() bool {
	return len(p.raw) == 0
}

// Get returns the step at index i, or false when i is out of range.
func (p *Path) Get(i int) (balance.Balance, bool) {
	if i < 0 || i >= len(p.raw) {
		return balance.Center, false
	}
	return p.raw[i], true
}

// Set replaces the step at index i.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
func (p *Path) Set(i int, b balance.Balance) error {
	if i < 0 || i >= len(p.raw) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(p.raw))
	}
	p.raw[i] = b
	return nil
}

// All iterates over (index, step) pairs in order.
func (p *Path) All() iter.Seq2[int, balance.Balance] {
	return func(yield func(int, balance.Balance) bool) {
		for i, b := range p.raw {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Steps returns a copy of the steps.
func (p *Path) Steps() []balance.Balance {
	out := make([]balance.Balance, len(p.raw))
	copy(out, p.raw)
	return out
}

// Update replaces every step with f(step), in place.
func (p *Path) Update(f func(balance.Balance) balance.Balance) {
	for i, b := range p.raw {
		p.raw[i] = f(b)
	}
}

// Push appends a step.
func (p *Path) Push(b balance.Balance) {
	p.raw = append(p.raw, b)
}

// Pop removes and returns the last step, or false when p is empty.
func (p *Path) Pop() (balance.Balance, bool) {
	n := len(p.raw)
	if n == 0 {
		return balance.Center, false
	}
	b := p.raw[n-1]
	p.raw = p.raw[:n-1]
	return b, true
}

// Clear removes every step and keeps the allocated capacity.
func (p *Path) Clear() {
	p.raw = p.raw[:0]
}

// Vector returns the sum of every step's (x, y). Partial sums are not
// clamped, so the result can be any integer pair.
//
// Complexity: O(n).
func (p *Path) Vector() (x, y int) {
	for _, b := range p.raw {
		dx, dy := b.Vector()
		x += dx
		y += dy
	}
	return x, y
}

// Waypoints returns the cells visited when walking p from (x0, y0),
// origin included, so the result has Len()+1 entries.
func (p *Path) Waypoints(x0, y0 int) [][2]int {
	out := make([][2]int, 0, len(p.raw)+1)
	out = append(out, [2]int{x0, y0})
	for _, b := range p.raw {
		dx, dy := b.Vector()
		x0, y0 = x0+dx, y0+dy
		out = append(out, [2]int{x0, y0})
	}
	return out
}

// Normalized returns the shortest path with the same displacement,
// FromVector(p.Vector()).
func (p *Path) Normalized() *Path {
	return FromVector(p.Vector())
}

// Reversed returns a new Path with the steps in reverse order.
func (p *Path) Reversed() *Path {
	n := len(p.raw)
	raw := make([]balance.Balance, n)
	for i, b := range p.raw {
		raw[n-1-i] = b
	}
	return &Path{raw: raw}
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	return New(p.raw...)
}

// Equal reports whether p and o hold the same steps in the same order.
func (p *Path) Equal(o *Path) bool {
	if len(p.raw) != len(o.raw) {
		return false
	}
	for i := range p.raw {
		if p.raw[i] != o.raw[i] {
			return false
		}
	}
	return true
}

// String renders the steps, e.g. "[Top Right]".
func (p *Path) String() string {
	return fmt.Sprint(p.raw)
}

// Each returns a new Path of f applied to every step.
func (p *Path) Each(f func(balance.Balance) balance.Balance) *Path {
	raw := make([]balance.Balance, len(p.raw))
	for i, b := range p.raw {
		raw[i] = f(b)
	}
	return &Path{raw: raw}
}

// EachWith returns a new Path of f(step, other) for every step.
func (p *Path) EachWith(f func(a, b balance.Balance) balance.Balance, other balance.Balance) *Path {
	raw := make([]balance.Balance, len(p.raw))
	for i, b := range p.raw {
		raw[i] = f(b, other)
	}
	return &Path{raw: raw}
}

// EachZip returns a new Path of f(p[i], other[i]) for every index.
// Returns ErrLengthMismatch if the paths differ in length; nothing is truncated.
func (p *Path) EachZip(f func(a, b balance.Balance) balance.Balance, other *Path) (*Path, error) {
	if len(p.raw) != len(other.raw) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(p.raw), len(other.raw))
	}
	raw := make([]balance.Balance, len(p.raw))
	for i, b := range p.raw {
		raw[i] = f(b, other.raw[i])
	}
	return &Path{raw: raw}, nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
