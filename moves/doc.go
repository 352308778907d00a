// SPDX-License-Identifier: MIT

// Package moves represents an ordered sequence of balance.Balance steps.
//
// A Path is a plain, growable list of unit moves on the 3×3 grid. Its only
// derived property is the cumulative displacement, Vector, which is summed
// with ordinary integer arithmetic on every call and never cached:
//
//	New(balance.Top, balance.Right, balance.Bottom).Vector() // (1, 0)
//
// FromVector goes the other way and decomposes any integer displacement into
// max(|x|, |y|) unit steps, moving diagonally while both components are
// non-zero. Normalized is FromVector(Vector()), the shortest path with the same
// displacement.
//
// Each, EachWith and EachZip map balance operators over the steps; any method
// expression such as balance.Balance.RotateLeft or balance.Balance.Add fits.
//
// Concurrency:
//
//	A Path is not safe for concurrent mutation. Guard a shared Path with
//	your own sync.Mutex, as you would a slice.
//
// Errors:
//
//   - ErrLengthMismatch:  EachZip on paths of different lengths.
//   - ErrIndexOutOfRange: Set outside [0, Len()).
package moves
