// Package direction models directions on a 3×3 grid, an 8-way compass plus
// its center, together with paths built from them.
//
// 🧭 What is balanced-direction?
//
//	A small value library for grid movement and three-valued logic:
//		• balance: the nine-valued Balance type (TopLeft … BottomRight),
//		  with vector, rank, angle and ternary-digit conversions, clamped
//		  and wrapping moves, rotations, reflections and clamped arithmetic
//		• ternary: a balanced ternary Digit (-1, 0, +1) with Kleene and
//		  Heyting connectives, read as False/Unknown/True
//		• moves: Path, an ordered list of Balance steps with cumulative
//		  displacement, decomposition and normalization
//
// Coordinates use the screen convention: x grows to the right, y grows
// downward, so Top is (0, -1) and BottomRight is (1, 1).
//
//	↖ ⬆ ↗
//	⬅ ⏺ ➡
//	↙ ⬇ ↘
//
// Quick example:
//
//	p := moves.New(balance.Top, balance.Top, balance.Top, balance.Bottom)
//	p.Vector()           // (0, -2)
//	p.Normalized().Len() // 2
//
// Everything is pure and synchronous; no package logs or performs I/O.
//
//	go get github.com/Trehinos/balanced-direction
package direction
