// SPDX-License-Identifier: MIT

package balance_test

import (
	"errors"
	"fmt"

	"github.com/Trehinos/balanced-direction/balance"
	"github.com/Trehinos/balanced-direction/ternary"
)

// ExampleBalance_Right moves around the grid and turns.
//
// Scenario:
//
//	Start in the top-left corner, step right, then rotate a quarter turn
//	counter-clockwise. The result faces west.
func ExampleBalance_Right() {
	p := balance.TopLeft
	fmt.Println(p.Vector())

	moved := p.Right()
	rotated := moved.RotateLeft()
	angle, _ := rotated.Angle()
	fmt.Println(moved, rotated, angle == balance.AngleWest)
	// Output:
	// -1 -1
	// Top Left true
}

// ExampleFromAngle shows the exact and nearest angle policies.
func ExampleFromAngle() {
	b, _ := balance.FromAngle(270)
	fmt.Println(b)

	_, err := balance.FromAngle(46)
	fmt.Println(errors.Is(err, balance.ErrInvalidAngle))

	b, _ = balance.FromAngle(46, balance.WithNearest())
	fmt.Println(b)
	// Output:
	// Bottom
	// true
	// TopRight
}

// ExampleBalance_Add shows clamped arithmetic.
func ExampleBalance_Add() {
	fmt.Println(balance.Right.Add(balance.Right))
	fmt.Println(balance.Top.Add(balance.Right))
	fmt.Println(balance.TopLeft.Sub(balance.BottomRight))
	// Output:
	// Right
	// TopRight
	// TopLeft
}

// ExampleBalance_Possibly reads the grid as a pair of ternary truth values.
func ExampleBalance_Possibly() {
	b, _ := balance.FromTernaryPair(ternary.Zero, ternary.Neg)
	fmt.Println(b, b.Possibly(), b.Necessary())

	_, err := balance.Center.ToBool()
	fmt.Println(err)
	// Output:
	// Top TopRight TopLeft
	// balance: value is uncertain: Center
}
