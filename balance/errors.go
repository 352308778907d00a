// SPDX-License-Identifier: MIT

package balance

import "errors"

// Sentinel errors for balance conversions. Match them with errors.Is;
// returned errors may wrap them with the offending input.
var (
	// ErrInvalidCoordinate indicates an (x, y) pair with a component outside {-1, 0, 1}.
	ErrInvalidCoordinate = errors.New("balance: coordinate out of range")

	// ErrInvalidRank indicates a rank outside -4..4.
	ErrInvalidRank = errors.New("balance: rank out of range")

	// ErrInvalidAngle indicates an angle that does not name one of the eight directions.
	ErrInvalidAngle = errors.New("balance: angle is not a multiple of 45 degrees")

	// ErrUndefinedAngle is returned by Angle on Center, the zero vector.
	ErrUndefinedAngle = errors.New("balance: center has no angle")

	// ErrUncertainValue indicates a boolean was requested from an Unknown digit.
	ErrUncertainValue = errors.New("balance: value is uncertain")
)
