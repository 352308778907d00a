// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math"
)

// Canonical angles in degrees, counter-clockwise from Right.
const (
	AngleEast      = 0.0
	AngleNorthEast = 45.0
	AngleNorth     = 90.0
	AngleNorthWest = 135.0
	AngleWest      = 180.0
	AngleSouthWest = -135.0
	AngleSouth     = -90.0
	AngleSouthEast = -45.0
)

// AngleOption configures FromAngle.
type AngleOption func(*angleOptions)

// angleOptions holds the resolved FromAngle policy.
type angleOptions struct {
	// nearest snaps the angle to the closest multiple of 45° before matching.
	nearest bool
}

// defaultAngleOptions returns the exact-match policy.
func defaultAngleOptions() angleOptions {
	return angleOptions{nearest: false}
}

// WithExact accepts only exact multiples of 45°. This is the default.
func WithExact() AngleOption {
	return func(o *angleOptions) { o.nearest = false }
}

// WithNearest snaps any finite angle to the closest of the eight
// directions. Halfway angles (22.5°, 67.5°, …) round away from 0°.
func WithNearest() AngleOption {
	return func(o *angleOptions) { o.nearest = true }
}

// Angle returns the direction of b in degrees on (-180, 180].
// The values come from a fixed table, so they are exact.
// Returns ErrUndefinedAngle for Center.
func (b Balance) Angle() (float64, error) {
	switch b {
	case Right:
		return AngleEast, nil
	case TopRight:
		return AngleNorthEast, nil
	case Top:
		return AngleNorth, nil
	case TopLeft:
		return AngleNorthWest, nil
	case Left:
		return AngleWest, nil
	case BottomLeft:
		return AngleSouthWest, nil
	case Bottom:
		return AngleSouth, nil
	case BottomRight:
		return AngleSouthEast, nil
	case Center:
		return 0, ErrUndefinedAngle
	}
	panic(fmt.Sprintf("balance: invalid value %d", int8(b)))
}

// FromAngle returns the Balance pointing at deg degrees.
//
// deg is first reduced modulo 360 into (-180, 180], so 270 means -90 (Bottom)
// and -180 means 180 (Left). By default the reduced angle must then equal
// one of the eight canonical angles exactly; pass WithNearest to round it
// instead. Center is never returned.
//
// Returns ErrInvalidAngle for NaN, ±Inf, or an angle that is not a multiple
// of 45° under the exact policy.
func FromAngle(deg float64, opts ...AngleOption) (Balance, error) {
	o := defaultAngleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return Center, fmt.Errorf("%w: %v", ErrInvalidAngle, deg)
	}

	a := normalizeAngle(deg)
	if o.nearest {
		a = math.Round(a/45) * 45
		if a <= -180 {
			a = AngleWest
		}
	}

	switch a {
	case AngleEast:
		return Right, nil
	case AngleNorthEast:
		return TopRight, nil
	case AngleNorth:
		return Top, nil
	case AngleNorthWest:
		return TopLeft, nil
	case AngleWest:
		return Left, nil
	case AngleSouthWest:
		return BottomLeft, nil
	case AngleSouth:
		return Bottom, nil
	case AngleSouthEast:
		return BottomRight, nil
	}
	return Center, fmt.Errorf("%w: %v", ErrInvalidAngle, deg)
}

// normalizeAngle reduces a finite angle into (-180, 180].
func normalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	switch {
	case a > 180:
		a -= 360
	case a <= -180:
		a += 360
	}
	return a
}
