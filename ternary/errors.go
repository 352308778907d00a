// SPDX-License-Identifier: MIT

package ternary

import "errors"

// ErrInvalidDigit indicates an integer outside {-1, 0, 1}.
var ErrInvalidDigit = errors.New("ternary: digit must be -1, 0 or 1")
