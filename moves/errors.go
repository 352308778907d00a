// SPDX-License-Identifier: MIT

package moves

import "errors"

var (
	// ErrLengthMismatch indicates two paths that must be zipped differ in length.
	ErrLengthMismatch = errors.New("moves: path lengths differ")
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("moves: index out of range")
)
