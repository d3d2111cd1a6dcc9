// SPDX-License-Identifier: MIT

//go:build !real32

package num

import "math"

// Real is the scalar type of the current build.
type Real = float64

const (
	// Bits is the width of Real in bits.
	Bits = 64

	// Epsilon is the distance from 1.0 to the next representable Real.
	Epsilon Real = 0x1p-52

	// Pi is π rounded to Real.
	Pi Real = math.Pi
)
