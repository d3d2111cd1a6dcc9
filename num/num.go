// SPDX-License-Identifier: MIT

package num

import "math"

// Mod returns the truncated remainder x - trunc(x/y)*y, carrying the sign of x.
// Evaluated in float64 and rounded back, so float32 builds get the correctly
// rounded remainder of their operands.
func Mod(x, y Real) Real {
	return Real(math.Mod(float64(x), float64(y)))
}

// Abs returns |x|.
func Abs(x Real) Real {
	return Real(math.Abs(float64(x)))
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x Real) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
