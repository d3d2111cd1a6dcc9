// SPDX-License-Identifier: MIT

//go:build fastmath

package matrix

import (
	"github.com/meko-christian/algo-approx"

	"github.com/katalvlaran/lvmath/num"
)

// sqrtReal computes the square root used by Norm with a fast approximation.
func sqrtReal(x num.Real) num.Real {
	return num.Real(approx.FastSqrt(float64(x)))
}
