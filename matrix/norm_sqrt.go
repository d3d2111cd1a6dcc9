// SPDX-License-Identifier: MIT

//go:build !fastmath

package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/num"
)

// sqrtReal computes the square root used by Norm.
func sqrtReal(x num.Real) num.Real {
	return num.Real(math.Sqrt(float64(x)))
}
