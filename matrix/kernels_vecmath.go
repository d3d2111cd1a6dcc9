// SPDX-License-Identifier: MIT

//go:build !real32

// Package: matrix
//
// Purpose:
//   - Route the flat element-wise kernels through algo-vecmath, which picks a
//     SIMD or generic implementation at first use.
//   - Only element-wise and reduction kernels live here; Mul keeps its own
//     fixed i→j→k loop so its summation order never depends on dispatch.
//
// Notes:
//   - vecmath is float64-only; the real32 build uses kernels_generic.go.
//   - Element-wise add/scale are exact under any dispatch. Dot and sum-of-squares
//     may reassociate under SIMD; callers treat them as approximate.

package matrix

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/lvmath/num"
)

// ewAdd computes dst[i] = a[i] + b[i].
func ewAdd(dst, a, b []num.Real) { vecmath.AddBlock(dst, a, b) }

// ewSub computes dst[i] = a[i] - b[i] as a + (-1)*b (exact).
// dst must not alias a.
func ewSub(dst, a, b []num.Real) {
	vecmath.ScaleBlock(dst, b, -1)
	vecmath.AddBlockInPlace(dst, a)
}

// ewScale computes dst[i] = s * src[i].
func ewScale(dst, src []num.Real, s num.Real) { vecmath.ScaleBlock(dst, src, s) }

// ewScaleInPlace computes dst[i] *= s.
func ewScaleInPlace(dst []num.Real, s num.Real) { vecmath.ScaleBlockInPlace(dst, s) }

// ewDot returns Σ a[i]*b[i]; len(a) == len(b) is guaranteed by callers.
func ewDot(a, b []num.Real) num.Real { return vecmath.DotProduct(a, b) }

// ewSumSquares returns Σ x[i]².
func ewSumSquares(x []num.Real) num.Real { return vecmath.DotProduct(x, x) }

// ewMaxAbs returns max |x[i]| (0 for an empty slice).
func ewMaxAbs(x []num.Real) num.Real { return vecmath.MaxAbs(x) }
