// SPDX-License-Identifier: MIT

//go:build real32

// Package: matrix
//
// Purpose:
//   - Plain-loop element-wise kernels for the float32 build (algo-vecmath is
//     float64-only). Same contracts as kernels_vecmath.go; fixed 0..n-1 order.

package matrix

import "github.com/katalvlaran/lvmath/num"

// ewAdd computes dst[i] = a[i] + b[i].
func ewAdd(dst, a, b []num.Real) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// ewSub computes dst[i] = a[i] - b[i].
func ewSub(dst, a, b []num.Real) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ewScale computes dst[i] = s * src[i].
func ewScale(dst, src []num.Real, s num.Real) {
	for i := range dst {
		dst[i] = src[i] * s
	}
}

// ewScaleInPlace computes dst[i] *= s.
func ewScaleInPlace(dst []num.Real, s num.Real) {
	for i := range dst {
		dst[i] *= s
	}
}

// ewDot returns Σ a[i]*b[i] accumulated in increasing i.
func ewDot(a, b []num.Real) num.Real {
	var sum num.Real
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// ewSumSquares returns Σ x[i]².
func ewSumSquares(x []num.Real) num.Real { return ewDot(x, x) }

// ewMaxAbs returns max |x[i]| (0 for an empty slice).
func ewMaxAbs(x []num.Real) num.Real {
	var m num.Real
	for _, v := range x {
		if a := num.Abs(v); a > m {
			m = a
		}
	}

	return m
}
