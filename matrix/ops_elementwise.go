// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison of two matrices: exact (Equal) and
//     tolerance-based (AllClose).
//
// Determinism & Performance:
//   - Flat 0..n-1 pass over both buffers, early exit on the first mismatch.
//   - No allocation; O(r*c) time.
//
// AI-Hints:
//   - Use Equal for integer-valued fixtures (Pow, Transpose) where every
//     operation is exact; use AllClose for anything involving division or trig.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/num"
)

const (
	opEqual    = "Equal"
	opAllClose = "AllClose"
)

// Equal reports whether a and b have the same shape and bit-for-bit equal
// entries under ==. NaN entries are never equal; +0 equals -0.
// Errors: ErrNilMatrix.
func Equal(a, b *Dense) (bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false, nil
		}
	}

	return true, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrShapeMismatch).
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b *Dense, rtol, atol num.Real) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = num.Abs(rtol), num.Abs(atol)

	var x, y float64
	for i := range a.data {
		x, y = float64(a.data[i]), float64(b.data[i])
		switch {
		case x == y: // covers equal infinities
			continue
		case math.IsNaN(x) || math.IsNaN(y), math.IsInf(x, 0) || math.IsInf(y, 0):
			return false, nil
		}
		if math.Abs(x-y) > float64(atol)+float64(rtol)*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
