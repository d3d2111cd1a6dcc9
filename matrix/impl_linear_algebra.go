// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic operators on Dense: element-wise
// addition, subtraction, negation, scalar scaling, matrix multiplication and
// transpose, in allocating and in-place forms. All functions perform strict
// fail-fast validation and return clear errors on shape mismatches.
//
// Purpose:
//   - Define operation tags and the shared error wrapper.
//   - Keep Mul a naive i→j→k triple loop so results are reproducible bit for bit.
//
// Notes:
//   - Flat element-wise work is delegated to the ew* kernels (kernels_*.go).
//   - In-place forms swap in a fully computed buffer and shape in one step.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/num"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd              = "Add"
	opSub              = "Sub"
	opMul              = "Mul"
	opMulAssign        = "MulAssign"
	opNeg              = "Neg"
	opScale            = "Scale"
	opScaleInPlace     = "ScaleInPlace"
	opTranspose        = "Transpose"
	opTransposeInPlace = "TransposeInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: one flat pass through ewAdd into a buffer sized r*c.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res := newDense(a.r, a.c)
	ewAdd(res.data, a.data, b.data)

	return res, nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	res := newDense(a.r, a.c)
	ewSub(res.data, a.data, b.data)

	return res, nil
}

// Neg returns -m as a fresh Dense.
// Complexity: O(r*c).
func Neg(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	res := newDense(m.r, m.c)
	ewScale(res.data, m.data, -1)

	return res, nil
}

// Scale returns a new matrix whose elements are s * m[i,j].
// The original matrix is never mutated.
// Complexity: O(r*c).
func Scale(m *Dense, s num.Real) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDense(m.r, m.c)
	ewScale(res.data, m.data, s)

	return res, nil
}

// ScaleInPlace multiplies every entry of m by s.
// Complexity: O(r*c), no allocation.
func (m *Dense) ScaleInPlace(s num.Real) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScaleInPlace, err)
	}
	ewScaleInPlace(m.data, s)

	return nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; each C[i,j] accumulates A[i,k]*B[k,j]
//     for k = 0, 1, ..., starting from zero.
//
// Behavior highlights:
//   - Summation order is fixed (increasing k), so results are reproducible.
//   - No zero skipping: 0*Inf still yields NaN as IEEE arithmetic dictates.
//
// Inputs:
//   - A: left matrix with shape (p × q).
//   - B: right matrix with shape (q × r).
//
// Returns:
//   - *Dense: new C with shape (p × r).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(p*q*r), Space O(p*r).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(a, b), nil
}

// mulDense is the unchecked kernel behind Mul, MulAssign and Pow.
func mulDense(a, b *Dense) *Dense {
	res := newDense(a.r, b.c)
	var (
		i, j, k    int
		rowA, rowR int
		sum        num.Real
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for j = 0; j < b.c; j++ {
			sum = 0
			for k = 0; k < a.c; k++ {
				sum += a.data[rowA+k] * b.data[k*b.c+j]
			}
			res.data[rowR+j] = sum
		}
	}

	return res
}

// MulAssign replaces m with m × rhs.
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, rhs).
//   - Stage 2: compute the product into a fresh buffer (rhs may alias m).
//   - Stage 3: install the buffer and set the shape to (m.Rows, rhs.Cols).
//
// Behavior highlights:
//   - Works for any conformable shapes, not only square products: a p×q
//     matrix times a q×r matrix becomes p×r.
//   - On error m is left untouched.
//
// Complexity:
//   - Time O(p*q*r), Space O(p*r).
func (m *Dense) MulAssign(rhs *Dense) error {
	if err := ValidateMulCompatible(m, rhs); err != nil {
		return matrixErrorf(opMulAssign, err)
	}

	res := mulDense(m, rhs)
	m.data = res.data
	m.c = res.c // rows are unchanged by a left product

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: walk the result in row-major order, reading m column by column.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return &Dense{r: m.c, c: m.r, data: transposeData(m)}, nil
}

// TransposeInPlace swaps the shape of m and rebuilds its buffer in
// transposed order. The result is bit-identical to Transpose(m).
// Complexity: O(r*c) time, one r*c buffer.
func (m *Dense) TransposeInPlace() error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opTransposeInPlace, err)
	}

	m.data = transposeData(m)
	m.r, m.c = m.c, m.r

	return nil
}

// transposeData returns m's entries in column-major order, i.e. the
// row-major buffer of mᵀ.
func transposeData(m *Dense) []num.Real {
	out := make([]num.Real, 0, len(m.data))
	for j := 0; j < m.c; j++ {
		for i := 0; i < m.r; i++ {
			out = append(out, m.data[i*m.c+j])
		}
	}

	return out
}
