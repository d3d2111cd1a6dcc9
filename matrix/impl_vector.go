// SPDX-License-Identifier: MIT
// Package matrix - vector products on row/column-vector Dense values.
//
// Purpose:
//   - Dot (row · column → scalar), Dyadic (column ⊗ row → matrix),
//     Cross (3×1 × 3×1 → 3×1) and the Euclidean Norm.
//
// Notes:
//   - Orientation is part of the contract: Dot(u, v) wants u as a row
//     vector; call Transpose first when you hold two columns.

package matrix

import "github.com/katalvlaran/lvmath/num"

const (
	opDot    = "Dot"
	opDyadic = "Dyadic"
	opCross  = "Cross"
	opNorm   = "Norm"
)

// Dot returns Σ a[i]*b[i] for a row vector a and a column vector b of equal length.
// Errors: ErrNilMatrix, ErrInvalidVectorShape.
// Complexity: O(n).
func Dot(a, b *Dense) (num.Real, error) {
	if err := ValidateDotOperands(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return ewDot(a.data, b.data), nil
}

// Dyadic returns the outer product a ⊗ b of a column vector a (n×1) and a
// row vector b (1×k): an n×k matrix with entry (i,j) = a[i]*b[j].
// Errors: ErrNilMatrix, ErrInvalidVectorShape.
// Complexity: O(n*k).
func Dyadic(a, b *Dense) (*Dense, error) {
	if err := ValidateDyadicOperands(a, b); err != nil {
		return nil, matrixErrorf(opDyadic, err)
	}

	res := newDense(a.r, b.c)
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			res.data[i*b.c+j] = a.data[i] * b.data[j]
		}
	}

	return res, nil
}

// Cross returns the 3D cross product a × b of two 3×1 column vectors.
// Errors: ErrNilMatrix, ErrInvalidVectorShape.
func Cross(a, b *Dense) (*Dense, error) {
	if err := ValidateColumnVector(a, 3); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateColumnVector(b, 3); err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	l, r := a.data, b.data

	return &Dense{r: 3, c: 1, data: []num.Real{
		l[1]*r[2] - l[2]*r[1],
		l[2]*r[0] - l[0]*r[2],
		l[0]*r[1] - l[1]*r[0],
	}}, nil
}

// Norm returns the Euclidean (Frobenius) norm sqrt(Σ m[i,j]²) over all entries.
// For vectors this is the usual L2 length.
// Errors: ErrNilMatrix.
func Norm(m *Dense) (num.Real, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return sqrtReal(ewSumSquares(m.data)), nil
}
