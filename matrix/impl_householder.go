// SPDX-License-Identifier: MIT
// Package matrix - Householder reflector.

package matrix

import "fmt"

const opHouseholder = "Householder"

// Householder returns the reflector H = I - 2·(v vᵀ)/(vᵀ v) for a column vector v.
// Implementation:
//   - Stage 1: ValidateColumnVector(v); s = max|v[i]|, reject s == 0.
//   - Stage 2: u = v / s; H(u) == H(v) and 1 ≤ uᵀu ≤ n.
//   - Stage 3: P = Dyadic(u, uᵀ) scaled by -2/(uᵀ u).
//   - Stage 4: add 1 on the diagonal; bit-identical to I - 2·uuᵀ/(uᵀu).
//
// Behavior highlights:
//   - H is symmetric and orthogonal; H·v = -v and H·w = w for every w ⟂ v.
//   - Only the all-zero vector is rejected; tiny or huge entries are fine.
//   - NaN or ±Inf entries propagate as NaN entries of H.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidVectorShape (not a column vector, or v = 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Householder(v *Dense) (*Dense, error) {
	if err := ValidateColumnVector(v, -1); err != nil {
		return nil, matrixErrorf(opHouseholder, err)
	}

	s := ewMaxAbs(v.data)
	if s == 0 {
		return nil, matrixErrorf(opHouseholder, fmt.Errorf("zero vector: %w", ErrInvalidVectorShape))
	}

	u := newDense(v.r, 1)
	for i, x := range v.data {
		u.data[i] = x / s
	}
	ut := &Dense{r: 1, c: u.r, data: u.data} // shares u's buffer; read-only below
	utu := ewDot(ut.data, u.data)

	p, err := Dyadic(u, ut)
	if err != nil {
		return nil, matrixErrorf(opHouseholder, err)
	}
	ewScaleInPlace(p.data, -2/utu)
	for i := 0; i < p.r; i++ {
		p.data[i*p.c+i]++
	}

	return p, nil
}
