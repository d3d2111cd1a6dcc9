// SPDX-License-Identifier: MIT
// Package matrix - conversion to and from gonum's mat.Dense.
//
// Notes:
//   - gonum stores float64; in the real32 build entries are widened on the way
//     out and rounded on the way in.
//   - Both directions copy; neither side aliases the other's buffer.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmath/num"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
// Errors: ErrNilMatrix.
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any mat.Matrix into a new Dense.
// Errors: ErrInvalidDimensions for an empty (0-row or 0-column) matrix.
// Complexity: O(r*c) calls to a.At.
func FromGonum(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, ErrInvalidDimensions))
	}

	res := newDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res.data[i*c+j] = num.Real(a.At(i, j))
		}
	}

	return res, nil
}
