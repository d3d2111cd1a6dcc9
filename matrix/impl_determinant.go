// SPDX-License-Identifier: MIT
// Package matrix - determinant by cofactor (Laplace) expansion.
//
// Purpose:
//   - Compute det(A) with the textbook recursion along row 0.
//   - Expose Minor and Cofactor, the two building blocks of the recursion.
//
// Notes:
//   - This is O(n!) time with recursion depth n. It is kept deliberately: the
//     expansion has no pivoting, so its rounding differs from LU-based
//     determinants and its results are the reference for this package.
//   - Every minor buffer is sized (n-1)² up front; no incremental growth.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/num"
)

const (
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opMinor       = "Minor"
)

// Determinant returns det(m).
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: 1×1 base case returns the single entry.
//   - Stage 3: det = Σ_c m[0,c] * cofactor(0,c), c ascending.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), recursion depth n, Space O(n²) live minors along one path.
func Determinant(m *Dense) (num.Real, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(m), nil
}

// Cofactor returns (-1)^(row+col) * det(Minor(m, row, col)).
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (1×1 has no minors),
// ErrOutOfRange.
func Cofactor(m *Dense, row, col int) (num.Real, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if err := checkMinor(m, row, col); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactor(m, row, col), nil
}

// Minor returns the (r-1)×(c-1) matrix obtained by deleting row and col,
// keeping the relative order of the remaining entries.
// Errors: ErrNilMatrix, ErrInvalidDimensions (no row or column left), ErrOutOfRange.
// Complexity: O(r*c).
func Minor(m *Dense, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := checkMinor(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minor(m, row, col), nil
}

func checkMinor(m *Dense, row, col int) error {
	if m.r < 2 || m.c < 2 {
		return fmt.Errorf("%dx%d has no minors: %w", m.r, m.c, ErrInvalidDimensions)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return fmt.Errorf("(%d,%d): %w", row, col, err)
	}

	return nil
}

// det is the unchecked recursion; m is square and non-empty.
func det(m *Dense) num.Real {
	if m.r == 1 {
		return m.data[0]
	}

	var sum num.Real
	for c := 0; c < m.c; c++ {
		sum += m.data[c] * cofactor(m, 0, c)
	}

	return sum
}

func cofactor(m *Dense, row, col int) num.Real {
	sign := num.Real(1)
	if (row+col)%2 != 0 {
		sign = -1
	}

	return sign * det(minor(m, row, col))
}

// minor copies every entry except row and col, in row-major order.
func minor(m *Dense, row, col int) *Dense {
	res := &Dense{r: m.r - 1, c: m.c - 1, data: make([]num.Real, 0, (m.r-1)*(m.c-1))}
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j != col {
				res.data = append(res.data, m.data[i*m.c+j])
			}
		}
	}

	return res
}
