// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Keep the invariant len(data) == r*c at every observable point.
//
// AI-Hints:
//   - Hot kernels (impl_linear_algebra.go, impl_determinant.go) index data directly.
//   - Use RowsAt/Column to materialize independent copies of rows or a column.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RowsAt: O(k*c); Column: O(r).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/num"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRowsAt = "RowsAt" // method tag used in error wrappers
	ctxColumn = "Column" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns data. In-place methods (ScaleInPlace, MulAssign,
// TransposeInPlace, PowInPlace) replace data and shape together before
// returning; a Dense must not be mutated while another goroutine reads it.
type Dense struct {
	r, c int        // row and column counts
	data []num.Real // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits in an int;
//     else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of exactly rows*cols entries.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	return newDense(rows, cols), nil
}

// checkDims rejects non-positive shapes and shapes whose element count
// rows*cols does not fit in an int.
func checkDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if cols > math.MaxInt/rows {
		return fmt.Errorf("%dx%d overflows int: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// newDense allocates without validation; callers guarantee rows, cols ≥ 1.
// The buffer is sized once, up front, to exactly rows*cols.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]num.Real, rows*cols)}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of entries, Rows()*Cols().
func (m *Dense) Len() int { return len(m.data) }

// IsQuadratic reports whether the matrix is square (m == n).
func (m *Dense) IsQuadratic() bool { return m.r == m.c }

// IsRowVector reports whether the matrix has exactly one row.
func (m *Dense) IsRowVector() bool { return m.r == 1 }

// IsColumnVector reports whether the matrix has exactly one column.
func (m *Dense) IsColumnVector() bool { return m.c == 1 }

// IsVector reports whether the matrix is a row or a column vector.
func (m *Dense) IsVector() bool { return m.IsRowVector() || m.IsColumnVector() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods (At/Set) wrap with coordinates.
//   - Never clamps or wraps negative/overflowing indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped as "Dense.At(r,c): ...").
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (num.Real, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Non-finite values are stored as given; NaN/Inf propagate through later
// arithmetic rather than being rejected here.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v num.Real) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Data returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Dense) Data() []num.Real {
	cp := make([]num.Real, len(m.data))
	copy(cp, m.data)

	return cp
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c) time and space.
func (m *Dense) Clone() *Dense {
	cp := make([]num.Real, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RowsAt materializes the listed rows, in the given order, into a new
// len(indices)×Cols() matrix. Duplicates are allowed.
// Errors:
//   - ErrInvalidDimensions when indices is empty.
//   - ErrOutOfRange for any row outside [0, Rows()).
//
// Complexity: O(len(indices)*c).
func (m *Dense) RowsAt(indices ...int) (*Dense, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxRowsAt, ErrInvalidDimensions)
	}

	res := newDense(len(indices), m.c)
	for k, ri := range indices {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxRowsAt, ri, ErrOutOfRange)
		}
		copy(res.data[k*m.c:(k+1)*m.c], m.data[ri*m.c:(ri+1)*m.c])
	}

	return res, nil
}

// Column materializes column j as a Rows()×1 column vector.
// Errors: ErrOutOfRange for j outside [0, Cols()).
// Complexity: O(r).
func (m *Dense) Column(j int) (*Dense, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxColumn, j, ErrOutOfRange)
	}

	res := newDense(m.r, 1)
	for i := 0; i < m.r; i++ {
		res.data[i] = m.data[i*m.c+j]
	}

	return res, nil
}
