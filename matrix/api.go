// SPDX-License-Identifier: MIT
// Package matrix - public constructors.
//
// Purpose:
//   - Provide the canonical ways to build a Dense: nested literal, flat buffer,
//     zero-fill, constant-fill and identity.
//   - Validate shape before allocating; every buffer is sized exactly once.
//
// Determinism & Policy:
//   - Constructors never pad or truncate: a buffer of the wrong length fails
//     with ErrShapeMismatch.
//   - Rotation builders live in impl_rotation.go.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/num"
)

const (
	opNew      = "New"
	opFrom     = "From"
	opFill     = "Fill"
	opIdentity = "Identity"
)

// New builds a matrix from a nested row literal.
// Implementation:
//   - Stage 1: require at least one row and one column.
//   - Stage 2: require every row to have the length of rows[0].
//   - Stage 3: copy rows into one buffer sized len(rows)*len(rows[0]).
//
// Errors:
//   - ErrInvalidDimensions (no rows, or empty first row).
//   - ErrShapeMismatch (ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows [][]num.Real) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}

	r, c := len(rows), len(rows[0])
	if err := checkDims(r, c); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	data := make([]num.Real, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrShapeMismatch))
		}
		data = append(data, row...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// MustNew is New for literals known to be well-formed; it panics on error.
// Intended for tests, examples and package-level fixtures.
func MustNew(rows [][]num.Real) *Dense {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// From wraps a flat row-major buffer as a rows×cols matrix.
// The matrix takes ownership of data; the caller must not retain it.
//
// Errors:
//   - ErrInvalidDimensions (rows or cols ≤ 0, or rows*cols overflows int).
//   - ErrShapeMismatch (len(data) != rows*cols).
//
// Complexity:
//   - Time O(1), Space O(1).
func From(data []num.Real, rows, cols int) (*Dense, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFrom, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFrom, fmt.Errorf("length %d doesn't match %dx%d: %w", len(data), rows, cols, ErrShapeMismatch))
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Zeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of NewDense with an intention-revealing name.
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// Fill returns a rows×cols matrix with every entry set to value.
// Complexity: O(r*c).
func Fill(value num.Real, rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFill, err)
	}
	for i := range m.data {
		m.data[i] = value
	}

	return m, nil
}

// Identity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return setIdentity(m), nil
}

// identity is Identity for n already known to be ≥ 1.
func identity(n int) *Dense {
	return setIdentity(newDense(n, n))
}

// setIdentity writes 1 on the diagonal of a freshly zeroed square m.
func setIdentity(m *Dense) *Dense {
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return m
}
