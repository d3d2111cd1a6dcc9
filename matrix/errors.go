// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag via %w) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions; panics are reserved
// for Must* helpers and option constructors (programmer errors).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap as "<Op>: matrix: ..." through
// matrixErrorf; accessors as "Dense.At(r,c): matrix: ...".
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> dimensions -> shape/vector shape -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrShapeMismatch indicates incompatible shapes: Add/Sub of different shapes,
	// Mul where a.Cols != b.Rows, or a buffer whose length is not rows*cols.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, never clamp or wrap.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a quadratic matrix was required (Determinant, Pow).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidVectorShape signals that Dot/Dyadic/Cross/Householder received
	// operands of the wrong orientation or length.
	ErrInvalidVectorShape = errors.New("matrix: invalid vector shape")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Aliases under the names used by the kernel's public contract.
// They are the same sentinel values, so errors.Is matches either name.
var (
	ErrDimensionMismatch = ErrShapeMismatch
	ErrIndexOutOfBounds  = ErrOutOfRange
	ErrNonSquareMatrix   = ErrNonSquare
)
