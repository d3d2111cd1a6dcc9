// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep kernels/facades minimal by delegating nil/shape/vector checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every argument is non-nil.
// Returns ErrNilMatrix for the first nil operand.
func ValidateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a, b) → identical shapes.
// Used by Add/Sub and AllClose.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.r, a.c, b.r, b.c),
			ErrShapeMismatch,
		)
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols.
// Used before Determinant and Pow.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.r, m.c), ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a, b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: can't multiply %dx%d with %dx%d", a.r, a.c, b.r, b.c),
			ErrShapeMismatch,
		)
	}

	return nil
}

// ValidateDotOperands – Composite: NotNil → a row vector, b column vector → equal length.
func ValidateDotOperands(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if !a.IsRowVector() || !b.IsColumnVector() {
		return validatorErrorf("ValidateDotOperands: want row · column", ErrInvalidVectorShape)
	}
	if len(a.data) != len(b.data) {
		return validatorErrorf(
			fmt.Sprintf("ValidateDotOperands: lengths %d and %d", len(a.data), len(b.data)),
			ErrInvalidVectorShape,
		)
	}

	return nil
}

// ValidateDyadicOperands – Composite: NotNil → a column vector, b row vector.
func ValidateDyadicOperands(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if !a.IsColumnVector() || !b.IsRowVector() {
		return validatorErrorf("ValidateDyadicOperands: want column ⊗ row", ErrInvalidVectorShape)
	}

	return nil
}

// ValidateColumnVector – Composite: NotNil → Cols == 1 → (optional) exact length.
// Pass length < 0 to accept any length.
func ValidateColumnVector(v *Dense, length int) error {
	if err := ValidateNotNil(v); err != nil {
		return err
	}
	if !v.IsColumnVector() {
		return validatorErrorf(fmt.Sprintf("ValidateColumnVector: %dx%d", v.r, v.c), ErrInvalidVectorShape)
	}
	if length >= 0 && v.r != length {
		return validatorErrorf(
			fmt.Sprintf("ValidateColumnVector: length %d, want %d", v.r, length),
			ErrInvalidVectorShape,
		)
	}

	return nil
}
