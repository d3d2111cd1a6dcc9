// Package matrix is a dense, row-major matrix kernel over num.Real.
//
// The matrix package provides:
//
//   - Dense storage with bounds-checked At/Set and shape predicates.
//   - Constructors: New (nested literal), From (flat buffer), Zeros, Fill,
//     Identity, and the rotation builders Rotation2D / Rotation3D.
//   - Operators: Add, Sub, Mul, Scale, Neg, plus the in-place forms
//     ScaleInPlace, MulAssign, TransposeInPlace, PowInPlace.
//   - Algorithms: Laplace-expansion Determinant (with Cofactor and Minor),
//     Transpose, Pow by squaring, Dot, Dyadic, Cross, Norm and the
//     Householder reflector.
//   - A fixed-width text rendering (String) and gonum interop.
//
// All operations return sentinel errors (ErrShapeMismatch, ErrOutOfRange,
// ErrNonSquare, ErrInvalidVectorShape, ...) wrapped with an operation tag;
// match them with errors.Is. Nothing panics on bad input.
//
// Determinant is the naive O(n!) cofactor expansion: it is a
// reference kernel, not a factorization library.
//
// The scalar width follows package num: float64 by default, float32 under
// the `real32` build tag. The `fastmath` tag swaps Norm's square root for a
// fast approximation.
package matrix
