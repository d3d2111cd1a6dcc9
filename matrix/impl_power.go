// SPDX-License-Identifier: MIT
// Package matrix - integer powers of square matrices.

package matrix

const (
	opPow        = "Pow"
	opPowInPlace = "PowInPlace"
)

// Pow returns m^p by recursive squaring.
// Implementation:
//   - p == 0 → Identity(n); p == 1 → copy of m.
//   - otherwise h = m^(p/2); result = h·h, times m when p is odd.
//
// Behavior highlights:
//   - Every product goes through the same fixed-order kernel as Mul, so
//     m^(p+q) equals m^p · m^q exactly whenever no rounding occurs.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - O(n³ log p) time, recursion depth O(log p).
func Pow(m *Dense, p uint) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	return powDense(m, p), nil
}

// PowInPlace replaces m with m^p. On error m is left untouched.
func (m *Dense) PowInPlace(p uint) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opPowInPlace, err)
	}
	m.data = powDense(m, p).data

	return nil
}

func powDense(m *Dense, p uint) *Dense {
	switch p {
	case 0:
		return identity(m.r)
	case 1:
		return m.Clone()
	}

	half := powDense(m, p/2)
	res := mulDense(half, half)
	if p%2 == 1 {
		res = mulDense(res, m)
	}

	return res
}
