// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/num"
)

// ExampleHouseholder reflects v = (1, 2, 3)ᵀ and prints the reflector.
func ExampleHouseholder() {
	v := matrix.MustNew([][]num.Real{{1}, {2}, {3}})
	h, err := matrix.Householder(v)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(h)
	// Output:
	// |  0.857  -0.286  -0.429 |
	// | -0.286   0.429  -0.857 |
	// | -0.429  -0.857  -0.286 |
}

// ExampleDyadic builds the outer product of a column and a row vector.
func ExampleDyadic() {
	col := matrix.MustNew([][]num.Real{{1}, {2}, {3}})
	row := matrix.MustNew([][]num.Real{{1, 2, 3}})
	d, _ := matrix.Dyadic(col, row)
	fmt.Println(d)
	// Output:
	// | 1.000  2.000  3.000 |
	// | 2.000  4.000  6.000 |
	// | 3.000  6.000  9.000 |
}

// ExampleDense_MulAssign shows that the receiver takes the product's shape.
func ExampleDense_MulAssign() {
	a := matrix.MustNew([][]num.Real{{1, 2, 3}, {4, 5, 6}})
	b := matrix.MustNew([][]num.Real{{1, 0}, {0, 1}, {1, 1}})
	if err := a.MulAssign(b); err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(a.Shape())
	fmt.Println(a)
	// Output:
	// 2 2
	// |  4.000   5.000 |
	// | 10.000  11.000 |
}

// ExampleDeterminant evaluates a 3×3 determinant by cofactor expansion.
func ExampleDeterminant() {
	m := matrix.MustNew([][]num.Real{{4, 0, 4}, {3, -4, 3}, {4, -2, 1}})
	d, _ := matrix.Determinant(m)
	fmt.Println(d)
	// Output: 48
}

// ExampleRotation2D builds a 30° rotation with CORDIC trig.
func ExampleRotation2D() {
	r := matrix.Rotation2D(num.Pi/6, matrix.WithCORDIC(0))
	fmt.Println(r)
	// Output:
	// |  0.866  -0.500 |
	// |  0.500   0.866 |
}

// ExampleMul reports a shape mismatch.
func ExampleMul() {
	a, _ := matrix.Zeros(2, 3)
	_, err := matrix.Mul(a, a)
	fmt.Println(err)
	// Output: Mul: ValidateMulCompatible: can't multiply 2x3 with 2x3: matrix: shape mismatch
}
