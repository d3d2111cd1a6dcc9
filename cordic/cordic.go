// SPDX-License-Identifier: MIT

package cordic

import (
	"math"

	"github.com/katalvlaran/lvmath/num"
)

const (
	twoPi  = 2 * num.Pi
	halfPi = num.Pi / 2
)

// Reduce maps alpha into [-π, π].
// Implementation:
//   - Stage 1: alpha mod 2π (truncated remainder; sign follows alpha).
//   - Stage 2: one fix-up: +2π when below -π, -2π when above π.
//
// Complexity: O(1).
func Reduce(alpha num.Real) num.Real {
	alpha = num.Mod(alpha, twoPi)
	if alpha < -num.Pi {
		alpha += twoPi
	} else if alpha > num.Pi {
		alpha -= twoPi
	}

	return alpha
}

// SinCos returns (cos α, sin α) using DefaultIterations.
// See SinCosN for the algorithm and its convergence domain.
func SinCos(alpha num.Real) (cos, sin num.Real) {
	return SinCosN(alpha, DefaultIterations)
}

// SinCosN returns (cos α, sin α) computed with n CORDIC iterations.
// Implementation:
//   - Stage 1: Reduce alpha into [-π, π].
//   - Stage 2: rotate (1,0) by ±atan(2^-i) for i in [0,n), steering θ toward alpha.
//   - Stage 3: multiply both components by Gains[n-1].
//
// Behavior highlights:
//   - n is clamped to [1, MaxIterations]; never fails.
//   - Accuracy improves monotonically with n inside the convergence domain
//     |alpha| ≤ ConvergenceLimit(n); outside it the result is unit length
//     but not the requested angle.
//   - NaN/±Inf propagate as NaN.
//
// Complexity:
//   - Time O(n), Space O(1).
func SinCosN(alpha num.Real, n int) (cos, sin num.Real) {
	n = clampIterations(n)

	return rotate(Reduce(alpha), n)
}

// rotate runs the rotation loop on an already reduced angle.
// The six floating-point operations per step and their order are fixed.
func rotate(alpha num.Real, n int) (x, y num.Real) {
	// NaN compares false against everything and would otherwise steer the
	// loop to a finite answer.
	if math.IsNaN(float64(alpha)) {
		return alpha, alpha
	}

	var (
		theta  num.Real
		dx, dy num.Real
		angle  num.Real
		p2i    num.Real = 1
	)
	x, y = 1, 0

	for i := 0; i < n; i++ {
		angle = num.Real(Angles[i])
		dx = y * p2i
		dy = x * p2i
		if theta < alpha {
			theta += angle
			x -= dx
			y += dy
		} else {
			theta -= angle
			x += dx
			y -= dy
		}
		p2i /= 2
	}

	k := num.Real(Gains[n-1])

	return x * k, y * k
}

// fold maps a reduced angle in [-π, π] onto [-π/2, π/2].
// The returned sign must be applied to both components of the result.
func fold(alpha num.Real) (num.Real, num.Real) {
	switch {
	case alpha > halfPi:
		return alpha - num.Pi, -1
	case alpha < -halfPi:
		return alpha + num.Pi, -1
	default:
		return alpha, 1
	}
}
