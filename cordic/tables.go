// SPDX-License-Identifier: MIT

package cordic

import "math"

const (
	// MaxIterations bounds the iteration count by the size of the tables.
	MaxIterations = 16

	// DefaultIterations is the iteration count used by SinCos and by a zero-option Engine.
	// Twelve steps keep the absolute error below 5e-4 on [-π/2, π/2].
	DefaultIterations = 12
)

// Angles holds atan(2^-i) in radians for i = 0..15.
var Angles = [MaxIterations]float64{
	0.7853981633974483,
	0.4636476090008061,
	0.24497866312686414,
	0.12435499454676144,
	0.06241880999595735,
	0.031239833430268277,
	0.015623728620476831,
	0.007812341060101111,
	0.0039062301319669718,
	0.0019531225164788188,
	0.0009765621895593195,
	0.0004882812111948983,
	0.00024414062014936177,
	0.00012207031189367021,
	6.103515617420877e-05,
	3.0517578115526096e-05,
}

// Gains holds the reciprocal of the cumulative CORDIC gain after i+1
// iterations: Gains[i] = Π_{k=0..i} 1/sqrt(1 + 2^-2k).
var Gains = [MaxIterations]float64{
	0.7071067811865475,
	0.6324555320336758,
	0.6135719910778963,
	0.6088339125177524,
	0.6076482562561683,
	0.607351770141296,
	0.6072776440935261,
	0.6072591122988928,
	0.6072544793325625,
	0.6072533210898753,
	0.6072530315291345,
	0.607252959138945,
	0.6072529410413973,
	0.6072529365170103,
	0.6072529353859135,
	0.6072529351031394,
}

// GenerateAngles recomputes the angle table from first principles.
func GenerateAngles() [MaxIterations]float64 {
	var out [MaxIterations]float64
	for i := range out {
		out[i] = math.Atan(math.Ldexp(1, -i))
	}

	return out
}

// GenerateGains recomputes the gain table from first principles.
func GenerateGains() [MaxIterations]float64 {
	var out [MaxIterations]float64
	k := 1.0
	for i := range out {
		k *= 1 / math.Sqrt(1+math.Ldexp(1, -2*i))
		out[i] = k
	}

	return out
}

// ConvergenceLimit returns Σ Angles[0..n-1], the largest |α| the raw
// rotation loop can reach with n iterations. n is clamped to [1, MaxIterations].
func ConvergenceLimit(n int) float64 {
	n = clampIterations(n)
	var sum float64
	for i := 0; i < n; i++ {
		sum += Angles[i]
	}

	return sum
}

func clampIterations(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxIterations {
		return MaxIterations
	}

	return n
}
