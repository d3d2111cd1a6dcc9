// Package lvmath is a small numeric kernel: dense matrices, vector products
// and a CORDIC sine/cosine engine, sized for hosts where libm is either
// unavailable or too slow.
//
// 🚀 What is in lvmath?
//
//   - Scalar width: one num.Real type, float64 by default, float32 with `-tags real32`
//   - Dense matrices: construction, bounds-checked access, Add/Sub/Mul/Scale
//   - Algorithms: Laplace determinant, transpose, integer powers by squaring
//   - Vectors: dot, dyadic (outer) and cross products, Euclidean norm
//   - Geometry: Householder reflectors, 2D and yaw-pitch-roll 3D rotations
//   - Trigonometry: table-driven CORDIC with optional quadrant folding
//
// ✨ Why lvmath?
//
//   - Reproducible – fixed loop orders, results bit-identical across runs
//   - Explicit errors – sentinel errors with operation tags, no panics on bad input
//   - Pluggable trig – native math.Sincos, CORDIC, or your own routine
//
// Under the hood:
//
//	num/            - the Real scalar type and width-aware helpers
//	cordic/         - angle/gain tables, SinCos, Engine with options
//	matrix/         - Dense, operators, algorithms, rotations, rendering
//	cmd/cordicsweep - CLI measuring CORDIC accuracy per iteration count
//	examples/       - runnable Householder and rotation demos
//
// Quick example:
//
//	v := matrix.MustNew([][]num.Real{{1}, {2}, {3}})
//	h, _ := matrix.Householder(v)
//	fmt.Println(h) // H·v = -v
//
//	go get github.com/katalvlaran/lvmath
package lvmath
