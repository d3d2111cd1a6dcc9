// SPDX-License-Identifier: MIT

// Package cordic computes sine and cosine with the rotation-mode CORDIC
// algorithm, using only addition, subtraction, multiplication and halving.
//
// What & Why:
//
//	CORDIC rotates the unit vector (1, 0) through a fixed sequence of
//	micro-angles atan(2^-i), choosing the direction of each step so the
//	accumulated angle chases the target. After the last step the vector is
//	rescaled by the reciprocal of the accumulated gain and its components
//	are (cos α, sin α). The package exists for targets without a hardware or
//	library transcendental; hosted callers may prefer math.Sincos and use
//	this package where bit-reproducible, table-driven results matter.
//
// Algorithm (per call, stack-local state only):
//
//  1. Reduce α into [-π, π] (truncated remainder by 2π, then one ±2π fix-up).
//  2. x=1, y=0, θ=0, p=1; for i in [0, n):
//     dx=y·p, dy=x·p; if θ<α { θ+=a[i]; x-=dx; y+=dy } else { θ-=a[i]; x+=dx; y-=dy }; p/=2.
//  3. Multiply x and y by Gains[n-1].
//
// Convergence:
//
//	The raw loop only converges for |α| ≤ Σ a[i] ≈ 1.7433 rad. SinCos and
//	SinCosN reproduce the classic algorithm exactly, including its behavior
//	outside that domain (the vector stays unit length but points at the
//	wrong angle). An Engine built WithQuadrantFolding maps |α| > π/2 onto
//	α ∓ π first, which makes it accurate over the whole real line.
//
// Special values:
//
//	NaN and ±Inf inputs propagate as NaN; there are no error returns.
//
// Complexity:
//
//	O(n) time with n ≤ MaxIterations, O(1) space, no allocations.
package cordic
