// SPDX-License-Identifier: MIT
// Package matrix - rotation matrix builders.
//
// Purpose:
//   - Rotation2D: counter-clockwise planar rotation.
//   - Rotation3D: yaw (z), pitch (y), roll (x) composed as Rz·Ry·Rx, assembled
//     entry by entry from six trig values (no intermediate products).
//
// Notes:
//   - The trig source is chosen with options: native (default), CORDIC, or custom.

package matrix

import "github.com/katalvlaran/lvmath/num"

// Rotation2D returns [[cos α, -sin α], [sin α, cos α]].
// Complexity: O(1); one trig evaluation.
func Rotation2D(angle num.Real, opts ...Option) *Dense {
	o := gatherOptions(opts...)
	sin, cos := o.SinCos(angle)

	return &Dense{r: 2, c: 2, data: []num.Real{
		cos, -sin,
		sin, cos,
	}}
}

// Rotation3D returns the 3×3 rotation R = Rz(yaw)·Ry(pitch)·Rx(roll).
// Implementation:
//   - Stage 1: evaluate sin/cos of yaw, pitch and roll independently.
//   - Stage 2: write the closed-form entries.
//
// Behavior highlights:
//   - Entries match the product Rz·Ry·Rx up to rounding, without computing it.
//
// Complexity: O(1); three trig evaluations.
func Rotation3D(yaw, pitch, roll num.Real, opts ...Option) *Dense {
	o := gatherOptions(opts...)
	sy, cy := o.SinCos(yaw)
	sp, cp := o.SinCos(pitch)
	sr, cr := o.SinCos(roll)

	return &Dense{r: 3, c: 3, data: []num.Real{
		cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr,
		sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr,
		-sp, cp * sr, cp * cr,
	}}
}
