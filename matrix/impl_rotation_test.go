// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the rotation builders.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/num"
)

// axisRotations returns Rz(yaw), Ry(pitch), Rx(roll) built entry by entry.
func axisRotations(t *testing.T, yaw, pitch, roll float64) (rz, ry, rx *matrix.Dense) {
	t.Helper()
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	sr, cr := math.Sincos(roll)
	r := func(v float64) num.Real { return num.Real(v) }

	rz = mustNew(t, [][]num.Real{{r(cy), r(-sy), 0}, {r(sy), r(cy), 0}, {0, 0, 1}})
	ry = mustNew(t, [][]num.Real{{r(cp), 0, r(sp)}, {0, 1, 0}, {r(-sp), 0, r(cp)}})
	rx = mustNew(t, [][]num.Real{{1, 0, 0}, {0, r(cr), r(-sr)}, {0, r(sr), r(cr)}})

	return rz, ry, rx
}

func TestRotation2D(t *testing.T) {
	t.Parallel()

	r := matrix.Rotation2D(num.Pi / 2)
	requireClose(t, mustNew(t, [][]num.Real{{0, -1}, {1, 0}}), r, tolStrict)

	// rotating e1 by 30° lands on (cos 30°, sin 30°)
	v, err := matrix.Mul(matrix.Rotation2D(num.Pi/6), column(t, 1, 0))
	require.NoError(t, err)
	requireClose(t, column(t, num.Real(math.Sqrt(3)/2), 0.5), v, tolStrict)

	requireEqual(t, mustIdentity(t, 2), matrix.Rotation2D(0))
}

func TestRotation2DComposes(t *testing.T) {
	t.Parallel()

	a, b := num.Real(0.4), num.Real(-1.1)
	ab, err := matrix.Mul(matrix.Rotation2D(a), matrix.Rotation2D(b))
	require.NoError(t, err)
	requireClose(t, matrix.Rotation2D(a+b), ab, tolStrict)
}

func TestRotation3DMatchesAxisProduct(t *testing.T) {
	t.Parallel()

	angles := [][3]float64{
		{0, 0, 0},
		{0.3, 0, 0},
		{0, 0.3, 0},
		{0, 0, 0.3},
		{0.7, -0.2, 1.3},
		{-2.5, 1.1, 0.9},
	}
	for _, a := range angles {
		rz, ry, rx := axisRotations(t, a[0], a[1], a[2])
		zy, err := matrix.Mul(rz, ry)
		require.NoError(t, err)
		want, err := matrix.Mul(zy, rx)
		require.NoError(t, err)

		got := matrix.Rotation3D(num.Real(a[0]), num.Real(a[1]), num.Real(a[2]))
		requireClose(t, want, got, tolStrict)
	}
}

func TestRotation3DIsOrthonormal(t *testing.T) {
	t.Parallel()

	r := matrix.Rotation3D(0.9, -0.4, 2.2)
	rt, err := matrix.Transpose(r)
	require.NoError(t, err)
	rtr, err := matrix.Mul(rt, r)
	require.NoError(t, err)
	requireClose(t, mustIdentity(t, 3), rtr, tolStrict)

	d, err := matrix.Determinant(r)
	require.NoError(t, err)
	require.InDelta(t, 1, float64(d), float64(tolStrict))
}

func TestRotationCORDICMatchesNative(t *testing.T) {
	t.Parallel()

	cordic := matrix.WithCORDIC(0)
	for _, a := range []num.Real{-3, -1.2, 0, 0.5, 1.5, 2.8} {
		requireClose(t, matrix.Rotation2D(a), matrix.Rotation2D(a, cordic), tolCORDIC)
		requireClose(t,
			matrix.Rotation3D(a, a/2, -a),
			matrix.Rotation3D(a, a/2, -a, cordic),
			3*tolCORDIC,
		)
	}
}

func TestRotationCustomTrig(t *testing.T) {
	t.Parallel()

	calls := 0
	flat := matrix.WithTrig(func(num.Real) (num.Real, num.Real) {
		calls++

		return 0, 1
	})

	requireEqual(t, mustIdentity(t, 3), matrix.Rotation3D(1, 2, 3, flat))
	require.Equal(t, 3, calls)
	requireEqual(t, mustIdentity(t, 2), matrix.Rotation2D(1, flat))
	require.Equal(t, 4, calls)
}
