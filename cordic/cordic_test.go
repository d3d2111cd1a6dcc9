package cordic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/cordic"
	"github.com/katalvlaran/lvmath/num"
	"github.com/stretchr/testify/require"
)

const (
	tolAxis     = 1e-3 // (1,0) at 0 and (0,1) at π/2
	tolClassic  = 2e-3 // ten-iteration variant
	tolUnitNorm = 1e-2 // x²+y² against 1
	tolPeriod   = 2e-3 // α vs α+2π
)

func TestSinCosAxes(t *testing.T) {
	c, s := cordic.SinCos(0)
	require.InDelta(t, 1.0, float64(c), tolAxis)
	require.InDelta(t, 0.0, float64(s), tolAxis)

	c, s = cordic.SinCos(num.Pi / 2)
	require.InDelta(t, 0.0, float64(c), tolAxis)
	require.InDelta(t, 1.0, float64(s), tolAxis)

	c, s = cordic.SinCos(-num.Pi / 2)
	require.InDelta(t, 0.0, float64(c), tolAxis)
	require.InDelta(t, -1.0, float64(s), tolAxis)
}

// TestSinCosTenIterations covers the classic ten-step configuration.
func TestSinCosTenIterations(t *testing.T) {
	c, s := cordic.SinCosN(0, 10)
	require.InDelta(t, 1.0, float64(c), tolClassic)
	require.InDelta(t, 0.0, float64(s), tolClassic)

	c, s = cordic.SinCosN(num.Pi/2, 10)
	require.InDelta(t, 0.0, float64(c), tolClassic)
	require.InDelta(t, 1.0, float64(s), tolClassic)
}

// TestSinCosUnitNorm sweeps a wide range, including angles outside the
// convergence domain: the vector length is preserved regardless.
func TestSinCosUnitNorm(t *testing.T) {
	for i := 0; i <= 2000; i++ {
		alpha := num.Real(-50 + 100*float64(i)/2000)
		for _, n := range []int{1, 4, 10, 12, 16} {
			x, y := cordic.SinCosN(alpha, n)
			require.InDelta(t, 1.0, float64(x*x+y*y), tolUnitNorm, "alpha=%v n=%d", alpha, n)
		}
	}
}

func TestSinCosPeriodic(t *testing.T) {
	for _, a := range []num.Real{0.3, 1.0, -1.2, 2.5, -3.0, 0} {
		c0, s0 := cordic.SinCos(a)
		c1, s1 := cordic.SinCos(a + 2*num.Pi)
		require.InDelta(t, float64(c0), float64(c1), tolPeriod, "alpha=%v", a)
		require.InDelta(t, float64(s0), float64(s1), tolPeriod, "alpha=%v", a)
	}
}

// TestSinCosAccuracyInDomain compares against math.Sincos where the raw loop converges.
func TestSinCosAccuracyInDomain(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		a := -1.5 + 3*float64(i)/1000
		c, s := cordic.SinCos(num.Real(a))
		ws, wc := math.Sincos(a)
		require.InDelta(t, wc, float64(c), 1e-3, "cos(%v)", a)
		require.InDelta(t, ws, float64(s), 1e-3, "sin(%v)", a)
	}
}

// TestSinCosMonotoneAccuracy checks that more iterations never hurt the worst case.
func TestSinCosMonotoneAccuracy(t *testing.T) {
	maxErr := func(n int) float64 {
		var worst float64
		for i := 0; i <= 500; i++ {
			a := -1.5 + 3*float64(i)/500
			c, s := cordic.SinCosN(num.Real(a), n)
			ws, wc := math.Sincos(a)
			worst = math.Max(worst, math.Max(math.Abs(wc-float64(c)), math.Abs(ws-float64(s))))
		}
		return worst
	}

	prev := math.Inf(1)
	for _, n := range []int{4, 8, 12, 16} {
		e := maxErr(n)
		require.Less(t, e, prev, "n=%d", n)
		prev = e
	}
}

func TestSinCosNonFinite(t *testing.T) {
	for _, a := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c, s := cordic.SinCos(num.Real(a))
		require.True(t, math.IsNaN(float64(c)), "cos(%v)", a)
		require.True(t, math.IsNaN(float64(s)), "sin(%v)", a)
	}
}

func TestReduce(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{4, 4 - 2*math.Pi},
		{-4, -4 + 2*math.Pi},
		{7, 7 - 2*math.Pi},
		{-7, -7 + 2*math.Pi},
		{2*math.Pi + 0.5, 0.5},
	}
	for _, tc := range cases {
		got := cordic.Reduce(num.Real(tc.in))
		require.InDelta(t, tc.want, float64(got), 1e-5, "Reduce(%v)", tc.in)
		require.LessOrEqual(t, float64(got), math.Pi+1e-6)
		require.GreaterOrEqual(t, float64(got), -math.Pi-1e-6)
	}
}

// TestSinCosNClamp verifies out-of-range counts are clamped, not rejected.
func TestSinCosNClamp(t *testing.T) {
	c0, s0 := cordic.SinCosN(0.4, 0)
	c1, s1 := cordic.SinCosN(0.4, 1)
	require.Equal(t, c1, c0)
	require.Equal(t, s1, s0)

	c0, s0 = cordic.SinCosN(0.4, 40)
	c1, s1 = cordic.SinCosN(0.4, cordic.MaxIterations)
	require.Equal(t, c1, c0)
	require.Equal(t, s1, s0)
}
