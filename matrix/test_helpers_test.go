// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed unless a test is about non-finite input.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/num"
)

// Tolerances shared by the numeric tests.
const (
	tolStrict = 1024 * num.Epsilon // identities that only lose a few ulps (orthogonality, reflection)
	tolLoose  = 1e-4               // accumulations that pass through num.Real in either width
	tolCORDIC = 2e-3               // CORDIC at the default iteration count
)

// mustNew builds a matrix from a row literal or fails the test.
func mustNew(tb testing.TB, rows [][]num.Real) *matrix.Dense {
	tb.Helper()
	m, err := matrix.New(rows)
	require.NoError(tb, err)

	return m
}

// mustDense allocates an r×c zero matrix or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Identity(n)
	require.NoError(tb, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(tb testing.TB, m *matrix.Dense, i, j int) num.Real {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// column builds an n×1 column vector from values.
func column(tb testing.TB, values ...num.Real) *matrix.Dense {
	tb.Helper()
	m, err := matrix.From(values, len(values), 1)
	require.NoError(tb, err)

	return m
}

// row builds a 1×n row vector from values.
func row(tb testing.TB, values ...num.Real) *matrix.Dense {
	tb.Helper()
	m, err := matrix.From(values, 1, len(values))
	require.NoError(tb, err)

	return m
}

// fillRand fills m with values in [-1, 1) from a seeded source.
func fillRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, num.Real(2*rng.Float64()-1)))
		}
	}
}

// fillInts fills m with small integers in [-3, 3] so that products stay exact.
func fillInts(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, num.Real(rng.Intn(7)-3)))
		}
	}
}

// requireClose asserts AllClose(got, want) with the given absolute tolerance.
func requireClose(tb testing.TB, want, got *matrix.Dense, atol num.Real) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ beyond %g:\nwant\n%v\ngot\n%v", atol, want, got)
}

// requireEqual asserts exact element-wise equality and equal shapes.
func requireEqual(tb testing.TB, want, got *matrix.Dense) {
	tb.Helper()
	ok, err := matrix.Equal(got, want)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\nwant\n%v\ngot\n%v", want, got)
}
