// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zmatbench/matrix"
)

// hide wraps a Matrix so the concrete *Dense type is invisible to type
// switches, forcing the generic At-based fallback paths.
//
// Prefer wrapping ONLY the operand you want to de-opt; keep the other one
// *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from row literals or fails the test.
func MustRows(t testing.TB, rows ...[]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustRandom returns a seeded n×n random matrix.
func MustRandom(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandom(n, matrix.NewRNG(seed))
	require.NoError(t, err)

	return m
}

// naiveProduct is an independent reference: plain nested slices, no package code.
func naiveProduct(a, b [][]complex128) [][]complex128 {
	out := make([][]complex128, len(a))
	for i := range a {
		out[i] = make([]complex128, len(b[0]))
		for j := range b[0] {
			var sum complex128
			for p := range b {
				sum += a[i][p] * b[p][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// toRows copies m into nested slices.
func toRows(t testing.TB, m matrix.Matrix) [][]complex128 {
	t.Helper()
	out := make([][]complex128, m.Rows())
	for i := range out {
		out[i] = make([]complex128, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}
