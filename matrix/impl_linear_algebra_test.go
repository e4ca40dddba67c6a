// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the complex multiplication
// kernels and comparison helpers.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/katalvlaran/zmatbench/matrix"
)

// countingBLAS delegates to gonum and counts Zgemm calls.
type countingBLAS struct {
	gonum.Implementation
	zgemm int
}

func (c *countingBLAS) Zgemm(tA, tB blas.Transpose, m, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, cc []complex128, ldc int) {
	c.zgemm++
	c.Implementation.Zgemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, cc, ldc)
}

func TestMulKnownProduct(t *testing.T) {
	a := MustRows(t, []complex128{1 + 1i, 2}, []complex128{0, 1i})
	b := MustRows(t, []complex128{1, 1i}, []complex128{2, 0})
	want := MustRows(t, []complex128{5 + 1i, -1 + 1i}, []complex128{2i, 0})

	for _, k := range matrix.Kernels {
		t.Run(k.String(), func(t *testing.T) {
			got, err := matrix.Mul(a, b, matrix.WithKernel(k))
			require.NoError(t, err)
			require.True(t, matrix.Equal(want, got), "got\n%v", got)
		})
	}
	t.Run("generic", func(t *testing.T) {
		got, err := matrix.Mul(hide{a}, b)
		require.NoError(t, err)
		require.True(t, matrix.Equal(want, got), "got\n%v", got)
	})
}

func TestMulRectangular(t *testing.T) {
	a := MustRows(t, []complex128{1, 2, 3}, []complex128{4, 5, 6})
	b := MustRows(t, []complex128{1i}, []complex128{1}, []complex128{0})
	want := MustRows(t, []complex128{2 + 1i}, []complex128{5 + 4i})

	for _, k := range matrix.Kernels {
		got, err := matrix.Mul(a, b, matrix.WithKernel(k))
		require.NoError(t, err)
		require.Equal(t, 2, got.Rows())
		require.Equal(t, 1, got.Cols())
		require.True(t, matrix.Equal(want, got), "%s:\n%v", k, got)
	}
}

func TestMulScalar1x1(t *testing.T) {
	a := MustRows(t, []complex128{2 + 3i})
	b := MustRows(t, []complex128{4 - 1i})
	for _, k := range matrix.Kernels {
		got, err := matrix.Mul(a, b, matrix.WithKernel(k))
		require.NoError(t, err)
		require.Equal(t, 11+10i, MustAt(t, got, 0, 0), k.String())
	}
}

func TestMulMatchesReference(t *testing.T) {
	a := MustRandom(t, 7, 11)
	b := MustRandom(t, 7, 12)
	ref, err := matrix.NewFromRows(naiveProduct(toRows(t, a), toRows(t, b)))
	require.NoError(t, err)

	for _, k := range matrix.Kernels {
		got, err := matrix.Mul(a, b, matrix.WithKernel(k))
		require.NoError(t, err)
		ok, err := matrix.AllClose(ref, got, 1e-12)
		require.NoError(t, err)
		require.True(t, ok, k.String())
	}
}

func TestMulIdentityIsExact(t *testing.T) {
	r := MustRandom(t, 16, 5)
	id, err := matrix.NewIdentity(16)
	require.NoError(t, err)

	for _, k := range matrix.Kernels {
		left, err := matrix.Mul(id, r, matrix.WithKernel(k))
		require.NoError(t, err)
		require.True(t, matrix.Equal(r, left), "I·R %s", k)

		right, err := matrix.Mul(r, id, matrix.WithKernel(k))
		require.NoError(t, err)
		require.True(t, matrix.Equal(r, right), "R·I %s", k)
	}
}

func TestMulErrors(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, (*matrix.Dense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulIntoOverwritesDestination(t *testing.T) {
	a := MustRows(t, []complex128{1, 2}, []complex128{3, 4})
	b := MustRows(t, []complex128{0, 1}, []complex128{1, 0})
	want := MustRows(t, []complex128{2, 1}, []complex128{4, 3})

	for _, k := range matrix.Kernels {
		dst := MustDense(t, 2, 2, matrix.WithNoValidateNaNInf())
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				require.NoError(t, dst.Set(i, j, complex(math.NaN(), 1)))
			}
		}
		require.NoError(t, matrix.MulInto(dst, a, b, matrix.WithKernel(k)))
		require.True(t, matrix.Equal(want, dst), "%s:\n%v", k, dst)
	}
}

func TestMulIntoRejectsAliasing(t *testing.T) {
	a := MustRows(t, []complex128{1, 2}, []complex128{3, 4})
	b := MustRows(t, []complex128{0, 1}, []complex128{1, 0})

	require.ErrorIs(t, matrix.MulInto(a, a, b), matrix.ErrAliased)
	require.ErrorIs(t, matrix.MulInto(b, a, b), matrix.ErrAliased)
	require.ErrorIs(t, matrix.MulInto(MustDense(t, 3, 2), a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.MulInto(nil, a, b), matrix.ErrNilMatrix)
}

func TestMulInPlaceKeepsIdentity(t *testing.T) {
	acc := MustRows(t, []complex128{1, 2}, []complex128{3, 4})
	before := acc.Raw().Data
	b := MustRows(t, []complex128{0, 1}, []complex128{1, 0})

	require.NoError(t, matrix.MulInPlace(acc, b))
	require.Equal(t, complex128(2), MustAt(t, acc, 0, 0))
	require.Equal(t, complex128(3), MustAt(t, acc, 1, 1))
	require.Same(t, &before[0], &acc.Raw().Data[0])

	require.ErrorIs(t, matrix.MulInPlace(acc, MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.MulInPlace(acc, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
}

func TestWithBLASIsUsed(t *testing.T) {
	a := MustRandom(t, 4, 1)
	b := MustRandom(t, 4, 2)

	impl := &countingBLAS{}
	_, err := matrix.Mul(a, b, matrix.WithBLAS(impl))
	require.NoError(t, err)
	require.Equal(t, 1, impl.zgemm)

	_, err = matrix.Mul(a, b, matrix.WithBLAS(impl), matrix.WithKernel(matrix.KernelNaive))
	require.NoError(t, err)
	require.Equal(t, 1, impl.zgemm, "naive kernel must not call BLAS")

	_, err = matrix.Mul(hide{a}, b, matrix.WithBLAS(impl))
	require.NoError(t, err)
	require.Equal(t, 1, impl.zgemm, "non-Dense operands use the generic loop")
}

func TestTrace(t *testing.T) {
	m := MustRows(t, []complex128{1 + 1i, 9}, []complex128{9, 2 - 3i})
	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	require.Equal(t, 3-2i, tr)

	tr, err = matrix.Trace(hide{m})
	require.NoError(t, err)
	require.Equal(t, 3-2i, tr)

	_, err = matrix.Trace(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Trace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEqualAndAllClose(t *testing.T) {
	a := MustRows(t, []complex128{1, 2i})
	b := MustRows(t, []complex128{1 + 1e-12, 2i})

	require.False(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, nil))
	require.False(t, matrix.Equal(a, MustDense(t, 2, 1)))

	ok, err := matrix.AllClose(a, b, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllClose(a, b, 1e-15)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 1e-9)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(nil, a, 1e-9)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	ok, err = matrix.ApproxEqual(a, b)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.ApproxEqual(a, b, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.False(t, ok)
}
