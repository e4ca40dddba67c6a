// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernels and comparison helpers
// for Dense complex matrices. All functions perform strict fail-fast
// validation and return wrapped sentinels on dimension mismatches.
//
// Purpose:
//   - Mul / MulInto / MulInPlace: the product a·b, via BLAS Zgemm or the
//     reference triple loop, selected by WithKernel.
//   - Trace, Equal, AllClose, ApproxEqual: cheap summaries and comparisons used to verify
//     benchmark results.
//
// Notes:
//   - The fast paths require both operands to be *Dense. Any other Matrix
//     implementation goes through the generic At-based loop regardless of
//     the chosen kernel.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opMul        = "Mul"
	opMulInto    = "MulInto"
	opMulInPlace = "MulInPlace"
	opTrace      = "Trace"
	opAllClose   = "AllClose"
	opApprox     = "ApproxEqual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns a newly allocated product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: allocate Dense(a.Rows, b.Cols) with the caller's numeric policy.
//   - Stage 3: dispatch to the configured kernel (see mulKernel).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c) for the result.
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.Rows(), b.Cols(), opts...)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = mulKernel(res, a, b, gatherOptions(opts...)); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulInto overwrites dst with a·b without allocating.
//
// Behavior highlights:
//   - dst must be a.Rows×b.Cols and must not share storage with a or b;
//     use MulInPlace when the accumulator is also the left operand.
//   - Previous dst contents are discarded, never accumulated into.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAliased (wrapped with "MulInto").
//
// Complexity:
//   - Time O(r*k*c), Space O(1).
func MulInto(dst *Dense, a, b Matrix, opts ...Option) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateMulDestination(dst, a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if da, ok := a.(*Dense); ok && sameStorage(dst, da) {
		return matrixErrorf(opMulInto, ErrAliased)
	}
	if db, ok := b.(*Dense); ok && sameStorage(dst, db) {
		return matrixErrorf(opMulInto, ErrAliased)
	}
	if err := mulKernel(dst, a, b, gatherOptions(opts...)); err != nil {
		return matrixErrorf(opMulInto, err)
	}

	return nil
}

// MulInPlace computes acc = acc·b. The accumulator keeps its identity (same
// pointer, same backing slice); only its contents change. b must be square
// with side acc.Cols() so the shape of acc is preserved.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "MulInPlace").
//
// Complexity:
//   - Time O(r*c*c), Space O(r*c) for one temporary product.
func MulInPlace(acc *Dense, b Matrix, opts ...Option) error {
	if err := ValidateSquare(b); err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	prod, err := Mul(acc, b, opts...)
	if err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	copy(acc.data, prod.data)

	return nil
}

// mulKernel writes a·b into dst. Shapes are already validated.
func mulKernel(dst *Dense, a, b Matrix, o Options) error {
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		switch o.kernel {
		case KernelBLAS:
			mulBLAS(o.blas, dst, da, db)
		default:
			mulNaive(dst, da, db)
		}

		return nil
	}

	return mulGeneric(dst, a, b)
}

// mulBLAS computes dst = 1·a·b + 0·dst through Zgemm on row-major buffers.
// beta == 0 makes Zgemm zero dst before accumulating, so stale contents
// (including NaN) never leak into the product.
func mulBLAS(impl blas.Complex128, dst, a, b *Dense) {
	ra, rb, rc := a.Raw(), b.Raw(), dst.Raw()
	impl.Zgemm(blas.NoTrans, blas.NoTrans,
		rc.Rows, rc.Cols, ra.Cols,
		1, ra.Data, ra.Stride,
		rb.Data, rb.Stride,
		0, rc.Data, rc.Stride)
}

// mulNaive is the reference i-k-j loop over flat buffers.
// da.data layout: i*k + p; db.data layout: p*c + j.
func mulNaive(dst, a, b *Dense) {
	clear(dst.data)
	k, cols := a.c, b.c
	var (
		i, p, j int
		av      complex128
		rowA    []complex128
		rowB    []complex128
		rowR    []complex128
	)
	for i = 0; i < a.r; i++ {
		rowA = a.data[i*k : (i+1)*k]
		rowR = dst.data[i*cols : (i+1)*cols]
		for p, av = range rowA {
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = b.data[p*cols : (p+1)*cols]
			for j = range rowB {
				rowR[j] += av * rowB[j]
			}
		}
	}
}

// mulGeneric is the interface fallback (i-j-k) for non-Dense operands.
func mulGeneric(dst *Dense, a, b Matrix) error {
	var (
		i, j, p int
		av, bv  complex128
		sum     complex128
		err     error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			sum = 0
			for p = 0; p < a.Cols(); p++ {
				if av, err = a.At(i, p); err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, p, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(p, j); err != nil {
					return fmt.Errorf("At(%d,%d): %w", p, j, err)
				}
				sum += av * bv
			}
			dst.data[i*dst.c+j] = sum
		}
	}

	return nil
}

// Trace returns the sum of the diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Trace").
//
// Complexity: O(n).
func Trace(m Matrix) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if d, ok := m.(*Dense); ok {
		var sum complex128
		for i := 0; i < d.r; i++ {
			sum += d.data[i*d.c+i]
		}

		return sum, nil
	}

	var (
		sum complex128
		v   complex128
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// Equal reports whether a and b have the same shape and exactly equal
// elements, compared with == (-0 equals +0, NaN never equals itself).
// Nil inputs compare unequal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return false
	}

	return mat.CEqual(a.CDense(), b.CDense())
}

// AllClose reports whether a and b have the same shape and every pair of
// elements agrees within tol, absolutely or relatively.
//
// Errors:
//   - ErrNilMatrix (wrapped with "AllClose").
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity: O(r*c).
func AllClose(a, b *Dense, tol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return mat.CEqualApprox(a.CDense(), b.CDense(), tol), nil
}

// ApproxEqual is AllClose with the tolerance taken from the options
// (WithEpsilon, DefaultEpsilon otherwise).
func ApproxEqual(a, b *Dense, opts ...Option) (bool, error) {
	ok, err := AllClose(a, b, gatherOptions(opts...).eps)
	if err != nil {
		return false, matrixErrorf(opApprox, err)
	}

	return ok, nil
}
