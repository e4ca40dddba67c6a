// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the public Matrix interface and the Kernel
// selector. Errors and options live in dedicated files (errors.go,
// options.go) per the package conventions.
package matrix

// Matrix represents a two-dimensional mutable array of complex128 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (complex128, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v complex128) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Kernel selects the multiplication routine used by Mul and MulInto.
// The fast path applies only when both operands are *Dense; any other
// Matrix implementation goes through the generic At/Set loop.
type Kernel string

const (
	// KernelBLAS delegates to the complex128 GEMM of the configured BLAS
	// implementation (gonum's pure-Go Zgemm by default).
	KernelBLAS Kernel = "blas"

	// KernelNaive is the reference i-k-j triple loop over the flat buffers.
	KernelNaive Kernel = "naive"
)

// Kernels lists every supported kernel in a stable order.
var Kernels = []Kernel{KernelBLAS, KernelNaive}

// Valid reports whether k names a supported kernel.
func (k Kernel) Valid() bool {
	switch k {
	case KernelBLAS, KernelNaive:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kernel) String() string { return string(k) }
