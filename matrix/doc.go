// Package matrix offers a dense complex128 matrix and the multiplication
// kernels used by the zmatbench runner.
//
// The matrix package provides:
//
//   - Dense: row-major []complex128 storage with bounds-checked At/Set and an
//     optional NaN/Inf guard.
//   - Constructors: NewDense, NewZeros, NewIdentity, NewFromRows, NewRandom
//     (seeded, uniform in [-1, 1) per component).
//   - Multiplication: Mul (allocating), MulInto (into a caller buffer) and
//     MulInPlace (acc = acc·b), via gonum's Zgemm (KernelBLAS) or a plain
//     triple loop (KernelNaive).
//   - Comparison: Equal, AllClose, ApproxEqual, Trace.
//
// Dense shares its buffer with gonum without copies: Raw returns a
// cblas128.General and CDense a *mat.CDense over the same slice.
//
// Usage:
//
//	a, _ := matrix.NewIdentity(512)
//	b, _ := matrix.NewRandom(512, matrix.NewRNG(42))
//	_ = matrix.MulInPlace(a, b) // a = a·b
//
// See example_test.go for runnable examples.
package matrix
