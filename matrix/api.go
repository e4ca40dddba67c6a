// SPDX-License-Identifier: MIT
// Package matrix: public constructors.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices with
//     explicit shape and neutral elements.
//   - Each constructor delegates to NewDense.
//
// Determinism & Policy:
//   - Constructors never introduce randomness; see rng.go for seeded fills.
//   - Every constructor accepts ...Option and forwards it, so the numeric
//     policy is set once at creation time.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; 1+0i on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Direct writes: 1 is finite, so the numeric policy cannot reject it.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewFromRows builds a Dense from row literals, copying the values.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRaggedRows when rows differ in length.
//   - ErrNaNInf when validation is on and a value is not finite.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]complex128, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = range rows {
		if len(rows[i]) != m.c {
			return nil, matrixErrorf("NewFromRows", ErrRaggedRows)
		}
		for j = range rows[i] {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf("NewFromRows", err)
			}
		}
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
func ZerosLike(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols(), opts...)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows(), opts...)
}

// CloneDense returns a deep copy of m with its concrete type preserved.
func CloneDense(m *Dense) *Dense {
	if m == nil {
		return nil
	}

	return m.clone()
}
