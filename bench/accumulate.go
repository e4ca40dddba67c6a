// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/katalvlaran/zmatbench/matrix"
)

// OperandFunc returns the right-hand operand for iteration i (0-based).
// Returned matrices must be square with the accumulator's side.
type OperandFunc func(i int) (matrix.Matrix, error)

// FixedOperand returns an OperandFunc that yields m on every iteration.
func FixedOperand(m matrix.Matrix) OperandFunc {
	return func(int) (matrix.Matrix, error) { return m, nil }
}

// Accumulator holds a square matrix that is overwritten by acc·operand on
// each Step. The accumulator pointer and its storage never change; a
// same-sized scratch buffer receives each product before it is copied back.
type Accumulator struct {
	acc     *matrix.Dense
	scratch *matrix.Dense
	opts    []matrix.Option
	steps   int
}

// NewAccumulator wraps initial, which must be square. opts are forwarded to
// every multiplication (kernel, BLAS implementation).
func NewAccumulator(initial *matrix.Dense, opts ...matrix.Option) (*Accumulator, error) {
	if err := matrix.ValidateSquare(initial); err != nil {
		return nil, fmt.Errorf("bench: accumulator: %w", err)
	}
	scratch, err := matrix.ZerosLike(initial)
	if err != nil {
		return nil, fmt.Errorf("bench: accumulator scratch: %w", err)
	}

	return &Accumulator{acc: initial, scratch: scratch, opts: opts}, nil
}

// Step replaces the accumulator with acc·operand. The accumulator stays on
// the left: after steps with B1, B2, ... it holds A·B1·B2·...
func (a *Accumulator) Step(operand matrix.Matrix) error {
	if err := matrix.MulInto(a.scratch, a.acc, operand, a.opts...); err != nil {
		return fmt.Errorf("bench: step %d: %w", a.steps, err)
	}
	if err := a.acc.CopyFrom(a.scratch); err != nil {
		return fmt.Errorf("bench: step %d: %w", a.steps, err)
	}
	a.steps++

	return nil
}

// Matrix returns the accumulator (the same pointer passed to NewAccumulator).
func (a *Accumulator) Matrix() *matrix.Dense { return a.acc }

// Steps returns how many multiplications have been applied.
func (a *Accumulator) Steps() int { return a.steps }

// Accumulate applies reps multiplications acc = acc·next(i) for i in
// [0, reps) and returns initial, which is overwritten in place. With
// reps == 0 initial is returned untouched.
func Accumulate(initial *matrix.Dense, next OperandFunc, reps int, opts ...matrix.Option) (*matrix.Dense, error) {
	if reps < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeRepetitions, reps)
	}
	acc, err := NewAccumulator(initial, opts...)
	if err != nil {
		return nil, err
	}

	var operand matrix.Matrix
	for i := 0; i < reps; i++ {
		if operand, err = next(i); err != nil {
			return nil, fmt.Errorf("bench: operand %d: %w", i, err)
		}
		if err = acc.Step(operand); err != nil {
			return nil, err
		}
	}

	return acc.Matrix(), nil
}
