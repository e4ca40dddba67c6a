// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.
// Every message is prefixed with "bench: ..." for consistency. Configuration
// errors are returned by Config.Validate and NewRunner; callers match them
// via errors.Is.

package bench

import "errors"

var (
	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("bench: unknown preset")

	// ErrUnknownStrategy indicates a seed strategy other than identity or random.
	ErrUnknownStrategy = errors.New("bench: unknown seed strategy")

	// ErrUnknownKernel indicates a multiplication kernel the matrix package
	// does not provide.
	ErrUnknownKernel = errors.New("bench: unknown kernel")

	// ErrInvalidExponent indicates a size exponent outside [0, MaxExponent].
	ErrInvalidExponent = errors.New("bench: size exponent out of range")

	// ErrNegativeRepetitions indicates a repetition count below zero.
	ErrNegativeRepetitions = errors.New("bench: repetitions must be >= 0")
)
