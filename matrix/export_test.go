// SPDX-License-Identifier: MIT

package matrix

// Test bridge: read-only views of unexported option state for matrix_test.

// EpsilonOf returns the effective epsilon after applying opts.
func EpsilonOf(opts ...Option) float64 { return gatherOptions(opts...).eps }

// KernelOf returns the effective kernel after applying opts.
func KernelOf(opts ...Option) Kernel { return gatherOptions(opts...).kernel }

// ValidatesNaNInf reports the NaN/Inf policy a new Dense would get.
func ValidatesNaNInf(m *Dense) bool { return m.validateNaNInf }
