// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction and
// multiplication. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The BLAS implementation travels with the call options; this package
//     never registers a process-wide backend (cblas128.Use).
package matrix

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose-style checks
	// when the caller does not pass one explicitly.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultKernel is the multiplication routine used when none is given.
	DefaultKernel = KernelBLAS
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicKernelInvalid  = "matrix: WithKernel: unknown kernel"
	panicBLASNil        = "matrix: WithBLAS: implementation must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them internally via gatherOptions.
type Options struct {
	eps            float64         // >= 0; DefaultEpsilon
	validateNaNInf bool            // DefaultValidateNaNInf
	kernel         Kernel          // DefaultKernel
	blas           blas.Complex128 // gonum.Implementation{} unless overridden
}

// defaultOptions returns the zero-configuration baseline.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		kernel:         DefaultKernel,
		blas:           gonum.Implementation{},
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are
// skipped so callers can build option slices conditionally.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance used by approximate comparisons.
//
// Panics with a stable message when eps is NaN, infinite, or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Affects newly created matrices only; existing matrices keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithKernel selects the multiplication routine.
//
// Panics when k is not one of Kernels; callers that accept user input
// should check Kernel.Valid first.
func WithKernel(k Kernel) Option {
	if !k.Valid() {
		panic(panicKernelInvalid)
	}

	return func(o *Options) { o.kernel = k }
}

// WithBLAS overrides the complex128 BLAS implementation used by KernelBLAS.
// Any blas.Complex128 works, e.g. gonum.Implementation{} or a cgo-backed
// netlib binding in builds that provide one.
func WithBLAS(impl blas.Complex128) Option {
	if impl == nil {
		panic(panicBLASNil)
	}

	return func(o *Options) { o.blas = impl }
}
