// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/katalvlaran/zmatbench/matrix"
)

// Runner executes one benchmark configuration.
type Runner struct {
	cfg     Config
	out     io.Writer
	logger  *slog.Logger
	clock   Clock
	metrics *Metrics
}

// RunnerOption customises a Runner.
type RunnerOption func(*Runner)

// WithOutput sets the banner destination (default os.Stdout).
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) { r.out = w }
}

// WithLogger sets the structured logger (default slog.Default()).
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithClock sets the time source (default SystemClock).
func WithClock(c Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

// WithMetrics sets the metrics sink (default a fresh NewMetrics()).
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// NewRunner validates cfg and applies opts. Nil option values keep the
// defaults.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.clock == nil {
		r.clock = SystemClock
	}
	if r.metrics == nil {
		r.metrics = NewMetrics()
	}

	return r, nil
}

// Config returns the validated configuration.
func (r *Runner) Config() Config { return r.cfg }

// Metrics returns the runner's metrics sink.
func (r *Runner) Metrics() *Metrics { return r.metrics }

// Run performs the benchmark:
//
//  1. print BannerStart;
//  2. take the start timestamp;
//  3. build the accumulator and operand source for the seed strategy;
//  4. apply Repetitions multiplications acc = acc·operand;
//  5. take the end timestamp;
//  6. print BannerDone and the elapsed line with six decimals.
//
// Matrix construction is inside the timed region. Report and metrics files
// are written after the banners when their paths are configured.
func (r *Runner) Run() (Result, error) {
	cfg := r.cfg
	n := cfg.Size()
	log := r.logger.With("preset", cfg.Preset, "size", n, "kernel", cfg.Kernel.String())

	if err := writeStartBanner(r.out); err != nil {
		return Result{}, err
	}
	log.Info("benchmark started",
		"repetitions", cfg.Repetitions,
		"strategy", string(cfg.Strategy),
		"seed", cfg.EffectiveSeed(),
	)
	start := r.clock.Now()

	initial, next, err := r.prepare(n, matrix.NewRNG(cfg.Seed))
	if err != nil {
		return Result{}, err
	}
	acc, err := NewAccumulator(initial, matrix.WithKernel(cfg.Kernel))
	if err != nil {
		return Result{}, err
	}

	var operand matrix.Matrix
	for i := 0; i < cfg.Repetitions; i++ {
		if operand, err = next(i); err != nil {
			return Result{}, fmt.Errorf("bench: operand %d: %w", i, err)
		}
		t0 := r.clock.Now()
		if err = acc.Step(operand); err != nil {
			return Result{}, err
		}
		d := r.clock.Now().Sub(t0)
		r.metrics.observeMultiply(d)
		log.Debug("multiplication done", "iteration", i, "duration", d)
	}

	elapsed := r.clock.Now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	seconds := elapsedSeconds(elapsed)
	if err = writeDoneBanner(r.out, seconds); err != nil {
		return Result{}, err
	}

	res, err := newResult(cfg, start, elapsed, acc.Matrix())
	if err != nil {
		return Result{}, err
	}
	r.metrics.observeRun(cfg, seconds)
	log.Info("benchmark finished", "elapsed", elapsed, "gflops", res.GFLOPS)

	if cfg.ReportPath != "" {
		if err = WriteReport(cfg.ReportPath, res); err != nil {
			return res, err
		}
		log.Debug("report written", "path", cfg.ReportPath)
	}
	if cfg.MetricsPath != "" {
		if err = r.metrics.WriteTextfile(cfg.MetricsPath); err != nil {
			return res, err
		}
		log.Debug("metrics written", "path", cfg.MetricsPath)
	}

	return res, nil
}

// prepare builds the initial accumulator and the operand source.
//
//   - SeedIdentity: acc = I; one operand buffer is refilled from rng before
//     every multiplication.
//   - SeedRandom: acc and operand come from two streams derived from rng;
//     the operand is fixed.
func (r *Runner) prepare(n int, rng *rand.Rand) (*matrix.Dense, OperandFunc, error) {
	switch r.cfg.Strategy {
	case SeedIdentity:
		acc, err := matrix.NewIdentity(n)
		if err != nil {
			return nil, nil, fmt.Errorf("bench: identity: %w", err)
		}
		operand, err := matrix.NewZeros(n, n)
		if err != nil {
			return nil, nil, fmt.Errorf("bench: operand: %w", err)
		}
		next := func(int) (matrix.Matrix, error) {
			if err := matrix.FillUniform(operand, rng); err != nil {
				return nil, err
			}

			return operand, nil
		}

		return acc, next, nil

	case SeedRandom:
		acc, err := matrix.NewRandom(n, matrix.DeriveRNG(rng, 0))
		if err != nil {
			return nil, nil, fmt.Errorf("bench: accumulator: %w", err)
		}
		operand, err := matrix.NewRandom(n, matrix.DeriveRNG(rng, 1))
		if err != nil {
			return nil, nil, fmt.Errorf("bench: operand: %w", err)
		}

		return acc, FixedOperand(operand), nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, r.cfg.Strategy)
	}
}
