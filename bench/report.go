// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/katalvlaran/zmatbench/matrix"
)

// Result describes one completed run.
type Result struct {
	Preset      string        `json:"preset"`
	Size        int           `json:"size"`
	Repetitions int           `json:"repetitions"`
	Strategy    SeedStrategy  `json:"strategy"`
	Kernel      matrix.Kernel `json:"kernel"`
	Seed        int64         `json:"seed"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Seconds     float64       `json:"elapsed_seconds"`
	GFLOPS      float64       `json:"gflops"`
	TraceReal   float64       `json:"trace_real"`
	TraceImag   float64       `json:"trace_imag"`
	Timestamp   time.Time     `json:"timestamp"`
	GoVersion   string        `json:"go_version"`
	NumCPU      int           `json:"num_cpu"`

	// Accumulator is the final matrix. It is not serialized.
	Accumulator *matrix.Dense `json:"-"`
}

// MulFLOPs is the real floating-point operation count of one n×n complex
// GEMM: n^3 complex multiply-adds at 8 real flops each.
func MulFLOPs(n int) float64 {
	f := float64(n)

	return 8 * f * f * f
}

// gflops returns the throughput of reps n×n multiplications in seconds.
func gflops(n, reps int, seconds float64) float64 {
	if seconds <= 0 || reps == 0 {
		return 0
	}

	return MulFLOPs(n) * float64(reps) / seconds / 1e9
}

func newResult(cfg Config, start time.Time, elapsed time.Duration, acc *matrix.Dense) (Result, error) {
	seconds := elapsedSeconds(elapsed)
	trace, err := matrix.Trace(acc)
	if err != nil {
		return Result{}, fmt.Errorf("bench: result trace: %w", err)
	}

	return Result{
		Preset:      cfg.Preset,
		Size:        cfg.Size(),
		Repetitions: cfg.Repetitions,
		Strategy:    cfg.Strategy,
		Kernel:      cfg.Kernel,
		Seed:        cfg.EffectiveSeed(),
		Elapsed:     elapsed,
		Seconds:     seconds,
		GFLOPS:      gflops(cfg.Size(), cfg.Repetitions, seconds),
		TraceReal:   real(trace),
		TraceImag:   imag(trace),
		Timestamp:   start,
		GoVersion:   runtime.Version(),
		NumCPU:      runtime.NumCPU(),
		Accumulator: acc,
	}, nil
}

// WriteReport writes res as indented JSON to path.
func WriteReport(path string, res Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("bench: encode report: %w", err)
	}
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("bench: write report %s: %w", path, err)
	}

	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (Result, error) {
	var res Result
	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("bench: read report %s: %w", path, err)
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("bench: decode report %s: %w", path, err)
	}

	return res, nil
}
