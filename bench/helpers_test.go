// SPDX-License-Identifier: MIT
package bench_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zmatbench/bench"
	"github.com/katalvlaran/zmatbench/matrix"
)

// stepClock advances by step on every Now call, starting at base.
type stepClock struct {
	base  time.Time
	step  time.Duration
	calls int
}

func (c *stepClock) Now() time.Time {
	t := c.base.Add(time.Duration(c.calls) * c.step)
	c.calls++

	return t
}

var clockBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

var errSink = errors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

// quietLogger discards everything.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mustConfig loads a preset and shrinks it for fast tests.
func mustConfig(t testing.TB, preset string, exponent int) bench.Config {
	t.Helper()
	cfg, err := bench.Preset(preset)
	require.NoError(t, err)
	cfg.Exponent = exponent

	return cfg
}

// mustRun executes cfg with a quiet logger and returns stdout lines.
func mustRun(t testing.TB, cfg bench.Config, opts ...bench.RunnerOption) (bench.Result, []string) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]bench.RunnerOption{bench.WithOutput(&out), bench.WithLogger(quietLogger())}, opts...)
	r, err := bench.NewRunner(cfg, opts...)
	require.NoError(t, err)
	res, err := r.Run()
	require.NoError(t, err)

	return res, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func mustRandom(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandom(n, matrix.NewRNG(seed))
	require.NoError(t, err)

	return m
}
