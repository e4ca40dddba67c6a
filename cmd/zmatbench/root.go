// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/zmatbench/bench"
	"github.com/katalvlaran/zmatbench/matrix"
)

// envPrefix namespaces environment overrides: --log-level ⇔ ZMATBENCH_LOG_LEVEL.
const envPrefix = "ZMATBENCH"

// Configuration keys; each is both a persistent flag name and a viper key.
const (
	keyConfig   = "config"
	keyPreset   = "preset"
	keyExponent = "exponent"
	keyReps     = "repetitions"
	keyStrategy = "strategy"
	keySeed     = "seed"
	keyKernel   = "kernel"
	keyReport   = "report"
	keyMetrics  = "metrics"
	keyLogLevel = "log-level"
)

const defaultLogLevel = "warn"

// newRootCmd assembles the command tree. Each call gets its own viper
// instance, so commands built in tests do not share state.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "zmatbench",
		Short: "Time repeated complex dense matrix multiplication",
		Long: `Builds 2^n x 2^n complex128 matrices, multiplies an accumulator by an
operand a fixed number of times and prints the elapsed wall-clock time.

Presets:
  identity    identity accumulator, fresh random operand, 1 repetition (default)
  identity10  identity accumulator, fresh random operand, 10 repetitions
  random10    random accumulator, one fixed random operand, 10 repetitions

Explicit flags, ZMATBENCH_* variables and --config file values override the
preset, in that order of precedence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initViper(v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, v)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.PersistentFlags()
	addFlags(fs)
	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(fs)

	cmd.AddCommand(newPresetsCmd(), newConfigCmd(v))

	return cmd
}

// addFlags registers every configuration key as a flag. Defaults shown in
// --help are those of the default preset; unset flags never override the
// selected preset.
func addFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "YAML/TOML configuration file")
	fs.String(keyPreset, bench.DefaultPreset, "preset name ("+strings.Join(bench.PresetNames(), ", ")+")")
	fs.Int(keyExponent, bench.DefaultExponent, "matrix side is 2^exponent")
	fs.IntP(keyReps, "r", 1, "number of multiplications")
	fs.String(keyStrategy, string(bench.SeedIdentity), "initial matrices: identity or random")
	fs.Int64(keySeed, 0, "RNG seed (0 selects the fixed default seed)")
	fs.String(keyKernel, string(matrix.DefaultKernel), "multiplication kernel: blas or naive")
	fs.String(keyReport, "", "write a JSON run report to this file")
	fs.String(keyMetrics, "", "write Prometheus text-format metrics to this file")
	fs.String(keyLogLevel, defaultLogLevel, "log level for stderr: debug, info, warn, error")
}

// initViper wires environment overrides and the optional config file.
func initViper(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return nil
}

// loadConfig resolves the preset and applies every explicitly set override.
// Flag defaults never override a preset field: only keys viper reports as
// set (changed flag, environment, config file) are applied.
func loadConfig(v *viper.Viper) (bench.Config, error) {
	cfg, err := bench.Preset(v.GetString(keyPreset))
	if err != nil {
		return bench.Config{}, err
	}
	if v.IsSet(keyExponent) {
		cfg.Exponent = v.GetInt(keyExponent)
	}
	if v.IsSet(keyReps) {
		cfg.Repetitions = v.GetInt(keyReps)
	}
	if v.IsSet(keyStrategy) {
		cfg.Strategy = bench.SeedStrategy(strings.ToLower(v.GetString(keyStrategy)))
	}
	if v.IsSet(keySeed) {
		cfg.Seed = v.GetInt64(keySeed)
	}
	if v.IsSet(keyKernel) {
		cfg.Kernel = matrix.Kernel(strings.ToLower(v.GetString(keyKernel)))
	}
	cfg.ReportPath = v.GetString(keyReport)
	cfg.MetricsPath = v.GetString(keyMetrics)

	if err = cfg.Validate(); err != nil {
		return bench.Config{}, err
	}

	return cfg, nil
}

func runBenchmark(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved", "config", cfg)

	runner, err := bench.NewRunner(cfg,
		bench.WithOutput(cmd.OutOrStdout()),
		bench.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	_, err = runner.Run()

	return err
}
