// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/zmatbench/matrix"
)

// SeedStrategy selects how the initial matrices are built.
type SeedStrategy string

const (
	// SeedIdentity starts the accumulator at the identity and samples a fresh
	// random operand before every multiplication.
	SeedIdentity SeedStrategy = "identity"

	// SeedRandom samples the accumulator and a single operand from two
	// independent streams; the operand is reused for every multiplication.
	SeedRandom SeedStrategy = "random"
)

// Valid reports whether s is a known strategy.
func (s SeedStrategy) Valid() bool {
	return s == SeedIdentity || s == SeedRandom
}

const (
	// DefaultExponent gives 2^9 = 512×512 matrices.
	DefaultExponent = 9

	// MaxExponent caps the side at 2^14; one 16384×16384 complex128 matrix
	// already needs 4 GiB.
	MaxExponent = 14

	// DefaultPreset is used when no preset is named.
	DefaultPreset = "identity"
)

// Config describes one benchmark run. The zero value is not usable; start
// from Preset or DefaultConfig and override fields.
type Config struct {
	Preset      string        `json:"preset" yaml:"preset"`
	Exponent    int           `json:"exponent" yaml:"exponent"`
	Repetitions int           `json:"repetitions" yaml:"repetitions"`
	Strategy    SeedStrategy  `json:"strategy" yaml:"strategy"`
	Seed        int64         `json:"seed" yaml:"seed"`
	Kernel      matrix.Kernel `json:"kernel" yaml:"kernel"`
	ReportPath  string        `json:"report,omitempty" yaml:"report,omitempty"`
	MetricsPath string        `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// presets are the three fixed run shapes. identity mirrors the historical
// single-shot run; the others differ only in repetitions and seeding.
var presets = map[string]Config{
	"identity": {
		Preset:      "identity",
		Exponent:    DefaultExponent,
		Repetitions: 1,
		Strategy:    SeedIdentity,
		Kernel:      matrix.DefaultKernel,
	},
	"identity10": {
		Preset:      "identity10",
		Exponent:    DefaultExponent,
		Repetitions: 10,
		Strategy:    SeedIdentity,
		Kernel:      matrix.DefaultKernel,
	},
	"random10": {
		Preset:      "random10",
		Exponent:    DefaultExponent,
		Repetitions: 10,
		Strategy:    SeedRandom,
		Kernel:      matrix.DefaultKernel,
	},
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Preset returns a copy of the named preset. An empty name selects
// DefaultPreset.
func Preset(name string) (Config, error) {
	if name == "" {
		name = DefaultPreset
	}
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return cfg, nil
}

// DefaultConfig returns the DefaultPreset configuration.
func DefaultConfig() Config {
	cfg, _ := Preset(DefaultPreset)

	return cfg
}

// Validate checks every field that would otherwise fail deep inside a run.
func (c Config) Validate() error {
	if c.Exponent < 0 || c.Exponent > MaxExponent {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidExponent, c.Exponent, MaxExponent)
	}
	if c.Repetitions < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeRepetitions, c.Repetitions)
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Strategy)
	}
	if !c.Kernel.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKernel, c.Kernel)
	}

	return nil
}

// Size returns the matrix side length 2^Exponent.
func (c Config) Size() int {
	return 1 << c.Exponent
}

// EffectiveSeed returns the seed actually fed to the RNG (0 maps to
// matrix.DefaultRNGSeed).
func (c Config) EffectiveSeed() int64 {
	if c.Seed == 0 {
		return matrix.DefaultRNGSeed
	}

	return c.Seed
}
