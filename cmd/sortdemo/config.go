// Copyright 2025 go-sortlab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-sortlab/sorts"
	"github.com/ajroetker/go-sortlab/sorts/verify"
)

// demoSequence is the input every algorithm is shown on by default.
var demoSequence = []int{64, 34, 25, 12, 22, 11, 90}

// Config is the TOML configuration of sortdemo.
type Config struct {
	Log    LogConfig     `toml:"log"`
	Run    RunConfig     `toml:"run"`
	Verify verify.Config `toml:"verify"`
	Bench  BenchConfig   `toml:"bench"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// Filename, when set, sends logs to a file rotated by lumberjack
	// instead of stderr.
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxDays    int    `toml:"max_days"`
}

// RunConfig configures the run command.
type RunConfig struct {
	Buckets    int      `toml:"buckets"`
	Algorithms []string `toml:"algorithms"`
	Sequences  [][]int  `toml:"sequences"`
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	Sizes []int `toml:"sizes"`
	// MaxQuadratic is the largest size the O(n^2) sorts are timed on.
	MaxQuadratic int    `toml:"max_quadratic"`
	Seed         uint64 `toml:"seed"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSize:    64,
			MaxBackups: 3,
			MaxDays:    7,
		},
		Run: RunConfig{
			Buckets:   sorts.DefaultBuckets,
			Sequences: [][]int{demoSequence},
		},
		Verify: verify.DefaultConfig(),
		Bench: BenchConfig{
			Sizes:        []int{100, 1000, 10000},
			MaxQuadratic: 10000,
			Seed:         1,
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults. An empty path
// returns the defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("load config %s: unknown keys %v", path, undecoded)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Run.Buckets < 1 {
		return errors.Wrapf(sorts.ErrInvalidBucketCount, "run.buckets = %d", c.Run.Buckets)
	}
	for _, name := range c.Run.Algorithms {
		if _, err := sorts.Lookup(name); err != nil {
			return errors.Wrap(err, "run.algorithms")
		}
	}
	if err := c.Verify.Validate(); err != nil {
		return errors.Wrap(err, "verify")
	}
	for _, n := range c.Bench.Sizes {
		if n < 0 {
			return errors.Errorf("bench.sizes: negative size %d", n)
		}
	}
	return nil
}
