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

package verify

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sortlab/sorts"
	"github.com/ajroetker/go-sortlab/workerpool"
)

// ErrInvalidConfig is returned by Run for unusable configurations.
var ErrInvalidConfig = errors.New("invalid verify config")

// Config controls input generation for Run.
type Config struct {
	// Trials is the number of random inputs, on top of the fixed edge cases.
	Trials int `toml:"trials"`
	// MaxLen bounds the length of random inputs.
	MaxLen int `toml:"max_len"`
	// MinValue and MaxValue bound the values of random inputs.
	MinValue int `toml:"min_value"`
	MaxValue int `toml:"max_value"`
	// Seed makes runs reproducible; trial i always gets the same input.
	Seed uint64 `toml:"seed"`
	// Workers is the pool size; 0 means GOMAXPROCS.
	Workers int `toml:"workers"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Trials:   500,
		MaxLen:   256,
		MinValue: -1000,
		MaxValue: 1000,
		Seed:     1,
	}
}

// Validate reports whether c can drive Run.
func (c Config) Validate() error {
	switch {
	case c.Trials < 0:
		return errors.Wrapf(ErrInvalidConfig, "trials must be >= 0, got %d", c.Trials)
	case c.MaxLen < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_len must be >= 0, got %d", c.MaxLen)
	case c.MinValue > c.MaxValue:
		return errors.Wrapf(ErrInvalidConfig, "min_value %d > max_value %d", c.MinValue, c.MaxValue)
	case uint64(int64(c.MaxValue))-uint64(int64(c.MinValue)) >= sorts.MaxCountingRange:
		return errors.Wrapf(ErrInvalidConfig, "value range [%d, %d] wider than %d", c.MinValue, c.MaxValue, sorts.MaxCountingRange)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// Report is the outcome of Run.
type Report struct {
	// Inputs is the number of inputs checked, edge cases included.
	Inputs int
	// Checks counts algorithm/input pairs that were evaluated.
	Checks int64
	// Failures holds every violation, ordered by trial.
	Failures []*PropertyError
}

// OK reports whether no property was violated.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// FailuresFor returns the failures recorded for one algorithm.
func (r *Report) FailuresFor(name string) []*PropertyError {
	return lo.Filter(r.Failures, func(e *PropertyError, _ int) bool { return e.Algorithm == name })
}

// Inputs returns the inputs Run checks for cfg: the fixed edge cases
// followed by cfg.Trials random sequences.
func Inputs(ctx context.Context, pool *workerpool.Pool, cfg Config) ([][]int, error) {
	edges := edgeCases(cfg)
	inputs := make([][]int, len(edges)+cfg.Trials)
	copy(inputs, edges)

	err := pool.ParallelFor(ctx, cfg.Trials, func(start, end int) {
		for i := start; i < end; i++ {
			inputs[len(edges)+i] = randomInput(cfg, i)
		}
	})
	return inputs, err
}

// Run checks every algorithm in algs against every input on a worker pool.
// On cancellation it returns the partial report together with ctx.Err();
// the report is empty when cancellation came before any check ran.
func Run(ctx context.Context, cfg Config, algs []sorts.Algorithm) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	inputs, err := Inputs(ctx, pool, cfg)
	if err != nil {
		return &Report{}, err
	}

	var (
		mu       sync.Mutex
		failures []*PropertyError
		checks   atomic.Int64
	)
	record := func(err error) {
		if err == nil {
			return
		}
		var perr *PropertyError
		if !errors.As(err, &perr) {
			perr = &PropertyError{Property: "unknown", Detail: err.Error()}
		}
		mu.Lock()
		failures = append(failures, perr)
		mu.Unlock()
	}

	err = pool.ParallelForAtomic(ctx, len(inputs), func(trial int) {
		in := inputs[trial]
		for _, alg := range algs {
			record(check(alg, trial, in))
			if s, ok := StableSorter(alg.Name); ok && alg.Stable {
				record(checkStable(alg.Name, s, trial, in))
			}
			checks.Add(1)
		}
	})

	return &Report{
		Inputs:   len(inputs),
		Checks:   checks.Load(),
		Failures: sorts.MergeBy(failures, func(e *PropertyError) int { return e.Trial }),
	}, err
}

// edgeCases are the boundary inputs every algorithm must handle, clamped to
// the configured value range.
func edgeCases(cfg Config) [][]int {
	minV, maxV := cfg.MinValue, cfg.MaxValue
	mid := minV + (maxV-minV)/2
	clamp := func(v int) int { return min(max(v, minV), maxV) }
	vals := func(vs ...int) []int {
		out := make([]int, len(vs))
		for i, v := range vs {
			out[i] = clamp(v)
		}
		return out
	}

	return [][]int{
		{},
		{mid},
		vals(mid, mid, mid),
		vals(64, 34, 25, 12, 22, 11, 90),
		vals(-5, 3, -1, 0, 2, -8),
		vals(-2, -1, -3),
		vals(minV, maxV, mid, minV, maxV),
		vals(1, 2, 3, 4, 5, 6, 7, 8),
		vals(8, 7, 6, 5, 4, 3, 2, 1),
	}
}

// randomInput derives trial i's input from the seed alone, so the result
// does not depend on how trials are spread over workers.
func randomInput(cfg Config, i int) []int {
	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
	n := rng.IntN(cfg.MaxLen + 1)
	span := int64(cfg.MaxValue) - int64(cfg.MinValue) + 1
	return lo.Times(n, func(int) int {
		return cfg.MinValue + int(rng.Int64N(span))
	})
}
