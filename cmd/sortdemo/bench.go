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
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-sortlab/sorts"
)

// quadratic names the algorithms limited to BenchConfig.MaxQuadratic.
var quadratic = map[string]bool{"bubble": true, "selection": true, "insertion": true}

// minBenchTime is how long each measurement repeats the sort.
const minBenchTime = 50 * time.Millisecond

func newBenchCmd(a *app) *cobra.Command {
	var (
		algos []string
		sizes []int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm on random inputs of several sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Bench
			if cmd.Flags().Changed("sizes") {
				cfg.Sizes = sizes
			}
			for _, n := range cfg.Sizes {
				if n < 0 {
					err := errors.Errorf("negative size %d", n)
					a.log.Error("invalid bench sizes", zap.Error(err))
					return err
				}
			}

			algs, err := selectAlgorithms(algos, a.cfg.Run.Buckets)
			if err != nil {
				a.log.Error("invalid algorithm selection", zap.Error(err))
				return err
			}

			a.log.Info("benchmarking", zap.Ints("sizes", cfg.Sizes), zap.Int("algorithms", len(algs)))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, hostInfo())

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "ALGORITHM\tSIZE\tTIME/OP\tNS/ELEM\t")
			for _, n := range cfg.Sizes {
				data := benchInput(cfg.Seed, n)
				for _, alg := range algs {
					if err := cmd.Context().Err(); err != nil {
						a.log.Warn("bench interrupted", zap.Error(err))
						return err
					}
					if quadratic[alg.Name] && n > cfg.MaxQuadratic {
						a.log.Debug("skipping quadratic sort", zap.String("algorithm", alg.Name), zap.Int("size", n))
						continue
					}
					perOp := measure(alg, data)
					writeRow(tw, alg.Name, n, perOp)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVar(&algos, "algo", nil, "algorithm to time (repeatable); default all")
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "input sizes (default from config)")
	return cmd
}

// measure repeats alg on data until minBenchTime has passed and returns the
// mean time per sort.
func measure(alg sorts.Algorithm, data []int) time.Duration {
	var (
		runs    int
		elapsed time.Duration
	)
	start := time.Now()
	for runs == 0 || elapsed < minBenchTime {
		alg.Sort(data)
		runs++
		elapsed = time.Since(start)
	}
	return elapsed / time.Duration(runs)
}

func writeRow(w io.Writer, name string, n int, perOp time.Duration) {
	nsPerElem := "-"
	if n > 0 {
		nsPerElem = fmt.Sprintf("%.1f", float64(perOp.Nanoseconds())/float64(n))
	}
	fmt.Fprintf(w, "%s\t%s\t%v\t%s\t\n", name, humanize.Comma(int64(n)), perOp, nsPerElem)
}

// benchInput returns n values in [-n, n], the same for a given seed.
func benchInput(seed uint64, n int) []int {
	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	return lo.Times(n, func(int) int { return rng.IntN(2*n+1) - n })
}

// hostInfo describes the machine the numbers were taken on.
func hostInfo() string {
	var features []string
	switch runtime.GOARCH {
	case "amd64":
		features = lo.Compact([]string{
			lo.Ternary(cpu.X86.HasAVX2, "avx2", ""),
			lo.Ternary(cpu.X86.HasAVX512F, "avx512f", ""),
			lo.Ternary(cpu.X86.HasBMI2, "bmi2", ""),
			lo.Ternary(cpu.X86.HasPOPCNT, "popcnt", ""),
		})
	case "arm64":
		features = lo.Compact([]string{
			lo.Ternary(cpu.ARM64.HasASIMD, "asimd", ""),
			lo.Ternary(cpu.ARM64.HasSVE, "sve", ""),
			lo.Ternary(cpu.ARM64.HasATOMICS, "atomics", ""),
		})
	}
	if len(features) == 0 {
		features = []string{"none"}
	}
	return fmt.Sprintf("host: %s/%s, %d CPUs, features: %s",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), strings.Join(features, " "))
}
