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
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortlab/sorts/verify"
)

// errVerifyFailed is returned when at least one property check failed.
var errVerifyFailed = errors.New("property verification failed")

func newVerifyCmd(a *app) *cobra.Command {
	var (
		algos []string
		flags verify.Config
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every algorithm for sorting invariants on generated inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Verify
			f := cmd.Flags()
			if f.Changed("trials") {
				cfg.Trials = flags.Trials
			}
			if f.Changed("max-len") {
				cfg.MaxLen = flags.MaxLen
			}
			if f.Changed("seed") {
				cfg.Seed = flags.Seed
			}
			if f.Changed("workers") {
				cfg.Workers = flags.Workers
			}

			algs, err := selectAlgorithms(algos, a.cfg.Run.Buckets)
			if err != nil {
				a.log.Error("invalid algorithm selection", zap.Error(err))
				return err
			}

			a.log.Info("verifying",
				zap.Int("trials", cfg.Trials),
				zap.Int("max_len", cfg.MaxLen),
				zap.Uint64("seed", cfg.Seed),
				zap.Int("algorithms", len(algs)))

			start := time.Now()
			report, err := verify.Run(cmd.Context(), cfg, algs)
			if err != nil {
				a.log.Error("verify aborted", zap.Error(err))
				return err
			}

			out := cmd.OutOrStdout()
			pass := color.New(color.FgGreen, color.Bold).SprintFunc()
			fail := color.New(color.FgRed, color.Bold).SprintFunc()
			for _, alg := range algs {
				failures := report.FailuresFor(alg.Name)
				if len(failures) == 0 {
					fmt.Fprintf(out, "%s  %s\n", pass("PASS"), alg.Name)
					continue
				}
				fmt.Fprintf(out, "%s  %s (%d failures)\n", fail("FAIL"), alg.Name, len(failures))
				fmt.Fprintf(out, "      first: %v\n", failures[0])
			}
			fmt.Fprintf(out, "%s checks on %s inputs in %v\n",
				humanize.Comma(report.Checks), humanize.Comma(int64(report.Inputs)),
				time.Since(start).Round(time.Millisecond))

			a.log.Info("verify finished",
				zap.Int64("checks", report.Checks),
				zap.Int("failures", len(report.Failures)))
			if !report.OK() {
				return errVerifyFailed
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&algos, "algo", nil, "algorithm to verify (repeatable); default all")
	f.IntVar(&flags.Trials, "trials", 0, "number of random inputs (default from config)")
	f.IntVar(&flags.MaxLen, "max-len", 0, "maximum random input length (default from config)")
	f.Uint64Var(&flags.Seed, "seed", 0, "random seed (default from config)")
	f.IntVar(&flags.Workers, "workers", 0, "worker count, 0 for GOMAXPROCS (default from config)")
	return cmd
}
