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
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortlab/sorts"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		algos   []string
		buckets int
	)

	cmd := &cobra.Command{
		Use:   "run [-- values...]",
		Short: "Sort a sequence with each algorithm and print the results",
		Long: "Sort the given integers, or the configured sequences, or the demo\n" +
			"sequence [64 34 25 12 22 11 90], with every selected algorithm.\n" +
			"Put -- before the values so negative numbers are not read as flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("algo") {
				a.cfg.Run.Algorithms = algos
			}
			if cmd.Flags().Changed("buckets") {
				a.cfg.Run.Buckets = buckets
			}

			sequences := a.cfg.Run.Sequences
			if len(args) > 0 {
				seq, err := parseInts(args)
				if err != nil {
					a.log.Error("invalid values", zap.Error(err))
					return err
				}
				sequences = [][]int{seq}
			}

			algs, err := selectAlgorithms(a.cfg.Run.Algorithms, a.cfg.Run.Buckets)
			if err != nil {
				a.log.Error("invalid algorithm selection", zap.Error(err))
				return err
			}

			a.log.Info("running",
				zap.Int("sequences", len(sequences)),
				zap.Strings("algorithms", lo.Map(algs, func(alg sorts.Algorithm, _ int) string { return alg.Name })),
				zap.Int("buckets", a.cfg.Run.Buckets))

			out := cmd.OutOrStdout()
			for i, seq := range sequences {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printSorted(out, seq, algs)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&algos, "algo", nil, "algorithm to run (repeatable); default all")
	cmd.Flags().IntVar(&buckets, "buckets", sorts.DefaultBuckets, "bucket count for bucket sort")
	return cmd
}

// printSorted writes the input followed by one line per algorithm.
func printSorted(w io.Writer, seq []int, algs []sorts.Algorithm) {
	fmt.Fprintln(w, "Original array:", seq)
	for _, alg := range algs {
		fmt.Fprintf(w, "%s Sort: %v\n", alg.Title(), alg.Sort(seq))
	}
}

// selectAlgorithms resolves names (all algorithms when empty) and applies
// the bucket count.
func selectAlgorithms(names []string, buckets int) ([]sorts.Algorithm, error) {
	if buckets < 1 {
		return nil, errors.Wrapf(sorts.ErrInvalidBucketCount, "--buckets %d", buckets)
	}

	algs := sorts.Algorithms()
	if len(names) > 0 {
		algs = make([]sorts.Algorithm, 0, len(names))
		for _, name := range names {
			alg, err := sorts.Lookup(name)
			if err != nil {
				return nil, err
			}
			algs = append(algs, alg)
		}
	}

	for i := range algs {
		alg, err := algs[i].WithBuckets(buckets)
		if err != nil {
			return nil, err
		}
		algs[i] = alg
	}
	return algs, nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i+1)
		}
		values[i] = v
	}
	return values, nil
}
