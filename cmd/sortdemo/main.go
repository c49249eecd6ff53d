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

// Command sortdemo runs, verifies and benchmarks the algorithms of package sorts.
//
// Usage:
//
//	sortdemo run                          # every algorithm on [64 34 25 12 22 11 90]
//	sortdemo run --algo radix -- 3 -1 2   # one algorithm on the given values
//	sortdemo list                         # registered algorithms and their traits
//	sortdemo verify --trials 2000         # property checks on random inputs
//	sortdemo bench --sizes 1000,100000    # timing table
//
// All commands accept --config with a TOML file; see Config for its layout.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
