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

package sorts

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Algorithm describes one registered sorting algorithm over []int.
type Algorithm struct {
	// Name is the lower-case identifier, e.g. "merge".
	Name string
	// Stable is set when equal values keep their input order.
	Stable bool
	// InPlace is set when the algorithm works by mutating its (private)
	// working copy rather than building the result in fresh storage.
	InPlace bool

	sort func([]int) []int
}

// NewAlgorithm wraps fn as an Algorithm, e.g. to run a custom sort through
// the verifier. It is not added to the registry.
func NewAlgorithm(name string, stable, inPlace bool, fn func([]int) []int) Algorithm {
	return Algorithm{Name: name, Stable: stable, InPlace: inPlace, sort: fn}
}

// Sort returns a sorted copy of data.
func (a Algorithm) Sort(data []int) []int {
	return a.sort(data)
}

// Title returns the display name, e.g. "Merge".
func (a Algorithm) Title() string {
	if a.Name == "" {
		return ""
	}
	return strings.ToUpper(a.Name[:1]) + a.Name[1:]
}

// WithBuckets returns a copy of the bucket algorithm using n buckets.
// Any other algorithm is returned unchanged.
func (a Algorithm) WithBuckets(n int) (Algorithm, error) {
	if a.Name != "bucket" {
		return a, nil
	}
	s, err := NewBucketSorter[int](n)
	if err != nil {
		return Algorithm{}, err
	}
	a.sort = s.Sort
	return a, nil
}

// defaultBucketSorter backs the registry's bucket entry.
var defaultBucketSorter = mustBucketSorter(DefaultBuckets)

func mustBucketSorter(buckets int) *BucketSorter[int] {
	s, err := NewBucketSorter[int](buckets)
	if err != nil {
		panic(err)
	}
	return s
}

var registry = []Algorithm{
	{Name: "bubble", InPlace: true, sort: Bubble[int]},
	{Name: "selection", InPlace: true, sort: Selection[int]},
	{Name: "insertion", Stable: true, InPlace: true, sort: Insertion[int]},
	{Name: "merge", Stable: true, sort: Merge[int]},
	{Name: "quick", InPlace: true, sort: Quick[int]},
	{Name: "heap", InPlace: true, sort: Heap[int]},
	{Name: "counting", Stable: true, sort: Counting[int]},
	{Name: "radix", Stable: true, sort: Radix[int]},
	{Name: "bucket", sort: defaultBucketSorter.Sort},
	{Name: "shell", InPlace: true, sort: Shell[int]},
}

// Algorithms returns every registered algorithm in a fixed order:
// bubble, selection, insertion, merge, quick, heap, counting, radix,
// bucket, shell. The returned slice is a copy.
func Algorithms() []Algorithm {
	return clone(registry)
}

// Names returns the registered algorithm names in registry order.
func Names() []string {
	return lo.Map(registry, func(a Algorithm, _ int) string { return a.Name })
}

// Lookup returns the algorithm registered under name (case-insensitive).
func Lookup(name string) (Algorithm, error) {
	a, ok := lo.Find(registry, func(a Algorithm) bool {
		return strings.EqualFold(a.Name, name)
	})
	if !ok {
		return Algorithm{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return a, nil
}
