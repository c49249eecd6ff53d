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

// Package verify checks sorting algorithms against the properties every
// sort must have: same length, non-decreasing output, same multiset of
// values, untouched input, idempotence and, for stable algorithms, preserved
// order of equal keys.
package verify

import (
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-sortlab/sorts"
)

// Property names one checked invariant.
type Property string

const (
	Length      Property = "length"
	Order       Property = "order"
	Permutation Property = "permutation"
	Unmodified  Property = "input-unmodified"
	Idempotent  Property = "idempotent"
	Stable      Property = "stable"
	NoPanic     Property = "no-panic"
)

// PropertyError reports one violated property.
type PropertyError struct {
	Algorithm string
	Property  Property
	Trial     int
	Input     []int
	Detail    string
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("%s: %s violated on trial %d (n=%d): %s",
		e.Algorithm, e.Property, e.Trial, len(e.Input), e.Detail)
}

// Check sorts input with alg and returns the first violated property, or
// nil. input is not modified.
func Check(alg sorts.Algorithm, input []int) error {
	return check(alg, -1, input)
}

func check(alg sorts.Algorithm, trial int, input []int) (err error) {
	fail := func(p Property, format string, args ...any) error {
		return &PropertyError{
			Algorithm: alg.Name,
			Property:  p,
			Trial:     trial,
			Input:     slices.Clone(input),
			Detail:    fmt.Sprintf(format, args...),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err = fail(NoPanic, "%v", r)
		}
	}()

	orig := slices.Clone(input)
	out := alg.Sort(input)

	if !slices.Equal(orig, input) {
		return fail(Unmodified, "input changed to %v", input)
	}
	if len(out) != len(input) {
		return fail(Length, "got %d elements, want %d", len(out), len(input))
	}
	for i := 1; i < len(out); i++ {
		if out[i] < out[i-1] {
			return fail(Order, "out[%d]=%d > out[%d]=%d", i-1, out[i-1], i, out[i])
		}
	}
	if !maps.Equal(lo.CountValues(input), lo.CountValues(out)) {
		return fail(Permutation, "output %v is not a permutation of the input", out)
	}
	if again := alg.Sort(out); !slices.Equal(again, out) {
		return fail(Idempotent, "re-sorting gave %v", again)
	}
	return nil
}

// Record is an input value tagged with its original position.
type Record struct {
	Value int
	Index int
}

// RecordSorter sorts records by an integer key.
type RecordSorter func([]Record, func(Record) int) []Record

var stableSorters = map[string]RecordSorter{
	"insertion": sorts.InsertionBy[Record, int],
	"merge":     sorts.MergeBy[Record, int],
	"counting":  sorts.CountingBy[Record, int],
	"radix":     sorts.RadixBy[Record, int],
}

// StableSorter returns the keyed variant of a stable algorithm.
func StableSorter(name string) (RecordSorter, bool) {
	s, ok := stableSorters[name]
	return s, ok
}

// CheckStable tags each value of input with its index, sorts the records
// with sortBy and checks that equal values kept their input order.
func CheckStable(name string, sortBy RecordSorter, input []int) error {
	return checkStable(name, sortBy, -1, input)
}

func checkStable(name string, sortBy RecordSorter, trial int, input []int) error {
	records := lo.Map(input, func(v int, i int) Record { return Record{Value: v, Index: i} })
	out := sortBy(records, func(r Record) int { return r.Value })

	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if prev.Value == cur.Value && prev.Index > cur.Index {
			return &PropertyError{
				Algorithm: name,
				Property:  Stable,
				Trial:     trial,
				Input:     slices.Clone(input),
				Detail: fmt.Sprintf("value %d from index %d placed before index %d",
					cur.Value, prev.Index, cur.Index),
			}
		}
	}
	return nil
}
