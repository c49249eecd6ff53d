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
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// MaxCountingRange is the largest value range (max-min+1) for which Counting
// allocates a dense count table with one int per value. Wider ranges are
// counted over the distinct values present instead.
const MaxCountingRange = 1 << 26

// radixBase is the digit base used by Radix.
const radixBase = 10

// Counting returns a sorted copy of data using counting sort. It is stable
// and accepts any value range; see MaxCountingRange.
func Counting[T constraints.Signed](data []T) []T {
	return CountingBy(data, identity[T])
}

// CountingBy returns a copy of data stably sorted by key using counting sort.
func CountingBy[E any, K constraints.Signed](data []E, key func(E) K) []E {
	if len(data) == 0 {
		return []E{}
	}

	minKey, span := keyRange(data, key)
	if span >= MaxCountingRange {
		return countingSparse(data, key)
	}

	// Tally, then turn counts into the end position of each key's run.
	count := make([]int, span+1)
	for _, e := range data {
		count[offset(key(e), minKey)]++
	}
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}

	// Scanning backwards fills each run from its end, preserving input order.
	output := make([]E, len(data))
	for i := len(data) - 1; i >= 0; i-- {
		slot := offset(key(data[i]), minKey)
		count[slot]--
		output[count[slot]] = data[i]
	}
	return output
}

// countingSparse is CountingBy with the count table keyed by the distinct
// keys of data, in ascending order, rather than by every value in the range.
func countingSparse[E any, K constraints.Signed](data []E, key func(E) K) []E {
	counts := lo.CountValuesBy(data, key)
	keys := lo.Keys(counts)
	slices.Sort(keys)

	end := make(map[K]int, len(keys))
	total := 0
	for _, k := range keys {
		total += counts[k]
		end[k] = total
	}

	output := make([]E, len(data))
	for i := len(data) - 1; i >= 0; i-- {
		k := key(data[i])
		end[k]--
		output[end[k]] = data[i]
	}
	return output
}

// Radix returns a sorted copy of data using LSD radix sort in base 10. It is stable.
//
// Negative values are split off and sorted by absolute value, then reversed
// and placed before the non-negative values.
func Radix[T constraints.Signed](data []T) []T {
	return RadixBy(data, identity[T])
}

// RadixBy returns a copy of data stably sorted by key using LSD radix sort.
func RadixBy[E any, K constraints.Signed](data []E, key func(E) K) []E {
	if len(data) == 0 {
		return []E{}
	}

	isNegative := func(e E, _ int) bool { return key(e) < 0 }
	neg := lo.Filter(data, isNegative)
	pos := lo.Reject(data, isNegative)
	abs := func(e E) uint64 { return magnitude(key(e)) }

	// Largest magnitude first is ascending value order. Reversing before the
	// stable pass as well as after it keeps equal keys in input order.
	slices.Reverse(neg)
	neg = radixByDigits(neg, abs)
	slices.Reverse(neg)

	return append(neg, radixByDigits(pos, abs)...)
}

// radixByDigits sorts data by the non-negative digit key, one stable
// counting pass per decimal digit of the largest key. data is reused as the
// result buffer.
func radixByDigits[E any](data []E, digits func(E) uint64) []E {
	if len(data) <= 1 {
		return data
	}

	maxKey := lo.Max(lo.Map(data, func(e E, _ int) uint64 { return digits(e) }))
	passes := 0
	for m := maxKey; m > 0; m /= radixBase {
		passes++
	}

	buf := make([]E, len(data))
	exp := uint64(1)
	for p := 0; p < passes; p++ {
		countingByDigit(data, buf, digits, exp)
		data, buf = buf, data
		if p < passes-1 {
			exp *= radixBase
		}
	}
	return data
}

// countingByDigit stably scatters src into dst by the digit of key at exp.
func countingByDigit[E any](src, dst []E, key func(E) uint64, exp uint64) {
	var count [radixBase]int
	for _, e := range src {
		count[key(e)/exp%radixBase]++
	}
	for d := 1; d < radixBase; d++ {
		count[d] += count[d-1]
	}
	for i := len(src) - 1; i >= 0; i-- {
		d := key(src[i]) / exp % radixBase
		count[d]--
		dst[count[d]] = src[i]
	}
}
