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

import "golang.org/x/exp/constraints"

// Merge returns a sorted copy of data using top-down merge sort. It is stable.
func Merge[T constraints.Signed](data []T) []T {
	return MergeBy(data, identity[T])
}

// MergeBy returns a copy of data stably sorted by key using merge sort.
func MergeBy[E any, K constraints.Signed](data []E, key func(E) K) []E {
	if len(data) <= 1 {
		return clone(data)
	}
	return mergeSort(data, key)
}

// mergeSort splits at len/2 (the left half is the shorter one for odd
// lengths) and merges the sorted halves into a fresh slice.
func mergeSort[E any, K constraints.Signed](data []E, key func(E) K) []E {
	if len(data) <= 1 {
		return clone(data)
	}
	mid := len(data) / 2
	return merge(mergeSort(data[:mid], key), mergeSort(data[mid:], key), key)
}

// merge takes from left while its front is <= right's front, so equal keys
// keep their left-before-right order.
func merge[E any, K constraints.Signed](left, right []E, key func(E) K) []E {
	result := make([]E, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if key(left[i]) <= key(right[j]) {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	return append(result, right[j:]...)
}

// Quick returns a sorted copy of data using quicksort with a Lomuto
// partition around the last element of each range. Not stable.
//
// Pending ranges live on an explicit stack rather than the call stack, so
// adversarial input (already sorted, reverse sorted) costs O(n^2) time but
// only O(log n) stack entries.
func Quick[T constraints.Signed](data []T) []T {
	result := clone(data)
	if len(result) <= 1 {
		return result
	}

	type span struct{ low, high int }
	stack := []span{{0, len(result) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.low >= s.high {
			continue
		}

		p := partition(result, s.low, s.high)
		left, right := span{s.low, p - 1}, span{p + 1, s.high}
		// Push the larger side first so the smaller one is handled next.
		if left.high-left.low > right.high-right.low {
			stack = append(stack, left, right)
		} else {
			stack = append(stack, right, left)
		}
	}
	return result
}

// partition moves every element <= data[high] before it and returns the
// pivot's final index.
func partition[T constraints.Signed](data []T, low, high int) int {
	pivot := data[high]
	i := low
	for j := low; j < high; j++ {
		if data[j] <= pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[high] = data[high], data[i]
	return i
}
