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

// Bubble returns a sorted copy of data using bubble sort.
// A pass without swaps ends the sort, so sorted input costs O(n).
func Bubble[T constraints.Signed](data []T) []T {
	result := clone(data)
	n := len(result)

	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if result[j] > result[j+1] {
				result[j], result[j+1] = result[j+1], result[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return result
}

// Selection returns a sorted copy of data using selection sort.
// It always performs O(n^2) comparisons.
func Selection[T constraints.Signed](data []T) []T {
	result := clone(data)
	n := len(result)

	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if result[j] < result[minIdx] {
				minIdx = j
			}
		}
		result[i], result[minIdx] = result[minIdx], result[i]
	}
	return result
}

// Insertion returns a sorted copy of data using insertion sort. It is stable.
func Insertion[T constraints.Signed](data []T) []T {
	return InsertionBy(data, identity[T])
}

// InsertionBy returns a copy of data stably sorted by key using insertion sort.
func InsertionBy[E any, K constraints.Signed](data []E, key func(E) K) []E {
	result := clone(data)
	insertionInPlace(result, key)
	return result
}

// insertionInPlace shifts each element left past all strictly greater
// predecessors. Equal keys never cross, which makes it stable.
func insertionInPlace[E any, K constraints.Signed](data []E, key func(E) K) {
	for i := 1; i < len(data); i++ {
		e := data[i]
		k := key(e)
		j := i - 1
		for j >= 0 && key(data[j]) > k {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = e
	}
}

// Shell returns a sorted copy of data using Shell sort with the halving gap
// sequence n/2, n/4, ..., 1.
func Shell[T constraints.Signed](data []T) []T {
	result := clone(data)
	n := len(result)

	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			v := result[i]
			j := i
			for ; j >= gap && result[j-gap] > v; j -= gap {
				result[j] = result[j-gap]
			}
			result[j] = v
		}
	}
	return result
}
