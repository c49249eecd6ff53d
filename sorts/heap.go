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

// Heap returns a sorted copy of data using heapsort.
// O(n log n) for every input order and O(1) extra space beyond the copy.
func Heap[T constraints.Signed](data []T) []T {
	result := clone(data)
	n := len(result)
	if n <= 1 {
		return result
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(result, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		result[0], result[i] = result[i], result[0]
		siftDown(result, 0, i)
	}
	return result
}

// siftDown restores the max-heap property for the subtree rooted at i,
// considering only data[:n].
func siftDown[T constraints.Signed](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			return
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
