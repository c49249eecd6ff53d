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

// Helpers shared by all algorithms.

// clone returns a copy of data that is never nil, so empty input maps to an
// empty (not nil) result.
func clone[E any](data []E) []E {
	result := make([]E, len(data))
	copy(result, data)
	return result
}

func identity[T any](v T) T { return v }

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T constraints.Signed](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// keyRange returns the minimum key and the span max-min of data's keys.
// The span is computed in uint64 so it cannot overflow for any signed type.
// data must not be empty.
func keyRange[E any, K constraints.Signed](data []E, key func(E) K) (K, uint64) {
	minKey, maxKey := key(data[0]), key(data[0])
	for _, e := range data[1:] {
		k := key(e)
		if k < minKey {
			minKey = k
		}
		if k > maxKey {
			maxKey = k
		}
	}
	return minKey, offset(maxKey, minKey)
}

// offset returns v-base as an unsigned distance. v must be >= base.
func offset[K constraints.Signed](v, base K) uint64 {
	return uint64(int64(v)) - uint64(int64(base))
}

// magnitude returns |v| as uint64; |math.MinInt64| is representable.
func magnitude[K constraints.Signed](v K) uint64 {
	if v < 0 {
		return uint64(-(int64(v) + 1)) + 1
	}
	return uint64(v)
}
