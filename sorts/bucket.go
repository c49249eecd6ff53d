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
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// DefaultBuckets is the bucket count used when Bucket runs through the registry.
const DefaultBuckets = 5

// BucketSorter sorts with a fixed, validated number of buckets.
type BucketSorter[T constraints.Signed] struct {
	buckets int
}

// NewBucketSorter returns a BucketSorter using the given number of buckets.
// It fails with ErrInvalidBucketCount if buckets < 1.
func NewBucketSorter[T constraints.Signed](buckets int) (*BucketSorter[T], error) {
	if buckets < 1 {
		return nil, errors.Wrapf(ErrInvalidBucketCount, "got %d", buckets)
	}
	return &BucketSorter[T]{buckets: buckets}, nil
}

// Buckets returns the configured bucket count.
func (s *BucketSorter[T]) Buckets() int {
	return s.buckets
}

// Bucket returns a sorted copy of data using bucket sort with the given
// number of buckets. The bucket count is validated before data is read.
func Bucket[T constraints.Signed](data []T, buckets int) ([]T, error) {
	s, err := NewBucketSorter[T](buckets)
	if err != nil {
		return nil, err
	}
	return s.Sort(data), nil
}

// Sort returns a sorted copy of data.
//
// The value range max-min+1 is split into equal-width buckets. A value v
// goes to bucket floor((v-min)/width); an index that rounds up to the bucket
// count lands in the last bucket. Buckets are insertion sorted and
// concatenated in index order.
func (s *BucketSorter[T]) Sort(data []T) []T {
	if len(data) == 0 {
		return []T{}
	}

	minVal, span := keyRange(data, identity[T])
	width := (float64(span) + 1) / float64(s.buckets)

	buckets := make([][]T, s.buckets)
	for _, v := range data {
		idx := int(math.Floor(float64(offset(v, minVal)) / width))
		if idx >= s.buckets {
			idx = s.buckets - 1
		}
		buckets[idx] = append(buckets[idx], v)
	}

	result := make([]T, 0, len(data))
	for _, b := range buckets {
		if len(b) == 0 {
			continue
		}
		insertionInPlace(b, identity[T])
		result = append(result, b...)
	}
	return result
}
