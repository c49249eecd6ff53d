// Package sorts provides ten classic sorting algorithms over signed integers.
//
// # Algorithms
//
// Comparison sorts:
//   - Bubble: adjacent swaps with early exit on a clean pass
//   - Selection: minimum of the unsorted suffix swapped into place
//   - Insertion: shifts past strictly-greater predecessors (stable)
//   - Shell: gapped insertion sort with gaps n/2, n/4, ..., 1
//
// Divide-and-conquer sorts:
//   - Merge: top-down merge sort (stable)
//   - Quick: Lomuto partition around the last element
//
// Heap sort:
//   - Heap: in-place binary max-heap
//
// Distribution sorts:
//   - Counting: count table over the value range (stable)
//   - Radix: LSD base-10 digit passes, negatives split off (stable)
//   - Bucket: range partitioned into a caller-chosen number of buckets
//
// # Conventions
//
// Every function returns a new slice and leaves its argument untouched.
// Empty input yields an empty, non-nil result. The stable algorithms also
// have ...By variants that order arbitrary records by an integer key.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortlab/sorts"
//
//	func Process(data []int) []int {
//	    return sorts.Merge(data)
//	}
//
//	func ByBuckets(data []int) ([]int, error) {
//	    return sorts.Bucket(data, 5)
//	}
//
// All functions are pure and safe for concurrent use on distinct inputs.
package sorts
