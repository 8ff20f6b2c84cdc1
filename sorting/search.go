// Package sorting: search algorithms over flat slices.
package sorting

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// LinearSearch scans data front to back and returns the index of the first
// element equal to target, or -1 when absent. Time complexity: O(n).
func LinearSearch[T comparable](data []T, target T) int {
	for i, v := range data {
		if v == target {
			return i
		}
	}

	return -1
}

// BinarySearch returns the index of target in sorted data, or -1 when
// absent. Returns ErrUnsorted when data is not in ascending order.
// Time complexity: O(log n) after the O(n) precondition check.
func BinarySearch[T constraints.Ordered](data []T, target T) (int, error) {
	if !slices.IsSorted(data) {
		return -1, ErrUnsorted
	}

	low, high := 0, len(data)-1
	for low <= high {
		mid := (low + high) / 2
		switch {
		case data[mid] == target:
			return mid, nil
		case data[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return -1, nil
}

// InterpolationSearch returns the index of target in sorted numeric data,
// or -1 when absent. The probe position is estimated from the target's
// value relative to the range endpoints, so uniformly distributed keys
// converge in O(log log n); the worst case is O(n).
// Returns ErrUnsorted when data is not in ascending order.
func InterpolationSearch[T constraints.Integer | constraints.Float](data []T, target T) (int, error) {
	if !slices.IsSorted(data) {
		return -1, ErrUnsorted
	}

	low, high := 0, len(data)-1
	for low <= high && target >= data[low] && target <= data[high] {
		if data[high] == data[low] {
			// Flat range: every candidate equals data[low].
			if data[low] == target {
				return low, nil
			}
			break
		}

		span := float64(high - low)
		frac := float64(target-data[low]) / float64(data[high]-data[low])
		pos := low + int(span*frac)

		switch {
		case data[pos] == target:
			return pos, nil
		case data[pos] < target:
			low = pos + 1
		default:
			high = pos - 1
		}
	}

	return -1, nil
}
