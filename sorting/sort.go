// Package sorting: strategy implementations and the Sort dispatcher.
//
// Every strategy sorts a copy; the input slice is never mutated. The
// dispatcher validates the Algorithm constant once, then hands the copy to
// the selected strategy.
package sorting

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Sort returns a freshly allocated ascending copy of data, sorted with the
// given strategy. Options only affect Radix. Returns ErrUnknownAlgorithm for
// an Algorithm outside the declared constants, and the Radix errors
// (ErrRadixInteger, ErrNegative, ErrBadBase) when that strategy applies.
func Sort[T constraints.Ordered](data []T, alg Algorithm, opts ...Option) ([]T, error) {
	if !alg.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	out := slices.Clone(data)
	switch alg {
	case Default:
		slices.Sort(out)
	case Selection:
		selectionSort(out)
	case Insertion:
		insertionSort(out)
	case Bubble:
		bubbleSort(out)
	case Merge:
		out = mergeSort(out)
	case Quick:
		out = quickSort(out)
	case Radix:
		return radixDispatch(out, opts...)
	}

	return out, nil
}

// SortByName parses name (see Parse) and sorts with the resulting strategy.
func SortByName[T constraints.Ordered](data []T, name string, opts ...Option) ([]T, error) {
	alg, err := Parse(name)
	if err != nil {
		return nil, err
	}

	return Sort(data, alg, opts...)
}

// selectionSort sorts in place by repeatedly swapping the minimum of the
// unsorted suffix into position. Time complexity: O(n²).
func selectionSort[T constraints.Ordered](data []T) {
	n := len(data)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if data[minIdx] > data[j] {
				minIdx = j
			}
		}
		data[i], data[minIdx] = data[minIdx], data[i]
	}
}

// insertionSort sorts in place by growing a sorted prefix one element at a
// time. Time complexity: O(n²), O(n) on nearly sorted input.
func insertionSort[T constraints.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && key < data[j] {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// bubbleSort sorts in place by swapping adjacent out-of-order pairs.
// Time complexity: O(n²).
func bubbleSort[T constraints.Ordered](data []T) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}
}

// mergeSort sorts by recursive halving and two-way merge.
// Time complexity: O(n·log n). Memory: O(n).
func mergeSort[T constraints.Ordered](data []T) []T {
	if len(data) <= 1 {
		return data
	}

	mid := len(data) / 2
	left := mergeSort(slices.Clone(data[:mid]))
	right := mergeSort(slices.Clone(data[mid:]))

	// Merge the sorted halves back into data.
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] < right[j] {
			data[k] = left[i]
			i++
		} else {
			data[k] = right[j]
			j++
		}
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		data[k] = left[i]
	}
	for ; j < len(right); j, k = j+1, k+1 {
		data[k] = right[j]
	}

	return data
}

// quickSort sorts by three-way partitioning around the middle element.
// Equal keys gather in the middle partition, so duplicates never recurse.
// Time complexity: O(n·log n) average, O(n²) worst case.
func quickSort[T constraints.Ordered](data []T) []T {
	if len(data) <= 1 {
		return data
	}

	pivot := data[len(data)/2]
	var left, middle, right []T
	for _, v := range data {
		switch {
		case v < pivot:
			left = append(left, v)
		case v == pivot:
			middle = append(middle, v)
		default:
			right = append(right, v)
		}
	}

	out := quickSort(left)
	out = append(out, middle...)
	out = append(out, quickSort(right)...)

	return out
}

// RadixSort returns an ascending copy of data sorted by least-significant
// digit in the configured base (decimal unless WithBase says otherwise).
// All elements must be non-negative; ErrNegative otherwise.
// Time complexity: O(w·n) for w digits.
func RadixSort[T constraints.Integer](data []T, opts ...Option) ([]T, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out := slices.Clone(data)
	if len(out) == 0 {
		return out, nil
	}

	base := uint64(o.base)
	maxKey := uint64(0)
	for _, v := range out {
		if v < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegative, v)
		}
		if k := uint64(v); k > maxKey {
			maxKey = k
		}
	}

	// Number of digit passes needed for the largest key.
	digits := 1
	for maxKey/base > 0 {
		maxKey /= base
		digits++
	}

	buckets := make([][]T, base)
	place := uint64(1)
	for d := 0; d < digits; d++ {
		for i := range buckets {
			buckets[i] = buckets[i][:0]
		}
		// Stable distribution by the current digit.
		for _, v := range out {
			digit := (uint64(v) / place) % base
			buckets[digit] = append(buckets[digit], v)
		}
		out = out[:0]
		for _, bucket := range buckets {
			out = append(out, bucket...)
		}
		place *= base
	}

	return out, nil
}

// radixDispatch bridges the Ordered-constrained Sort entry point onto the
// Integer-constrained RadixSort. The element type is inspected once; any
// non-integer kind is rejected with ErrRadixInteger, matching the behavior
// of validating before mutating.
func radixDispatch[T constraints.Ordered](data []T, opts ...Option) ([]T, error) {
	var out any
	var err error

	switch d := any(data).(type) {
	case []int:
		out, err = RadixSort(d, opts...)
	case []int8:
		out, err = RadixSort(d, opts...)
	case []int16:
		out, err = RadixSort(d, opts...)
	case []int32:
		out, err = RadixSort(d, opts...)
	case []int64:
		out, err = RadixSort(d, opts...)
	case []uint:
		out, err = RadixSort(d, opts...)
	case []uint8:
		out, err = RadixSort(d, opts...)
	case []uint16:
		out, err = RadixSort(d, opts...)
	case []uint32:
		out, err = RadixSort(d, opts...)
	case []uint64:
		out, err = RadixSort(d, opts...)
	case []uintptr:
		out, err = RadixSort(d, opts...)
	default:
		return nil, fmt.Errorf("%w: %T", ErrRadixInteger, data)
	}
	if err != nil {
		return nil, err
	}

	return out.([]T), nil
}
