package sorting

import "cmp"

// Merge combines two sorted slices into one. On ties the element from left
// is taken first. If either side is empty the other one is returned as is.
func Merge[T cmp.Ordered](left, right []T) []T {
	return MergeFunc(left, right, cmp.Compare[T])
}

func MergeFunc[T any](left, right []T, compare func(a, b T) int) []T {
	if len(left) == 0 {
		return right
	}
	if len(right) == 0 {
		return left
	}

	result := make([]T, 0, len(left)+len(right))
	indexLeft, indexRight := 0, 0

	for indexLeft < len(left) && indexRight < len(right) {
		if compare(left[indexLeft], right[indexRight]) <= 0 {
			result = append(result, left[indexLeft])
			indexLeft++
		} else {
			result = append(result, right[indexRight])
			indexRight++
		}
	}

	result = append(result, left[indexLeft:]...)
	return append(result, right[indexRight:]...)
}

// MergeSort returns a sorted version of arr without modifying it. Inputs
// shorter than two elements are returned unchanged.
func MergeSort[T cmp.Ordered](arr []T) []T {
	return MergeSortFunc(arr, cmp.Compare[T])
}

// MergeSortFunc is MergeSort with a caller supplied three-way compare. The
// sort is stable.
func MergeSortFunc[T any](arr []T, compare func(a, b T) int) []T {
	if len(arr) < 2 {
		return arr
	}

	midpoint := len(arr) / 2

	return MergeFunc(
		MergeSortFunc(arr[:midpoint], compare),
		MergeSortFunc(arr[midpoint:], compare),
		compare,
	)
}
