package sorting

import "cmp"

// InsertionSort sorts arr in place and returns it.
func InsertionSort[T cmp.Ordered](arr []T) []T {
	return InsertionSortFunc(arr, cmp.Compare[T])
}

// InsertionSortFunc sorts arr in place using compare. Equal elements keep
// their relative order.
func InsertionSortFunc[T any](arr []T, compare func(a, b T) int) []T {
	for i := 1; i < len(arr); i++ {
		// shift arr[i] left until its neighbour is no longer greater
		for j := i; j > 0 && compare(arr[j-1], arr[j]) > 0; j-- {
			arr[j-1], arr[j] = arr[j], arr[j-1]
		}
	}

	return arr
}
