package sorting

import "cmp"

// BubbleSort sorts arr in place and returns it.
//
// All n passes are always executed, even once the slice is already sorted.
// Benchmark numbers depend on it, so do not add an early exit here.
func BubbleSort[T cmp.Ordered](arr []T) []T {
	n := len(arr)
	for pass := 0; pass < n; pass++ {
		for i := 0; i < n-1; i++ {
			if arr[i] > arr[i+1] {
				arr[i], arr[i+1] = arr[i+1], arr[i]
			}
		}
	}

	return arr
}
