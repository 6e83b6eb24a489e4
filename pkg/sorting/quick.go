package sorting

import (
	"cmp"
	"math/rand"
)

// QuickSort returns a sorted copy of arr. The pivot of every partition is
// drawn from rng, so the recursion differs between sources while the output
// does not. arr itself is never modified. Not thread safe, rng is shared
// across the recursion.
func QuickSort[T cmp.Ordered](rng *rand.Rand, arr []T) []T {
	if len(arr) < 2 {
		return arr
	}

	pivot := arr[rng.Intn(len(arr))]

	var less, equal, more []T
	for _, v := range arr {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			more = append(more, v)
		default:
			equal = append(equal, v)
		}
	}

	less = QuickSort(rng, less)
	more = QuickSort(rng, more)

	result := make([]T, 0, len(arr))
	result = append(result, less...)
	result = append(result, equal...)
	return append(result, more...)
}
