package sorting

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrNegativeValue is returned by BucketSort when the input holds a value
// below zero. Bucket indices are derived from value/size and would be negative.
var ErrNegativeValue = errors.New("bucket sort requires non-negative values")

type Number interface {
	constraints.Integer | constraints.Float
}

// BucketSort distributes arr over len(arr) buckets of width max(arr)/len(arr),
// insertion sorts every bucket and concatenates them. A new slice is returned.
//
// An empty input yields an empty result. When every value is zero the bucket
// width would be zero, so all values go to the first bucket instead.
func BucketSort[T Number](arr []T) ([]T, error) {
	n := len(arr)
	if n == 0 {
		return []T{}, nil
	}

	maximum := arr[0]
	for _, v := range arr {
		if v < 0 {
			return nil, ErrNegativeValue
		}
		if v > maximum {
			maximum = v
		}
	}

	buckets := make([][]T, n)

	if maximum == 0 {
		buckets[0] = append(buckets[0], arr...)
	} else {
		size := float64(maximum) / float64(n)
		for _, v := range arr {
			j := int(float64(v) / size)
			// the maximum lands exactly on index n
			if j >= n {
				j = n - 1
			}
			buckets[j] = append(buckets[j], v)
		}
	}

	final := make([]T, 0, n)
	for _, bucket := range buckets {
		final = append(final, InsertionSort(bucket)...)
	}

	return final, nil
}
