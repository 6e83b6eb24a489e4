package sorting

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vhive-serverless/sortbench/pkg/common"
)

var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// SortFunc takes a sequence and yields it sorted. Callers must use the
// returned slice; whether the argument is modified depends on the algorithm.
type SortFunc func(arr []int) ([]int, error)

type Algorithm struct {
	// Key identifies the algorithm in configuration files.
	Key string
	// Name is the column header in results.
	Name string
	// InPlace is set for algorithms that sort their argument.
	InPlace bool

	Sort SortFunc
}

// Registry returns the five benchmarked algorithms in column order. rng
// drives the quick sort pivot choice.
func Registry(rng *rand.Rand) []Algorithm {
	return []Algorithm{
		{
			Key:     common.AlgorithmInsertion,
			Name:    "Insertion Sort",
			InPlace: true,
			Sort:    infallible(InsertionSort[int]),
		},
		{
			Key:  common.AlgorithmQuick,
			Name: "Quick Sort",
			Sort: func(arr []int) ([]int, error) {
				return QuickSort(rng, arr), nil
			},
		},
		{
			Key:  common.AlgorithmBucket,
			Name: "Bucket Sort",
			Sort: BucketSort[int],
		},
		{
			Key:     common.AlgorithmBubble,
			Name:    "Bubble Sort",
			InPlace: true,
			Sort:    infallible(BubbleSort[int]),
		},
		{
			Key:  common.AlgorithmMerge,
			Name: "Merge Sort",
			Sort: infallible(MergeSort[int]),
		},
	}
}

// Select picks the algorithms named by keys out of the registry, in the
// order the keys are given.
func Select(rng *rand.Rand, keys []string) ([]Algorithm, error) {
	byKey := make(map[string]Algorithm)
	for _, a := range Registry(rng) {
		byKey[a.Key] = a
	}

	selected := make([]Algorithm, 0, len(keys))
	seen := make(map[string]bool)
	for _, key := range keys {
		a, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
		}
		if seen[key] {
			return nil, fmt.Errorf("algorithm %q selected more than once", key)
		}
		seen[key] = true
		selected = append(selected, a)
	}

	return selected, nil
}

func infallible(sort func([]int) []int) SortFunc {
	return func(arr []int) ([]int, error) {
		return sort(arr), nil
	}
}
