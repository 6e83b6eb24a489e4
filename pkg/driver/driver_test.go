package driver

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhive-serverless/sortbench/pkg/common"
	"github.com/vhive-serverless/sortbench/pkg/config"
	"github.com/vhive-serverless/sortbench/pkg/generator"
	"github.com/vhive-serverless/sortbench/pkg/sorting"
)

// fakeClock only moves when an algorithm advances it
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func constantTimeAlgorithm(clock *fakeClock, name string, cost time.Duration) sorting.Algorithm {
	return sorting.Algorithm{
		Key:  name,
		Name: name,
		Sort: func(arr []int) ([]int, error) {
			clock.now = clock.now.Add(cost)
			out := slices.Clone(arr)
			slices.Sort(out)
			return out, nil
		},
	}
}

func testConfiguration(sizes []int, trials int) *config.BenchmarkConfiguration {
	return &config.BenchmarkConfiguration{
		InputSizes:     sizes,
		Trials:         trials,
		MinValue:       common.DefaultMinValue,
		MaxValue:       common.DefaultMaxValue,
		Algorithms:     common.DefaultAlgorithms,
		InputIsolation: common.IsolationCopy,
		VerifyOutput:   true,
	}
}

func TestHarnessMeasuresElapsed(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	harness := NewHarnessWithClock(clock.Now)
	algorithm := constantTimeAlgorithm(clock, "stub", 3*time.Millisecond)

	elapsed, result, err := harness.TimeAlgorithm(algorithm.Sort, []int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Millisecond, elapsed)
	assert.Equal(t, []int{1, 2, 3}, result)
}

func TestHarnessClampsNegative(t *testing.T) {
	calls := 0
	harness := NewHarnessWithClock(func() time.Time {
		calls++
		// second reading is earlier than the first
		return time.Unix(0, int64(100-calls))
	})

	elapsed, _, err := harness.TimeAlgorithm(func(arr []int) ([]int, error) { return arr, nil }, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), elapsed)
}

func TestHarnessRealClock(t *testing.T) {
	elapsed, _, err := NewHarness().TimeAlgorithm(func(arr []int) ([]int, error) {
		time.Sleep(time.Millisecond)
		return arr, nil
	}, []int{1})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, time.Millisecond)
}

func TestHarnessReturnsError(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := NewHarness().TimeAlgorithm(func(arr []int) ([]int, error) { return nil, boom }, nil)
	assert.ErrorIs(t, err, boom)
}

func TestBenchmarkAggregation(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	sizes := []int{10, 50, 100}

	d := NewDriver(&DriverConfiguration{
		BenchmarkConfiguration: testConfiguration(sizes, 10),
		Algorithms: []sorting.Algorithm{
			constantTimeAlgorithm(clock, "two", 2*time.Millisecond),
			constantTimeAlgorithm(clock, "fraction", 1234567*time.Nanosecond),
		},
		Source:  generator.NewDefaultSequenceGenerator(1),
		Harness: NewHarnessWithClock(clock.Now),
		RunID:   "fixed",
	})

	table, err := d.RunBenchmark()
	require.NoError(t, err)

	assert.Equal(t, "fixed", table.RunID)
	assert.Equal(t, []string{"two", "fraction"}, table.Algorithms)
	assert.Equal(t, sizes, table.Sizes())
	for _, row := range table.Rows {
		assert.Equal(t, []float64{2, 1.235}, row.Means)
	}

	// every trial is reported
	assert.Equal(t, len(sizes)*2*10, d.Exporter().GetSampleRecordLen())
	for _, s := range d.Exporter().Samples() {
		assert.Equal(t, "fixed", s.RunID)
	}
}

func TestBenchmarkAllAlgorithms(t *testing.T) {
	gen := generator.NewDefaultSequenceGenerator(7)
	d := NewDriver(&DriverConfiguration{
		BenchmarkConfiguration: testConfiguration([]int{0, 1, 2, 100, 250}, 2),
		Algorithms:             sorting.Registry(gen.PivotSource()),
		Source:                 gen,
	})

	table, err := d.RunBenchmark()
	require.NoError(t, err)

	assert.NotEmpty(t, table.RunID)
	assert.Equal(t, []int{0, 1, 2, 100, 250}, table.Sizes())
	assert.Len(t, table.Algorithms, 5)
	for _, row := range table.Rows {
		require.Len(t, row.Means, 5)
		for _, m := range row.Means {
			assert.GreaterOrEqual(t, m, 0.0)
		}
	}
}

// spyAlgorithm sorts in place and records whether every call received
// unsorted input.
func spyAlgorithm(sortedCalls *int) sorting.Algorithm {
	return sorting.Algorithm{
		Key:     "spy",
		Name:    "spy",
		InPlace: true,
		Sort: func(arr []int) ([]int, error) {
			if slices.IsSorted(arr) {
				*sortedCalls++
			}
			return sorting.InsertionSort(arr), nil
		},
	}
}

type fixedSource struct {
	generated int
}

func (f *fixedSource) Generate(n int) []int {
	f.generated++
	arr := make([]int, n)
	for i := range arr {
		arr[i] = n - i
	}
	return arr
}

func TestInputIsolation(t *testing.T) {
	tests := []struct {
		testName    string
		isolation   common.InputIsolation
		sortedCalls int
	}{
		{
			testName:    "copy_keeps_every_trial_unsorted",
			isolation:   common.IsolationCopy,
			sortedCalls: 0,
		},
		{
			testName:  "shared_leaks_sorted_input",
			isolation: common.IsolationShared,
			// the first trial sorts the shared slice for the other four
			sortedCalls: 4,
		},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			cfg := testConfiguration([]int{20}, 5)
			cfg.InputIsolation = test.isolation

			sortedCalls := 0
			source := &fixedSource{}
			d := NewDriver(&DriverConfiguration{
				BenchmarkConfiguration: cfg,
				Algorithms:             []sorting.Algorithm{spyAlgorithm(&sortedCalls)},
				Source:                 source,
			})

			_, err := d.RunBenchmark()
			require.NoError(t, err)
			assert.Equal(t, test.sortedCalls, sortedCalls)
			assert.Equal(t, 1, source.generated, "one input per size")
		})
	}
}

func TestBenchmarkAbortsOnFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := sorting.Algorithm{
		Key:  "failing",
		Name: "Failing Sort",
		Sort: func(arr []int) ([]int, error) {
			calls++
			if len(arr) == 50 && calls > 12 {
				return nil, boom
			}
			return arr, nil
		},
	}

	cfg := testConfiguration([]int{10, 50, 100}, 10)
	cfg.VerifyOutput = false
	d := NewDriver(&DriverConfiguration{
		BenchmarkConfiguration: cfg,
		Algorithms:             []sorting.Algorithm{failing},
		Source:                 &fixedSource{},
	})

	table, err := d.RunBenchmark()
	assert.Nil(t, table)
	require.ErrorIs(t, err, boom)

	var trialErr *TrialError
	require.True(t, errors.As(err, &trialErr))
	assert.Equal(t, "Failing Sort", trialErr.Algorithm)
	assert.Equal(t, 50, trialErr.Size)
	assert.Equal(t, 2, trialErr.Trial)
	assert.Contains(t, err.Error(), "Failing Sort failed on input size 50 (trial 2)")
}

func TestBenchmarkBucketPrecondition(t *testing.T) {
	negative := &negativeSource{}
	d := NewDriver(&DriverConfiguration{
		BenchmarkConfiguration: testConfiguration([]int{5}, 1),
		Algorithms:             sorting.Registry(rand.New(rand.NewSource(1))),
		Source:                 negative,
	})

	_, err := d.RunBenchmark()
	require.ErrorIs(t, err, sorting.ErrNegativeValue)

	var trialErr *TrialError
	require.True(t, errors.As(err, &trialErr))
	assert.Equal(t, "Bucket Sort", trialErr.Algorithm)
	assert.Equal(t, 0, trialErr.Trial)
}

type negativeSource struct{}

func (negativeSource) Generate(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = -i
	}
	return arr
}

func TestVerifyOutput(t *testing.T) {
	broken := sorting.Algorithm{
		Key:  "broken",
		Name: "Broken Sort",
		Sort: func(arr []int) ([]int, error) { return arr[:len(arr)/2], nil },
	}

	d := NewDriver(&DriverConfiguration{
		BenchmarkConfiguration: testConfiguration([]int{8}, 1),
		Algorithms:             []sorting.Algorithm{broken},
		Source:                 &fixedSource{},
	})

	_, err := d.RunBenchmark()
	assert.ErrorIs(t, err, ErrInvalidOutput)

	assert.NoError(t, verifyOutput([]int{1, 1, 2}, 3))
	assert.ErrorIs(t, verifyOutput([]int{2, 1}, 2), ErrInvalidOutput)
	assert.ErrorIs(t, verifyOutput([]int{1}, 2), ErrInvalidOutput)
}
