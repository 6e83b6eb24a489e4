package metric

import (
	"errors"
	"fmt"
	"time"

	"github.com/vhive-serverless/sortbench/pkg/common"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrRowOrder = errors.New("rows must be appended in ascending input size")
	ErrRowWidth = errors.New("row width does not match the number of algorithms")
)

type ResultRow struct {
	Size int
	// Means holds one value per algorithm, in column order, in milliseconds.
	Means []float64
}

// ResultsTable maps input sizes to the mean duration of every algorithm.
type ResultsTable struct {
	RunID      string
	Algorithms []string
	Rows       []ResultRow
}

func NewResultsTable(runID string, algorithms []string) *ResultsTable {
	return &ResultsTable{
		RunID:      runID,
		Algorithms: algorithms,
		Rows:       []ResultRow{},
	}
}

func (t *ResultsTable) AppendRow(size int, means []float64) error {
	if len(means) != len(t.Algorithms) {
		return fmt.Errorf("%w: got %d, expected %d", ErrRowWidth, len(means), len(t.Algorithms))
	}
	if n := len(t.Rows); n > 0 && t.Rows[n-1].Size >= size {
		return fmt.Errorf("%w: %d after %d", ErrRowOrder, size, t.Rows[n-1].Size)
	}

	t.Rows = append(t.Rows, ResultRow{Size: size, Means: means})
	return nil
}

func (t *ResultsTable) Sizes() []int {
	sizes := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		sizes[i] = row.Size
	}
	return sizes
}

// Column returns the means of one algorithm ordered by input size.
func (t *ResultsTable) Column(algorithm string) ([]float64, bool) {
	idx := t.columnIndex(algorithm)
	if idx < 0 {
		return nil, false
	}

	column := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		column[i] = row.Means[idx]
	}
	return column, true
}

func (t *ResultsTable) Value(size int, algorithm string) (float64, bool) {
	idx := t.columnIndex(algorithm)
	if idx < 0 {
		return 0, false
	}

	for _, row := range t.Rows {
		if row.Size == size {
			return row.Means[idx], true
		}
	}
	return 0, false
}

// Records flattens the table, size major.
func (t *ResultsTable) Records() []ResultRecord {
	records := make([]ResultRecord, 0, len(t.Rows)*len(t.Algorithms))
	for _, row := range t.Rows {
		for i, algorithm := range t.Algorithms {
			records = append(records, ResultRecord{
				RunID:     t.RunID,
				Size:      row.Size,
				Algorithm: algorithm,
				MeanMs:    row.Means[i],
			})
		}
	}
	return records
}

func (t *ResultsTable) columnIndex(algorithm string) int {
	for i, a := range t.Algorithms {
		if a == algorithm {
			return i
		}
	}
	return -1
}

// MeanMilliseconds averages samples and returns the result in milliseconds
// rounded to common.ResultPrecision decimals. No samples is a zero mean.
func MeanMilliseconds(samples []time.Duration) float64 {
	if len(samples) == 0 {
		return 0
	}

	ms := make([]float64, len(samples))
	for i, s := range samples {
		ms[i] = common.DurationToMilliseconds(s)
	}

	return scalar.Round(stat.Mean(ms, nil), common.ResultPrecision)
}
