package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mc "github.com/vhive-serverless/sortbench/pkg/metric"
)

func sampleTable(t *testing.T) *mc.ResultsTable {
	table := mc.NewResultsTable("run", []string{"Insertion Sort", "Merge Sort"})
	require.NoError(t, table.AppendRow(100, []float64{0.5, 0.125}))
	require.NoError(t, table.AppendRow(1000, []float64{42.25, 1.5}))
	return table
}

func TestPrintTransposed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTransposed(&buf, sampleTable(t)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, []string{"Size", "100", "1000"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Insertion", "Sort", "0.500", "42.250"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Merge", "Sort", "0.125", "1.500"}, strings.Fields(lines[2]))
}

func TestNewLinePlot(t *testing.T) {
	p, err := NewLinePlot(sampleTable(t), DefaultPlotOptions())
	require.NoError(t, err)

	assert.Equal(t, "Benchmark Results", p.Title.Text)
	assert.Equal(t, "Input Size", p.X.Label.Text)
	assert.Equal(t, "Milliseconds", p.Y.Label.Text)
}

func TestNewLinePlotEmpty(t *testing.T) {
	_, err := NewLinePlot(mc.NewResultsTable("run", []string{"A"}), DefaultPlotOptions())
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestPlotResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figs", "benchmark.png")

	require.NoError(t, PlotResults(sampleTable(t), path, DefaultPlotOptions()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGetXY(t *testing.T) {
	pts := getXY(sampleTable(t), "Merge Sort")

	require.Len(t, pts, 2)
	assert.Equal(t, 100.0, pts[0].X)
	assert.Equal(t, 0.125, pts[0].Y)
	assert.Equal(t, 1000.0, pts[1].X)
	assert.Equal(t, 1.5, pts[1].Y)
}
