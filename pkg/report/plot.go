package report

import (
	"errors"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/vhive-serverless/sortbench/pkg/common"
	mc "github.com/vhive-serverless/sortbench/pkg/metric"
)

var ErrEmptyTable = errors.New("results table has no rows")

type PlotOptions struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Title:  common.PlotTitle,
		Width:  8 * vg.Inch,
		Height: 5 * vg.Inch,
	}
}

// NewLinePlot draws one line per algorithm, input size against milliseconds.
func NewLinePlot(table *mc.ResultsTable, opts PlotOptions) (*plot.Plot, error) {
	if len(table.Rows) == 0 {
		return nil, ErrEmptyTable
	}

	p := plot.New()

	p.Title.Text = opts.Title
	p.X.Label.Text = common.PlotXLabel
	p.Y.Label.Text = common.PlotYLabel
	p.Y.Min = 0
	p.Legend.Top = true
	p.Legend.Left = true

	var lines []interface{}
	for _, algorithm := range table.Algorithms {
		lines = append(lines, algorithm, getXY(table, algorithm))
	}

	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, err
	}

	return p, nil
}

// PlotResults renders the table and saves it to path. The image format
// follows the file extension.
func PlotResults(table *mc.ResultsTable, path string, opts PlotOptions) error {
	p, err := NewLinePlot(table, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			log.Info("Creating the output directory")
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return err
			}
		}
	}

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return err
	}

	log.Infof("Benchmark chart written to %s", path)
	return nil
}

func getXY(table *mc.ResultsTable, algorithm string) plotter.XYs {
	column, _ := table.Column(algorithm)

	pts := make(plotter.XYs, len(table.Rows))
	for i := range pts {
		pts[i].X = float64(table.Rows[i].Size)
		pts[i].Y = column[i]
	}
	return pts
}
