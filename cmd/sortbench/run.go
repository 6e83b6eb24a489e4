package main

import (
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vhive-serverless/sortbench/pkg/common"
	"github.com/vhive-serverless/sortbench/pkg/config"
	"github.com/vhive-serverless/sortbench/pkg/driver"
	"github.com/vhive-serverless/sortbench/pkg/generator"
	"github.com/vhive-serverless/sortbench/pkg/report"
	"github.com/vhive-serverless/sortbench/pkg/sorting"
)

var outputFormat string

func runBenchmark(cmd *cobra.Command, args []string) error {
	if !slices.Contains(common.ValidOutputFormats, outputFormat) {
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}

	cfg, err := config.LoadConfiguration(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	if cfg.InputIsolation == common.IsolationShared {
		log.Warnf("Input isolation is disabled. In-place algorithms sort the shared input, later trials measure sorted sequences.")
	}

	gen := generator.NewSequenceGenerator(cfg.Seed, cfg.MinValue, cfg.MaxValue)

	algorithms, err := sorting.Select(gen.PivotSource(), cfg.Algorithms)
	if err != nil {
		return err
	}

	benchmarkDriver := driver.NewDriver(&driver.DriverConfiguration{
		BenchmarkConfiguration: cfg,
		Algorithms:             algorithms,
		Source:                 gen,
	})

	table, err := benchmarkDriver.RunBenchmark()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case common.FormatCSV:
		err = benchmarkDriver.Exporter().WriteResultsCSV(out, table)
	case common.FormatSamples:
		err = benchmarkDriver.Exporter().WriteSamplesCSV(out)
	default:
		err = report.PrintTransposed(out, table)
	}
	if err != nil {
		return err
	}

	if cfg.PlotPath == "" {
		log.Debug("Plot path is empty, skipping the chart")
		return nil
	}

	return report.PlotResults(table, cfg.PlotPath, report.DefaultPlotOptions())
}
