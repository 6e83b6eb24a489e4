/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package driver

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/sortbench/pkg/common"
	"github.com/vhive-serverless/sortbench/pkg/config"
	mc "github.com/vhive-serverless/sortbench/pkg/metric"
	"github.com/vhive-serverless/sortbench/pkg/sorting"
)

// SequenceSource produces benchmark inputs.
type SequenceSource interface {
	Generate(n int) []int
}

type DriverConfiguration struct {
	BenchmarkConfiguration *config.BenchmarkConfiguration

	Algorithms []sorting.Algorithm
	Source     SequenceSource

	// Optional. A random run id, a real clock harness and a fresh exporter
	// are used when left empty.
	RunID    string
	Harness  *Harness
	Exporter *mc.Exporter
}

type Driver struct {
	Configuration *DriverConfiguration
}

func NewDriver(driverConfig *DriverConfiguration) *Driver {
	if driverConfig.RunID == "" {
		driverConfig.RunID = uuid.NewString()
	}
	if driverConfig.Harness == nil {
		driverConfig.Harness = NewHarness()
	}
	if driverConfig.Exporter == nil {
		driverConfig.Exporter = mc.NewExporter(driverConfig.RunID)
	}

	return &Driver{
		Configuration: driverConfig,
	}
}

// Exporter holds the raw samples reported by RunBenchmark.
func (d *Driver) Exporter() *mc.Exporter {
	return d.Configuration.Exporter
}

func (d *Driver) algorithmNames() []string {
	names := make([]string, len(d.Configuration.Algorithms))
	for i, a := range d.Configuration.Algorithms {
		names[i] = a.Name
	}
	return names
}

// RunBenchmark times every algorithm on every configured input size and
// returns the averaged results. The first failing trial aborts the whole
// run with a *TrialError; no partial table is returned.
func (d *Driver) RunBenchmark() (*mc.ResultsTable, error) {
	cfg := d.Configuration.BenchmarkConfiguration

	table := mc.NewResultsTable(d.Configuration.RunID, d.algorithmNames())

	log.WithField("run", d.Configuration.RunID).Infof("Benchmarking %d algorithms on %d input sizes, %d trials each (input isolation: %s)",
		len(d.Configuration.Algorithms), len(cfg.InputSizes), cfg.Trials, cfg.InputIsolation)

	for _, size := range cfg.InputSizes {
		input := d.Configuration.Source.Generate(size)
		log.Infof("Input size %d", size)

		means := make([]float64, len(d.Configuration.Algorithms))
		for i, algorithm := range d.Configuration.Algorithms {
			samples, err := d.runTrials(algorithm, size, input)
			if err != nil {
				return nil, err
			}

			means[i] = mc.MeanMilliseconds(samples)
			log.Debugf("%s on %d elements: %.3f ms", algorithm.Name, size, means[i])
		}

		if err := table.AppendRow(size, means); err != nil {
			return nil, err
		}
	}

	log.Infof("Benchmark finished")
	return table, nil
}

func (d *Driver) runTrials(algorithm sorting.Algorithm, size int, input []int) ([]time.Duration, error) {
	cfg := d.Configuration.BenchmarkConfiguration
	samples := make([]time.Duration, 0, cfg.Trials)

	for trial := 0; trial < cfg.Trials; trial++ {
		trialInput := input
		if cfg.InputIsolation != common.IsolationShared {
			trialInput = slices.Clone(input)
		}

		elapsed, result, err := d.Configuration.Harness.TimeAlgorithm(algorithm.Sort, trialInput)
		if err == nil && cfg.VerifyOutput {
			err = verifyOutput(result, len(input))
		}
		if err != nil {
			return nil, &TrialError{Algorithm: algorithm.Name, Size: size, Trial: trial, Err: err}
		}

		samples = append(samples, elapsed)
		log.Tracef("%s size=%d trial=%d took %v", algorithm.Name, size, trial, elapsed)

		d.Configuration.Exporter.ReportSample(mc.SampleRecord{
			Size:       size,
			Algorithm:  algorithm.Name,
			Trial:      trial,
			DurationMs: common.DurationToMilliseconds(elapsed),
		})
	}

	return samples, nil
}

func verifyOutput(result []int, expectedLen int) error {
	if len(result) != expectedLen {
		return fmt.Errorf("%w: got %d elements, expected %d", ErrInvalidOutput, len(result), expectedLen)
	}
	if !slices.IsSorted(result) {
		return fmt.Errorf("%w: not in non-descending order", ErrInvalidOutput)
	}
	return nil
}
