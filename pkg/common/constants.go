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

package common

import "time"

const (
	// DefaultTrials Number of timed executions per (algorithm, input size) pair.
	DefaultTrials = 10

	// DefaultMinValue Lower bound (inclusive) of generated input values.
	DefaultMinValue = 0
	// DefaultMaxValue Upper bound (inclusive) of generated input values.
	DefaultMaxValue = 100

	// ResultPrecision Number of decimals the averaged timings are rounded to.
	ResultPrecision = 3
)

// DefaultInputSizes Input sizes benchmarked when none are configured.
var DefaultInputSizes = []int{100, 250, 500, 750, 1000, 1250, 2500, 3750, 5000, 6250, 7500, 8750, 10000}

// DefaultAlgorithms Every registered algorithm, in table column order.
var DefaultAlgorithms = []string{AlgorithmInsertion, AlgorithmQuick, AlgorithmBucket, AlgorithmBubble, AlgorithmMerge}

// algorithm keys
const (
	AlgorithmInsertion string = "insertion"
	AlgorithmQuick     string = "quick"
	AlgorithmBucket    string = "bucket"
	AlgorithmBubble    string = "bubble"
	AlgorithmMerge     string = "merge"
)

type InputIsolation string

const (
	// IsolationCopy Every invocation receives a private clone of the generated sequence.
	IsolationCopy InputIsolation = "copy"
	// IsolationShared Every invocation receives the same slice. In-place algorithms leave it
	// sorted, so later trials observe best-case input.
	IsolationShared InputIsolation = "shared"
)

var ValidInputIsolations = []InputIsolation{IsolationCopy, IsolationShared}

// output formats
const (
	FormatTable   string = "table"
	FormatCSV     string = "csv"
	FormatSamples string = "samples"
)

var ValidOutputFormats = []string{FormatTable, FormatCSV, FormatSamples}

const (
	DefaultPlotPath = "benchmark.png"
	PlotTitle       = "Benchmark Results"
	PlotXLabel      = "Input Size"
	PlotYLabel      = "Milliseconds"
)

// DurationToMilliseconds converts a duration to fractional milliseconds.
func DurationToMilliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
