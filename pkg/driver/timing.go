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
	"time"

	"github.com/vhive-serverless/sortbench/pkg/sorting"
)

// Harness times a single algorithm invocation.
type Harness struct {
	now func() time.Time
}

// NewHarness returns a harness reading time.Now, which carries a monotonic
// clock reading.
func NewHarness() *Harness {
	return NewHarnessWithClock(time.Now)
}

func NewHarnessWithClock(now func() time.Time) *Harness {
	return &Harness{now: now}
}

// TimeAlgorithm runs sort on input and reports how long the call took along
// with what it returned. The duration is recorded even if sort failed.
func (h *Harness) TimeAlgorithm(sort sorting.SortFunc, input []int) (time.Duration, []int, error) {
	start := h.now()
	result, err := sort(input)
	end := h.now()

	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	return elapsed, result, err
}
