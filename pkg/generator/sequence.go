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

package generator

import (
	"math/rand"
	"time"

	"github.com/vhive-serverless/sortbench/pkg/common"
)

type SequenceGenerator struct {
	valueRand *rand.Rand
	pivotRand *rand.Rand

	min, max int
}

// NewSequenceGenerator creates a generator of values in [min, max]. A zero
// seed is replaced by the current time, so runs are not reproducible.
func NewSequenceGenerator(seed int64, min, max int) *SequenceGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &SequenceGenerator{
		valueRand: rand.New(rand.NewSource(seed)),
		pivotRand: rand.New(rand.NewSource(seed)),
		min:       min,
		max:       max,
	}
}

func NewDefaultSequenceGenerator(seed int64) *SequenceGenerator {
	return NewSequenceGenerator(seed, common.DefaultMinValue, common.DefaultMaxValue)
}

// Generate returns n values drawn uniformly from [min, max]. A non-positive
// n yields an empty sequence. Not thread safe.
func (s *SequenceGenerator) Generate(n int) []int {
	if n <= 0 {
		return []int{}
	}

	arr := make([]int, n)
	for i := range arr {
		arr[i] = randIntInclusive(s.valueRand, s.min, s.max)
	}

	return arr
}

// PivotSource is the random source handed to quick sort. It is seeded like
// the value source but kept apart, so pivot draws never shift the inputs.
func (s *SequenceGenerator) PivotSource() *rand.Rand {
	return s.pivotRand
}

func randIntInclusive(gen *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}

	return gen.Intn(max-min+1) + min
}
