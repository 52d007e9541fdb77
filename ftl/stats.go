/*
 * Mida - per-stream lifetime statistics
 *
 * Copyright 2025, Mida Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package ftl

import (
	"math"

	"github.com/Bro-o/Mida/ftltypes"
)

// StreamStats accumulates page-lifetime samples for a single stream: the
// elapsed virtual time between a page's write and its eventual trim.
type StreamStats struct {
	list []ftltypes.VTime
}

// addSample appends one lifetime observation. vtime must be >= writtenTime.
func (s *StreamStats) addSample(vtime, writtenTime ftltypes.VTime) {
	if writtenTime > vtime {
		panic("ftl: lifetime sample with writtenTime after vtime")
	}
	s.list = append(s.list, vtime-writtenTime)
}

// reset clears the accumulated samples in place.
func (s *StreamStats) reset() {
	s.list = s.list[:0]
}

// Samples returns the raw lifetime samples collected so far.
func (s *StreamStats) Samples() []ftltypes.VTime {
	return s.list
}

// Summary is the mean/population-stdev summary the original reporter
// prints, truncated to integers as the source does.
type Summary struct {
	Count  int
	Mean   int
	StdDev int
}

// Summary computes the mean and population standard deviation of the
// collected samples. The zero Summary (all fields zero) is returned when no
// samples have been collected.
func (s *StreamStats) Summary() Summary {
	n := len(s.list)
	if n == 0 {
		return Summary{}
	}

	var sum, sqSum float64
	for _, v := range s.list {
		f := float64(v)
		sum += f
		sqSum += f * f
	}
	mean := sum / float64(n)
	variance := sqSum/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return Summary{
		Count:  n,
		Mean:   int(mean),
		StdDev: int(math.Sqrt(variance)),
	}
}
