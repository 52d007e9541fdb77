/*
 * Mida - run-level logging helpers
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

package runlog

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Bro-o/Mida/ftltypes"
)

// Conversion constants lifted from the original simulator: pages per GB and
// pages per GiB, given an implicit 4096-byte page.
const (
	pagesPerGB  = 244140.62
	pagesPerGiB = 262144.0
)

// New builds a *slog.Logger writing through Handler to sink, for
// operational logging (config loads) that
// isn't part of the original simulator's fixed-format console output.
func New(sink io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(sink, level))
}

// Banner prints the device-sizing report a Drive emits once at
// construction: logical/physical size in GB and GiB, actual OPS percent,
// and stream count.
func Banner(w io.Writer, lbaSize ftltypes.Addr, numPages ftltypes.PageNo, numStreams ftltypes.StreamNo) {
	l := float64(lbaSize)
	p := float64(numPages)

	fmt.Fprintf(w, "logical device size: %.4fGB (%.4fGiB)\n", l/pagesPerGB, l/pagesPerGiB)
	fmt.Fprintf(w, "physical device size: %.4fGB (%.4fGiB)\n", p/pagesPerGB, p/pagesPerGiB)
	ops := 0.0
	if l > 0 {
		ops = (p - l) * 100.0 / l
	}
	fmt.Fprintf(w, "OPS: %.4f%%\n", ops)
	fmt.Fprintf(w, "number of streams: %d\n", numStreams)
}

// Warn prints a configuration warning in the shape the original emits for
// an undersized over-provisioning ratio.
func Warn(w io.Writer, msg string) {
	fmt.Fprintf(w, "Warning: %s\n", msg)
}

// Progress writes the verbose every-100,000-tick status line: current
// virtual time, trace length, and running WAF. Ends in a carriage return so
// repeated calls overwrite the same terminal line, matching the original.
func Progress(w io.Writer, vtime ftltypes.VTime, traceLength ftltypes.Count, waf float64) {
	fmt.Fprintf(w, "%d / %d: %.4f          \r", vtime, traceLength, waf)
}
