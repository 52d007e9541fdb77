/*
 * Mida - component debug tracing
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

// Package debuglog provides mask-based component tracing in the shape of
// the teacher's util/debug: a bitmask of enabled trace categories and a
// sink. Unlike util/debug, there is no module name, and the sink is
// explicit rather than a package-global file, since a Drive has no shared
// process-wide debug target.
package debuglog

import (
	"fmt"
	"io"
)

// Category is a bit in a component's debug mask.
type Category int

const (
	Write Category = 1 << iota
	Trim
	GC
)

// Log is a mask-gated tracer bound to one output sink.
type Log struct {
	out  io.Writer
	mask Category
}

// New returns a Log writing to out, with the given categories enabled.
func New(out io.Writer, mask Category) *Log {
	return &Log{out: out, mask: mask}
}

// Enabled reports whether cat is enabled on this log.
func (l *Log) Enabled(cat Category) bool {
	return l != nil && l.mask&cat != 0
}

// Tracef writes a formatted trace line for cat if it is enabled.
func (l *Log) Tracef(cat Category, format string, args ...interface{}) {
	if !l.Enabled(cat) {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}
