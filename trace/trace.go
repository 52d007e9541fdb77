/*
 * Mida - trace record interface
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

// Package trace defines the boundary between the FTL core and whatever
// produces a sequence of trace lines. Parsing a trace file, and every other
// concern about where records come from, is deliberately kept out of this
// package and out of the ftl package: the core only pulls Records from an
// Iterator.
package trace

import "github.com/Bro-o/Mida/ftltypes"

// Record is one trace line: a run of length logical addresses starting at
// Addr, either all trimmed (IsTrim) or all written with the given stream
// hint.
type Record struct {
	Addr   ftltypes.Addr
	Length ftltypes.Count
	Stream ftltypes.StreamNo
	IsTrim bool
}

// Iterator is a pull source of trace Records, consumed to exhaustion by
// ftl.Drive.Run.
type Iterator interface {
	// Next returns the next record and true, or a zero Record and false
	// when the source is exhausted.
	Next() (Record, bool)
}

// Lengther is an optional capability an Iterator may implement to report
// the total operation count it was constructed from, purely for progress
// display; the core never relies on it for correctness.
type Lengther interface {
	Length() ftltypes.Count
}
