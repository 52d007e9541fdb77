/*
 * Mida - text trace file parser
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

// Package tracefile parses the text trace format of spec.md §6 into a
// trace.Iterator. This is deliberately kept outside the ftl package: trace
// parsing is an external collaborator, never imported by the core.
//
// Format: the first two whitespace-separated tokens are the trace length
// (operation count) and the max LBA referenced. Every record after that is
// a triple <addr> <length> <stream>, where a negative stream marks a trim.
package tracefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Bro-o/Mida/ftltypes"
	"github.com/Bro-o/Mida/trace"
)

// Trace is a file-backed trace.Iterator.
type Trace struct {
	file    *os.File
	scanner *bufio.Scanner
	length  ftltypes.Count
	maxLBA  ftltypes.Addr
}

// Open reads the header line of path and returns a Trace positioned at the
// first record.
func Open(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tracefile: open %s: %w", path, err)
	}

	t := &Trace{file: f, scanner: bufio.NewScanner(f)}
	t.scanner.Split(bufio.ScanWords)

	length, err := t.nextUint()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("tracefile: %s: reading trace length: %w", path, err)
	}
	maxLBA, err := t.nextUint()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("tracefile: %s: reading max lba: %w", path, err)
	}

	t.length = ftltypes.Count(length)
	t.maxLBA = ftltypes.Addr(maxLBA)
	return t, nil
}

// Length returns the trace length declared in the header line.
func (t *Trace) Length() ftltypes.Count { return t.length }

// MaxLBA returns the maximum LBA declared in the header line.
func (t *Trace) MaxLBA() ftltypes.Addr { return t.maxLBA }

// Close releases the underlying file.
func (t *Trace) Close() error { return t.file.Close() }

// Next implements trace.Iterator, returning one record per call until EOF.
func (t *Trace) Next() (trace.Record, bool) {
	addr, err := t.nextUint()
	if err != nil {
		return trace.Record{}, false
	}
	length, err := t.nextUint()
	if err != nil {
		return trace.Record{}, false
	}
	stream, err := t.nextInt()
	if err != nil {
		return trace.Record{}, false
	}

	rec := trace.Record{
		Addr:   ftltypes.Addr(addr),
		Length: ftltypes.Count(length),
		IsTrim: stream < 0,
	}
	if !rec.IsTrim {
		rec.Stream = ftltypes.StreamNo(stream)
	}
	return rec, true
}

var errNoToken = errors.New("tracefile: unexpected end of trace")

func (t *Trace) nextToken() (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", errNoToken
	}
	return t.scanner.Text(), nil
}

func (t *Trace) nextUint() (uint64, error) {
	tok, err := t.nextToken()
	if err != nil {
		return 0, err
	}
	var v uint64
	_, err = fmt.Sscanf(tok, "%d", &v)
	if err != nil {
		return 0, fmt.Errorf("tracefile: %q is not a number: %w", tok, err)
	}
	return v, nil
}

func (t *Trace) nextInt() (int64, error) {
	tok, err := t.nextToken()
	if err != nil {
		return 0, err
	}
	var v int64
	_, err = fmt.Sscanf(tok, "%d", &v)
	if err != nil {
		return 0, fmt.Errorf("tracefile: %q is not a number: %w", tok, err)
	}
	return v, nil
}

var (
	_ io.Closer      = (*Trace)(nil)
	_ trace.Iterator = (*Trace)(nil)
	_ trace.Lengther = (*Trace)(nil)
)
