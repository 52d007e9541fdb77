/*
 * Mida - stream-assignment policies
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

// Package policy implements the two pluggable stream-assignment decisions
// a Drive consults: where a fresh host write starts, and where a page goes
// after it survives garbage collection.
package policy

import "github.com/Bro-o/Mida/ftltypes"

// Policy is the capability set a Drive is constructed with. Implementations
// must be pure with respect to simulator state: they may read addr and the
// passed-in stream, nothing else, and must return a stream id in [0, S).
type Policy interface {
	// NewStream picks the initial stream for a host write at addr, given
	// the caller-supplied hint (the stream_hint from a trace record, or 0
	// during the initial sequential fill).
	NewStream(addr ftltypes.Addr, hint ftltypes.StreamNo) ftltypes.StreamNo

	// GCStream picks the stream a page is re-written to after it survives
	// a GC copy, given the stream it held in the victim block.
	GCStream(addr ftltypes.Addr, old ftltypes.StreamNo) ftltypes.StreamNo
}

// Identity is the baseline policy: new writes go to the caller's hint
// (clamped to the configured stream count), and GC-copied pages stay on
// the stream they were already on.
type Identity struct {
	NumStreams ftltypes.StreamNo
}

// NewIdentity constructs the baseline policy for a drive with numStreams
// streams.
func NewIdentity(numStreams ftltypes.StreamNo) Identity {
	return Identity{NumStreams: numStreams}
}

func (p Identity) NewStream(_ ftltypes.Addr, hint ftltypes.StreamNo) ftltypes.StreamNo {
	return clamp(hint, p.NumStreams)
}

func (p Identity) GCStream(_ ftltypes.Addr, old ftltypes.StreamNo) ftltypes.StreamNo {
	return old
}

// MiDA starts every host write on stream 0 and promotes a page to the next
// stream each time it survives a GC copy, clamped at NumStreams-1. This
// clusters pages by how many GC cycles they have survived, exploiting
// hot/cold separation.
type MiDA struct {
	NumStreams ftltypes.StreamNo
}

// NewMiDA constructs the MiDA policy for a drive with numStreams streams.
func NewMiDA(numStreams ftltypes.StreamNo) MiDA {
	return MiDA{NumStreams: numStreams}
}

func (p MiDA) NewStream(_ ftltypes.Addr, _ ftltypes.StreamNo) ftltypes.StreamNo {
	return 0
}

func (p MiDA) GCStream(_ ftltypes.Addr, old ftltypes.StreamNo) ftltypes.StreamNo {
	return clamp(old+1, p.NumStreams)
}

func clamp(s, numStreams ftltypes.StreamNo) ftltypes.StreamNo {
	if numStreams == 0 {
		panic("policy: zero streams configured")
	}
	if s > numStreams-1 {
		return numStreams - 1
	}
	return s
}
