/*
 * Mida - flash translation layer core test cases
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
	"io"
	"testing"

	"github.com/Bro-o/Mida/ftl/policy"
	"github.com/Bro-o/Mida/ftltypes"
	"github.com/Bro-o/Mida/trace"
)

// sliceIterator is a trace.Iterator over a fixed list of records, for
// feeding Drive.Run a scripted workload in tests.
type sliceIterator struct {
	recs []trace.Record
	pos  int
}

func (it *sliceIterator) Next() (trace.Record, bool) {
	if it.pos >= len(it.recs) {
		return trace.Record{}, false
	}
	r := it.recs[it.pos]
	it.pos++
	return r, true
}

func TestDriveConstructionResetsStats(t *testing.T) {
	d := New(128, 100.0, 1, policy.NewIdentity(1), WithOutput(io.Discard))

	c := d.Counters()
	if c.Writes != 0 || c.PagesCopied != 0 || c.WAF != 0 {
		t.Errorf("post-construction counters = %+v, want writes=0 pagescopied=0 waf=0", c)
	}
	if ftltypes.BlockNo(d.EmptyBlocks()) < d.GCThreshold() {
		t.Errorf("empty blocks %d below threshold %d after construction", d.EmptyBlocks(), d.GCThreshold())
	}
}

// TestDriveS6OutOfRangeWrites implements scenario S6: a write record whose
// range spills past L is truncated at L, and only the in-range addresses
// count as writes.
func TestDriveS6OutOfRangeWrites(t *testing.T) {
	d := New(100, 300.0, 1, policy.NewIdentity(1), WithOutput(io.Discard))

	it := &sliceIterator{recs: []trace.Record{
		{Addr: 95, Length: 10, Stream: 0, IsTrim: false},
	}}
	d.Run(it)

	if got := d.Counters().Writes; got != 5 {
		t.Errorf("Writes = %d, want 5 (addresses 95..99 only)", got)
	}
}

// TestDriveS5TrimRecord implements scenario S5: a trim-only record clears
// every mapped page in its range and advances the trim counter once per
// logical address, leaving write-side counters untouched.
func TestDriveS5TrimRecord(t *testing.T) {
	d := New(128, 300.0, 1, policy.NewIdentity(1), WithOutput(io.Discard))

	before := len(d.StreamSamples(0))

	it := &sliceIterator{recs: []trace.Record{
		{Addr: 5, Length: 3, IsTrim: true},
	}}
	d.Run(it)

	c := d.Counters()
	if c.Trims != 3 {
		t.Errorf("Trims = %d, want 3", c.Trims)
	}
	if c.Writes != 0 {
		t.Errorf("Writes = %d, want 0 for a trim-only record", c.Writes)
	}
	for _, addr := range []ftltypes.Addr{5, 6, 7} {
		if d.Page(addr).Mapped() {
			t.Errorf("page %d should be unmapped after trim", addr)
		}
	}
	if got := len(d.StreamSamples(0)); got != before+3 {
		t.Errorf("stream sample count = %d, want %d", got, before+3)
	}
}

// TestDriveForcedGCWithResidualValidPages implements scenario S3: GC
// selects a block with residual valid pages and copies exactly that many.
func TestDriveForcedGCWithResidualValidPages(t *testing.T) {
	d := New(128, 100.0, 1, policy.NewIdentity(1), WithOutput(io.Discard))

	it := &sliceIterator{recs: []trace.Record{
		{Addr: 0, Length: 100, IsTrim: true},
		{Addr: 100, Length: 1, Stream: 0, IsTrim: false},
	}}
	d.Run(it)

	c := d.Counters()
	if c.Writes != 1 {
		t.Errorf("Writes = %d, want 1", c.Writes)
	}
	if c.Trims != 100 {
		t.Errorf("Trims = %d, want 100", c.Trims)
	}
	if c.PagesCopied != 27 {
		t.Errorf("PagesCopied = %d, want 27 (block 0's residual valid pages)", c.PagesCopied)
	}
	if got := c.WAF; got != 28.0 {
		t.Errorf("WAF = %v, want 28.0", got)
	}
	if !d.Block(0).Empty() {
		t.Errorf("victim block 0 should be empty and recycled after GC")
	}
	for addr := ftltypes.Addr(101); addr <= 127; addr++ {
		p := d.Page(addr)
		if !p.Mapped() {
			t.Fatalf("addr %d should still be mapped after GC copy", addr)
		}
		if p.Block() == 0 {
			t.Errorf("addr %d was not moved off the recycled victim block", addr)
		}
	}
}

// TestDriveMiDAPromotion implements scenario S4: a page promoted once per
// GC survival ends at stream S-1 and stays clamped there.
func TestDriveMiDAPromotion(t *testing.T) {
	blockA := newBlock(0)
	blockB := newBlock(1)
	blockA.writing = true
	blockA.write(0)
	blockA.writing = false // close block A off, as though it filled up

	d := &Drive{
		lbaSize:         10,
		numberOfBlocks:  2,
		numberOfStreams: 4,
		policy:          policy.NewMiDA(4),
		blocks:          []*Block{blockA, blockB},
		cursors:         make([]*Block, 4),
		stats:           make([]StreamStats, 4),
		pages:           make([]Page, 10),
		empty:           []*Block{blockB},
	}
	d.pages[0].Write(0, 0, 0)

	wantStream := []ftltypes.StreamNo{1, 2, 3, 3}
	for i, want := range wantStream {
		d.collectGarbage()
		if got := d.pages[0].Stream(); got != want {
			t.Fatalf("round %d: stream = %d, want %d", i+1, got, want)
		}
		// Close off whichever block now holds the page, so the next round
		// selects it as the victim.
		holder := d.blocks[d.pages[0].Block()]
		holder.writing = false
	}
}

func TestDriveTrimIsIdempotent(t *testing.T) {
	d := New(128, 300.0, 1, policy.NewIdentity(1), WithOutput(io.Discard))

	d.trim(0)
	samples := len(d.StreamSamples(0))
	d.trim(0)
	if got := len(d.StreamSamples(0)); got != samples {
		t.Errorf("second trim of an already-unmapped page added a sample: %d -> %d", samples, got)
	}
}

func TestDriveResetStatIsIdempotent(t *testing.T) {
	d := New(128, 300.0, 1, policy.NewIdentity(1), WithOutput(io.Discard))
	d.ResetStat()
	c1 := d.Counters()
	d.ResetStat()
	c2 := d.Counters()
	if c1 != c2 {
		t.Errorf("ResetStat is not idempotent: %+v then %+v", c1, c2)
	}
}
