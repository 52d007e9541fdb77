/*
 * Mida - flash translation layer core
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

// Package ftl implements the trace-driven flash translation layer core:
// logical-to-physical page mapping, per-stream write cursors, block-level
// garbage collection, and the write-amplification / lifetime statistics
// those produce. Trace-file parsing, the command-line driver, and result
// printing are external collaborators; ftl only consumes a trace.Iterator
// and exposes counters.
package ftl

import (
	"io"

	"github.com/Bro-o/Mida/ftltypes"
	"github.com/Bro-o/Mida/ftl/policy"
	"github.com/Bro-o/Mida/internal/debuglog"
	"github.com/Bro-o/Mida/internal/runlog"
	"github.com/Bro-o/Mida/trace"
)

// Drive owns every piece of simulator state: the page vector, the block
// vector, the per-stream cursor table, the empty-block free list, and the
// per-stream lifetime statistics. Blocks and pages are sized once at
// construction and never resized.
type Drive struct {
	lbaSize         ftltypes.Addr
	numberOfPages   ftltypes.PageNo
	numberOfBlocks  ftltypes.BlockNo
	numberOfStreams ftltypes.StreamNo
	gcThreshold     ftltypes.BlockNo

	vtimeTotal  ftltypes.VTime
	vtime       ftltypes.VTime
	pagesCopied ftltypes.Count
	writes      ftltypes.Count
	trims       ftltypes.Count

	pages   []Page
	blocks  []*Block
	cursors []*Block
	empty   []*Block

	stats []StreamStats

	policy policy.Policy

	bannerOut   io.Writer
	warnOut     io.Writer
	progressOut io.Writer
	verbose     bool
	debug       *debuglog.Log
}

// Option configures optional Drive behavior at construction time.
type Option func(*Drive)

// WithOutput directs the construction banner and configuration warnings to
// w (defaults to io.Discard, i.e. silent).
func WithOutput(w io.Writer) Option {
	return func(d *Drive) { d.bannerOut = w; d.warnOut = w }
}

// WithVerbose enables the every-100,000-tick progress line, written to w.
func WithVerbose(w io.Writer) Option {
	return func(d *Drive) { d.verbose = true; d.progressOut = w }
}

// WithDebugLog attaches a mask-gated tracer for write/trim/GC events.
func WithDebugLog(l *debuglog.Log) Option {
	return func(d *Drive) { d.debug = l }
}

// New constructs a Drive for a logical address space of size lbaSize, the
// given over-provisioning percent, numStreams streams, and pol as the
// stream-assignment policy. It performs the initial sequential fill
// described in spec.md §4.4 before returning.
func New(lbaSize ftltypes.Addr, ops float64, numStreams ftltypes.StreamNo, pol policy.Policy, opts ...Option) *Drive {
	d := &Drive{
		lbaSize:         lbaSize,
		numberOfStreams: numStreams,
		policy:          pol,
		bannerOut:       io.Discard,
		warnOut:         io.Discard,
		progressOut:     io.Discard,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.numberOfPages = ftltypes.PageNo(float64(lbaSize)*(1+ops/100.0)) + 1
	d.numberOfBlocks = ftltypes.BlockNo(d.numberOfPages) / PPB
	gcThreshold := ftltypes.BlockNo(0.05 * float64(d.numberOfBlocks))
	if ftltypes.BlockNo(numStreams) > gcThreshold {
		gcThreshold = ftltypes.BlockNo(numStreams)
	}
	d.gcThreshold = gcThreshold

	minBlocks := ftltypes.BlockNo((uint64(lbaSize) + PPB - 1) / PPB)
	if d.numberOfBlocks < minBlocks+d.gcThreshold {
		runlog.Warn(d.warnOut, "over-provisioning too small for the requested stream count")
	}

	d.blocks = make([]*Block, d.numberOfBlocks)
	for i := range d.blocks {
		d.blocks[i] = newBlock(ftltypes.BlockNo(i))
		d.empty = append(d.empty, d.blocks[i])
	}

	d.pages = make([]Page, lbaSize)
	d.cursors = make([]*Block, numStreams)
	d.stats = make([]StreamStats, numStreams)

	runlog.Banner(d.bannerOut, d.lbaSize, d.numberOfPages, d.numberOfStreams)

	d.writeAllSequential()

	return d
}

// LBASize returns the configured logical address space size, L.
func (d *Drive) LBASize() ftltypes.Addr { return d.lbaSize }

// NumberOfPages returns the physical page count, P.
func (d *Drive) NumberOfPages() ftltypes.PageNo { return d.numberOfPages }

// NumberOfBlocks returns the physical block count, B.
func (d *Drive) NumberOfBlocks() ftltypes.BlockNo { return d.numberOfBlocks }

// GCThreshold returns the empty-block reserve threshold, T.
func (d *Drive) GCThreshold() ftltypes.BlockNo { return d.gcThreshold }

// EmptyBlocks returns the current size of the empty-block free list.
func (d *Drive) EmptyBlocks() int { return len(d.empty) }

// Block returns the block with the given id, for test and reporting
// introspection.
func (d *Drive) Block(id ftltypes.BlockNo) *Block { return d.blocks[id] }

// Page returns the page entry at addr, for test and reporting
// introspection.
func (d *Drive) Page(addr ftltypes.Addr) *Page { return &d.pages[addr] }

// writeAllSequential performs the initial sequential fill: every logical
// address is written once, under the policy's own choice of initial
// stream, then statistics are reset so the measured workload excludes the
// fill.
func (d *Drive) writeAllSequential() {
	for addr := ftltypes.Addr(0); addr < d.lbaSize; addr++ {
		d.vtimeTotal++
		d.vtime++
		d.write(addr, d.policy.NewStream(addr, 0))
	}
	d.ResetStat()
}

// Run consumes it to exhaustion, applying each record's trim/write to
// every logical address it covers.
func (d *Drive) Run(it trace.Iterator) {
	var traceLength ftltypes.Count
	if l, ok := it.(trace.Lengther); ok {
		traceLength = l.Length()
	}

	for {
		rec, ok := it.Next()
		if !ok {
			return
		}

		fin := rec.Addr + ftltypes.Addr(rec.Length)
		for addr := rec.Addr; addr < d.lbaSize && addr < fin; addr++ {
			d.vtimeTotal++
			d.vtime++

			d.trim(addr)

			if !rec.IsTrim {
				d.write(addr, d.policy.NewStream(addr, rec.Stream))
			} else {
				d.trims++
			}

			if d.verbose && d.vtime%100000 == 0 {
				runlog.Progress(d.progressOut, d.vtime, traceLength, d.WAF())
			}
		}
	}
}

// trim clears the mapping at addr, if any, reclaiming the block slot and
// recording a lifetime sample.
func (d *Drive) trim(addr ftltypes.Addr) {
	if addr >= d.lbaSize {
		return
	}

	p := &d.pages[addr]
	if !p.Mapped() {
		return
	}

	blk := d.blocks[p.Block()]
	stream := p.Stream()
	writtenTime := p.WrittenTime()

	blk.trim(addr)
	if blk.Empty() && !blk.Writing() {
		d.empty = append(d.empty, blk)
	}

	d.stats[stream].addSample(d.vtimeTotal, writtenTime)
	p.Trim()

	d.debug.Tracef(debuglog.Trim, "trim addr=%d block=%d stream=%d", addr, blk.ID(), stream)
}

// write accepts a host write at addr for stream, binding or rebinding the
// stream's cursor as needed, then tops up the empty-block reserve via GC.
func (d *Drive) write(addr ftltypes.Addr, stream ftltypes.StreamNo) {
	if addr >= d.lbaSize {
		return
	}

	d.writes++

	cursor := d.bindCursor(stream)
	cursor.write(addr)
	d.pages[addr].Write(cursor.ID(), stream, d.vtimeTotal)

	d.debug.Tracef(debuglog.Write, "write addr=%d block=%d stream=%d", addr, cursor.ID(), stream)

	for ftltypes.BlockNo(len(d.empty)) < d.gcThreshold {
		d.collectGarbage()
	}
}

// bindCursor returns the writable cursor block for stream, popping a fresh
// empty block and binding it if the current cursor is absent or full.
func (d *Drive) bindCursor(stream ftltypes.StreamNo) *Block {
	cursor := d.cursors[stream]
	if cursor == nil || !cursor.Writable() {
		cursor = d.newCursor()
		d.cursors[stream] = cursor
	}
	return cursor
}

// newCursor pops the head of the empty-block queue and marks it writing.
func (d *Drive) newCursor() *Block {
	if len(d.empty) == 0 {
		panic("ftl: no empty blocks available for a new cursor; device is full")
	}
	blk := d.empty[0]
	d.empty = d.empty[1:]
	if blk.valid != 0 || blk.invalid != 0 || blk.writing {
		panic("ftl: empty-queue invariant violated, block not actually empty")
	}
	blk.writing = true
	return blk
}

// getVictim scans the block vector for the non-writing, non-empty block
// with the lowest valid count, breaking ties by lowest block id.
func (d *Drive) getVictim() *Block {
	var victim *Block
	minValid := PPB + 1
	for _, blk := range d.blocks {
		if blk.writing || blk.Empty() {
			continue
		}
		if blk.valid < minValid {
			minValid = blk.valid
			victim = blk
		}
	}
	if victim == nil {
		panic("ftl: get_victim found no candidate block")
	}
	return victim
}

// collectGarbage copies every live page out of one victim block into its
// (possibly new) stream cursor, then recycles the victim.
func (d *Drive) collectGarbage() {
	victim := d.getVictim()

	d.pagesCopied += ftltypes.Count(victim.valid)
	victim.gcCount++

	addrs := victim.snapshotAddrs()
	for _, addr := range addrs {
		old := d.pages[addr].Stream()
		d.movePage(addr, d.policy.GCStream(addr, old))
	}

	d.debug.Tracef(debuglog.GC, "gc victim=%d copied=%d", victim.ID(), len(addrs))

	victim.clear()
	d.empty = append(d.empty, victim)
}

// movePage re-homes addr onto stream's cursor, preserving the page's
// original write-time anchor.
func (d *Drive) movePage(addr ftltypes.Addr, stream ftltypes.StreamNo) {
	cursor := d.bindCursor(stream)
	cursor.write(addr)
	d.pages[addr].Move(cursor.ID(), stream)
}

// Counters is the snapshot of accumulated run statistics.
type Counters struct {
	VTime       ftltypes.VTime
	Writes      ftltypes.Count
	Trims       ftltypes.Count
	PagesCopied ftltypes.Count
	WAF         float64
}

// Counters returns the current accumulated statistics.
func (d *Drive) Counters() Counters {
	return Counters{
		VTime:       d.vtime,
		Writes:      d.writes,
		Trims:       d.trims,
		PagesCopied: d.pagesCopied,
		WAF:         d.WAF(),
	}
}

// WAF returns the write amplification factor: 0 with no writes yet,
// otherwise pagesCopied/writes + 1.
func (d *Drive) WAF() float64 {
	if d.writes == 0 {
		return 0
	}
	return float64(d.pagesCopied)/float64(d.writes) + 1.0
}

// StreamSummaries returns the mean/stdev lifetime summary of every stream,
// indexed by stream id; a stream with no samples has the zero Summary.
func (d *Drive) StreamSummaries() []Summary {
	out := make([]Summary, len(d.stats))
	for i := range d.stats {
		out[i] = d.stats[i].Summary()
	}
	return out
}

// StreamSamples returns the raw lifetime samples for stream, for tests.
func (d *Drive) StreamSamples(stream ftltypes.StreamNo) []ftltypes.VTime {
	return d.stats[stream].Samples()
}

// ResetStat zeroes vtime, pagesCopied, and writes, and clears every
// stream's lifetime sample list in place. vtimeTotal, trims, each block's
// gc_count, and the page/block mapping state are left untouched.
func (d *Drive) ResetStat() {
	d.vtime = 0
	d.pagesCopied = 0
	d.writes = 0
	for i := range d.stats {
		d.stats[i].reset()
	}
}
