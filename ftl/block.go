/*
 * Mida - physical block
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
	"slices"

	"github.com/Bro-o/Mida/ftltypes"
)

// PPB is the fixed number of pages per block.
const PPB = 128

// Block is the physical erase unit: a fixed-capacity container of pages
// tracked by validity counts and a membership set, reused across erase
// cycles.
type Block struct {
	id      ftltypes.BlockNo
	valid   int
	invalid int
	writing bool
	addrs   map[ftltypes.Addr]struct{}
	gcCount ftltypes.Count
}

// newBlock constructs an empty block with the given id.
func newBlock(id ftltypes.BlockNo) *Block {
	return &Block{id: id, addrs: make(map[ftltypes.Addr]struct{})}
}

// ID returns the block's fixed index.
func (b *Block) ID() ftltypes.BlockNo { return b.id }

// Valid returns the number of live pages currently stored.
func (b *Block) Valid() int { return b.valid }

// Invalid returns the number of stale (trimmed-but-not-erased) page slots.
func (b *Block) Invalid() int { return b.invalid }

// Writing reports whether the block is bound as some stream's cursor.
func (b *Block) Writing() bool { return b.writing }

// GCCount returns how many times this block has been selected as a GC victim.
func (b *Block) GCCount() ftltypes.Count { return b.gcCount }

// Empty reports whether the block holds no live pages.
func (b *Block) Empty() bool { return b.valid == 0 }

// Writable reports whether the block can currently accept a page.
func (b *Block) Writable() bool { return b.writing && b.valid+b.invalid < PPB }

// write records addr as a newly valid page. Pre-condition: Writable().
func (b *Block) write(addr ftltypes.Addr) {
	if !b.Writable() {
		panic("ftl: write to non-writable block")
	}
	b.valid++
	b.addrs[addr] = struct{}{}
	if !b.Writable() {
		b.writing = false
	}
}

// trim invalidates addr. If the block becomes fully empty it also resets
// invalid to zero, since an empty block can be recycled without further
// erase bookkeeping.
func (b *Block) trim(addr ftltypes.Addr) {
	if b.valid == 0 {
		panic("ftl: trim underflow on block with valid=0")
	}
	b.valid--
	if b.valid == 0 {
		b.invalid = 0
	} else {
		b.invalid++
		if b.valid+b.invalid > PPB {
			panic("ftl: block invariant violated, valid+invalid > PPB")
		}
	}
	delete(b.addrs, addr)
}

// clear resets the block to its post-erase state, called after GC copies
// out every live page.
func (b *Block) clear() {
	b.valid = 0
	b.invalid = 0
	b.writing = false
	b.addrs = make(map[ftltypes.Addr]struct{})
}

// snapshotAddrs returns a copy of the block's membership set, sorted by
// address, so callers can iterate it while mutating the original (GC must
// not observe its own mutation mid-scan) and so GC copies pages in the same
// order on every run.
func (b *Block) snapshotAddrs() []ftltypes.Addr {
	out := make([]ftltypes.Addr, 0, len(b.addrs))
	for a := range b.addrs {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}
