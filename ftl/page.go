/*
 * Mida - logical page mapping
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

import "github.com/Bro-o/Mida/ftltypes"

// Page is the per-logical-address mapping record. A Page is either fully
// mapped (block, stream, and write time all set) or fully unmapped; no
// partial state is representable.
type Page struct {
	mapped      bool
	block       ftltypes.BlockNo
	stream      ftltypes.StreamNo
	writtenTime ftltypes.VTime
}

// Mapped reports whether the page currently points at a live copy.
func (p *Page) Mapped() bool {
	return p.mapped
}

// Block returns the page's current block. Panics if unmapped.
func (p *Page) Block() ftltypes.BlockNo {
	if !p.mapped {
		panic("ftl: Block() on unmapped page")
	}
	return p.block
}

// Stream returns the page's current stream. Panics if unmapped.
func (p *Page) Stream() ftltypes.StreamNo {
	if !p.mapped {
		panic("ftl: Stream() on unmapped page")
	}
	return p.stream
}

// WrittenTime returns the virtual time the page's lifetime is anchored to.
// Panics if unmapped.
func (p *Page) WrittenTime() ftltypes.VTime {
	if !p.mapped {
		panic("ftl: WrittenTime() on unmapped page")
	}
	return p.writtenTime
}

// Write stamps a fresh mapping: block, stream, and the write-time anchor.
func (p *Page) Write(block ftltypes.BlockNo, stream ftltypes.StreamNo, t ftltypes.VTime) {
	p.mapped = true
	p.block = block
	p.stream = stream
	p.writtenTime = t
}

// Move rewrites block and stream after a GC copy, preserving writtenTime so
// the page's original lifetime anchor survives across garbage collection.
func (p *Page) Move(block ftltypes.BlockNo, stream ftltypes.StreamNo) {
	if !p.mapped {
		panic("ftl: Move() on unmapped page")
	}
	p.block = block
	p.stream = stream
}

// Trim clears the mapping. Panics if already unmapped.
func (p *Page) Trim() {
	if !p.mapped {
		panic("ftl: Trim() on unmapped page")
	}
	p.mapped = false
	p.block = 0
	p.stream = 0
	p.writtenTime = 0
}
