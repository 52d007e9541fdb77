/*
 * Mida - block test cases
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
	"testing"

	"github.com/Bro-o/Mida/ftltypes"
)

func TestBlockFillAndEmpty(t *testing.T) {
	b := newBlock(0)
	if !b.Empty() {
		t.Errorf("fresh block should be empty")
	}
	b.writing = true
	for i := 0; i < PPB; i++ {
		if !b.Writable() {
			t.Fatalf("block should be writable at valid=%d", b.valid)
		}
		b.write(addrOf(i))
	}
	if b.Writable() {
		t.Errorf("full block should not be writable")
	}
	if b.Writing() {
		t.Errorf("block should clear writing flag once full")
	}
	if b.Valid() != PPB {
		t.Errorf("Valid() = %d, want %d", b.Valid(), PPB)
	}
}

func TestBlockTrimToEmptyResetsInvalid(t *testing.T) {
	b := newBlock(1)
	b.writing = true
	b.write(0)
	b.write(1)
	b.trim(0)
	if b.Invalid() != 1 {
		t.Errorf("Invalid() = %d, want 1", b.Invalid())
	}
	b.trim(1)
	if !b.Empty() {
		t.Errorf("block should be empty after trimming all valid pages")
	}
	if b.Invalid() != 0 {
		t.Errorf("Invalid() should reset to 0 once block is fully empty, got %d", b.Invalid())
	}
}

func TestBlockWriteToNonWritablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("write to non-writable block did not panic")
		}
	}()
	b := newBlock(0)
	b.write(0)
}

func TestBlockTrimUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("trim on empty block did not panic")
		}
	}()
	b := newBlock(0)
	b.trim(0)
}

func TestBlockClearResetsState(t *testing.T) {
	b := newBlock(0)
	b.writing = true
	b.write(0)
	b.clear()
	if !b.Empty() || b.Invalid() != 0 || b.Writing() {
		t.Errorf("clear() left state valid=%d invalid=%d writing=%v", b.Valid(), b.Invalid(), b.Writing())
	}
	if len(b.snapshotAddrs()) != 0 {
		t.Errorf("clear() should drop membership, got %v", b.snapshotAddrs())
	}
}

func TestBlockSnapshotAddrsIsACopy(t *testing.T) {
	b := newBlock(0)
	b.writing = true
	b.write(5)
	snap := b.snapshotAddrs()
	b.write(6)
	if len(snap) != 1 {
		t.Errorf("snapshot should not observe later writes, got %v", snap)
	}
}

func addrOf(i int) ftltypes.Addr { return ftltypes.Addr(i) }
