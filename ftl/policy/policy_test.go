/*
 * Mida - stream policy test cases
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

package policy

import (
	"testing"

	"github.com/Bro-o/Mida/ftltypes"
)

func TestIdentityNewStreamClampsHint(t *testing.T) {
	p := NewIdentity(4)
	if got := p.NewStream(0, 2); got != 2 {
		t.Errorf("NewStream(hint=2) = %d, want 2", got)
	}
	if got := p.NewStream(0, 99); got != 3 {
		t.Errorf("NewStream(hint=99) = %d, want clamp to 3", got)
	}
}

func TestIdentityGCStreamPreserved(t *testing.T) {
	p := NewIdentity(4)
	if got := p.GCStream(0, 2); got != 2 {
		t.Errorf("GCStream should preserve the stream, got %d", got)
	}
}

func TestMiDANewStreamAlwaysZero(t *testing.T) {
	p := NewMiDA(4)
	for hint := ftltypes.StreamNo(0); hint < 4; hint++ {
		if got := p.NewStream(0, hint); got != 0 {
			t.Errorf("NewStream(hint=%d) = %d, want 0", hint, got)
		}
	}
}

func TestMiDAGCStreamIncrementsAndClamps(t *testing.T) {
	p := NewMiDA(3)
	if got := p.GCStream(0, 0); got != 1 {
		t.Errorf("GCStream(0) = %d, want 1", got)
	}
	if got := p.GCStream(0, 1); got != 2 {
		t.Errorf("GCStream(1) = %d, want 2", got)
	}
	if got := p.GCStream(0, 2); got != 2 {
		t.Errorf("GCStream(2) should clamp at NumStreams-1=2, got %d", got)
	}
}

func TestClampPanicsOnZeroStreams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("clamp with zero streams did not panic")
		}
	}()
	NewIdentity(0).NewStream(0, 0)
}
