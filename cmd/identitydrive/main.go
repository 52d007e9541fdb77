/*
 * Mida - identitydrive command
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

// Command identitydrive replays trace files against a Drive built with the
// baseline identity stream policy: a host write goes to its hinted stream,
// and a GC-copied page stays on the stream it was already on. This mirrors
// the original simulator's manual.cpp driver.
package main

import (
	"os"

	"github.com/Bro-o/Mida/ftl/policy"
	"github.com/Bro-o/Mida/ftltypes"
	"github.com/Bro-o/Mida/simrun"
)

func main() {
	os.Exit(simrun.Main(func(numStreams ftltypes.StreamNo) policy.Policy {
		return policy.NewIdentity(numStreams)
	}, os.Args))
}
