/*
 * Mida - result reporting test cases
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

package report

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/Bro-o/Mida/ftl"
	"github.com/Bro-o/Mida/ftl/policy"
)

func TestNewRunMintsDistinctIDs(t *testing.T) {
	a := NewRun()
	b := NewRun()
	if a.ID == b.ID {
		t.Errorf("two NewRun() calls produced the same ID")
	}
}

func TestCollectFromFreshDrive(t *testing.T) {
	d := ftl.New(128, 100.0, 1, policy.NewIdentity(1), ftl.WithOutput(io.Discard))
	run := NewRun()

	res := Collect(run, "trace.txt", d)
	if res.RunID != run.ID.String() {
		t.Errorf("RunID = %q, want %q", res.RunID, run.ID.String())
	}
	if res.Trace != "trace.txt" {
		t.Errorf("Trace = %q, want %q", res.Trace, "trace.txt")
	}
	if res.Writes != 0 || res.PagesCopied != 0 {
		t.Errorf("fresh drive should report zero writes/pagescopied, got %+v", res)
	}
	if len(res.Streams) != 0 {
		t.Errorf("fresh drive has no samples yet, want no stream summaries, got %+v", res.Streams)
	}
}

func TestWriteTextFormat(t *testing.T) {
	res := Result{
		VTime:       10,
		Writes:      5,
		Trims:       2,
		PagesCopied: 3,
		WAF:         1.6,
		Streams:     []StreamSummary{{Stream: 0, Samples: 4, Average: 7, StdDev: 1}},
	}

	var buf bytes.Buffer
	WriteText(&buf, res)
	out := buf.String()

	for _, want := range []string{
		"stream 0 average 7 stdev 1",
		"writes: 5",
		"trims: 2",
		"pagescopied: 3",
		"WAF: 1.6",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteText output missing %q, got:\n%s", want, out)
		}
	}
}

func TestWriteYAMLRendersFields(t *testing.T) {
	res := Result{RunID: "abc", Trace: "t.txt", Writes: 5, WAF: 1.25}

	var buf bytes.Buffer
	if err := WriteYAML(&buf, res); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "run_id: abc") {
		t.Errorf("YAML output missing run_id, got:\n%s", out)
	}
	if !strings.Contains(out, "waf: 1.25") {
		t.Errorf("YAML output missing waf, got:\n%s", out)
	}
}

func TestWriteDispatchesOnFormat(t *testing.T) {
	res := Result{Writes: 1}

	var text bytes.Buffer
	if err := Write(&text, "text", res); err != nil {
		t.Fatalf("Write(text): %v", err)
	}
	if !strings.Contains(text.String(), "writes: 1") {
		t.Errorf("Write(text) did not render text format, got:\n%s", text.String())
	}

	var yamlBuf bytes.Buffer
	if err := Write(&yamlBuf, "yaml", res); err != nil {
		t.Fatalf("Write(yaml): %v", err)
	}
	if !strings.Contains(yamlBuf.String(), "writes: 1") {
		t.Errorf("Write(yaml) did not render yaml format, got:\n%s", yamlBuf.String())
	}
}
