/*
 * Mida - result reporting
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

// Package report renders a Drive's counters and per-stream lifetime
// summary, the way the original simulator's printresult/printstat pair
// does, plus a machine-readable YAML mode and a per-run UUID so multiple
// trace files replayed against the same drive can be correlated in a
// shared log.
package report

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"

	"github.com/Bro-o/Mida/ftl"
)

// Run identifies one invocation of a shipped binary, stable across every
// trace file it replays against the same Drive.
type Run struct {
	ID uuid.UUID
}

// NewRun mints a fresh run identifier.
func NewRun() Run {
	return Run{ID: uuid.New()}
}

// Result is the YAML/text-renderable snapshot of one printresult/printstat
// call.
type Result struct {
	RunID       string          `yaml:"run_id"`
	Trace       string          `yaml:"trace"`
	VTime       uint64          `yaml:"vtime"`
	Writes      uint64          `yaml:"writes"`
	Trims       uint64          `yaml:"trims"`
	PagesCopied uint64          `yaml:"pages_copied"`
	WAF         float64         `yaml:"waf"`
	Streams     []StreamSummary `yaml:"streams,omitempty"`
}

// StreamSummary is one stream's lifetime sample summary.
type StreamSummary struct {
	Stream  int `yaml:"stream"`
	Samples int `yaml:"samples"`
	Average int `yaml:"average"`
	StdDev  int `yaml:"stdev"`
}

// Collect builds a Result from a Drive's current counters and per-stream
// summaries.
func Collect(run Run, traceName string, d *ftl.Drive) Result {
	c := d.Counters()
	res := Result{
		RunID:       run.ID.String(),
		Trace:       traceName,
		VTime:       uint64(c.VTime),
		Writes:      uint64(c.Writes),
		Trims:       uint64(c.Trims),
		PagesCopied: uint64(c.PagesCopied),
		WAF:         c.WAF,
	}
	for i, s := range d.StreamSummaries() {
		if s.Count == 0 {
			continue
		}
		res.Streams = append(res.Streams, StreamSummary{
			Stream:  i,
			Samples: s.Count,
			Average: s.Mean,
			StdDev:  s.StdDev,
		})
	}
	return res
}

// WriteText renders Result the way the original printstat()/printresult()
// pair does: stream summaries first, then the counters block.
func WriteText(w io.Writer, res Result) {
	for _, s := range res.Streams {
		fmt.Fprintf(w, "stream %d average %d stdev %d\n", s.Stream, s.Average, s.StdDev)
	}
	fmt.Fprintf(w, "vtime: %d\n", res.VTime)
	fmt.Fprintf(w, "writes: %d\n", res.Writes)
	fmt.Fprintf(w, "trims: %d\n", res.Trims)
	fmt.Fprintf(w, "pagescopied: %d\n", res.PagesCopied)
	fmt.Fprintf(w, "WAF: %v\n", res.WAF)
	fmt.Fprintln(w, "--------------------------------")
}

// WriteYAML renders Result as a YAML document.
func WriteYAML(w io.Writer, res Result) error {
	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("report: marshaling result: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Write renders res in the given format ("text" or "yaml").
func Write(w io.Writer, format string, res Result) error {
	switch format {
	case "yaml":
		return WriteYAML(w, res)
	default:
		WriteText(w, res)
		return nil
	}
}
