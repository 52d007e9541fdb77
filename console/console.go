/*
 * Mida - interactive console
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

// Package console is the optional interactive REPL a run can drop into
// between trace files, modeled on the teacher's command/reader and
// command/parser: a liner-backed prompt dispatching to a small table of
// minimum-match abbreviated commands.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/Bro-o/Mida/ftl"
	"github.com/Bro-o/Mida/report"
)

type command struct {
	name string
	min  int
	run  func(c *Console, out io.Writer) (quit bool)
}

var commandTable = []command{
	{name: "stat", min: 2, run: (*Console).doStat},
	{name: "result", min: 2, run: (*Console).doResult},
	{name: "reset", min: 3, run: (*Console).doReset},
	{name: "help", min: 1, run: (*Console).doHelp},
	{name: "continue", min: 1, run: (*Console).doContinue},
	{name: "quit", min: 1, run: (*Console).doQuit},
}

// Console binds the REPL to one drive and the trace file it just finished
// (or is about to start).
type Console struct {
	Drive     *ftl.Drive
	Run       report.Run
	TraceName string
	Format    string
}

// Interact runs the prompt loop until the user types "continue" or
// "quit". It returns true if the user asked to quit the whole program
// rather than proceed to the next trace file.
func (c *Console) Interact(out io.Writer, prompt string) bool {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			return true
		}
		line.AppendHistory(input)

		word, _, _ := strings.Cut(strings.TrimSpace(input), " ")
		if word == "" {
			continue
		}

		matches := matchCommand(word)
		switch len(matches) {
		case 0:
			fmt.Fprintf(out, "command not found: %s\n", word)
			continue
		case 1:
			if matches[0].run(c, out) {
				return matches[0].name == "quit"
			}
		default:
			fmt.Fprintf(out, "ambiguous command: %s\n", word)
		}
	}
}

func matchCommand(word string) []command {
	if word == "" {
		return nil
	}
	var matches []command
	for _, cmd := range commandTable {
		if len(word) >= cmd.min && strings.HasPrefix(cmd.name, word) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

func (c *Console) doStat(out io.Writer) bool {
	res := report.Collect(c.Run, c.TraceName, c.Drive)
	for _, s := range res.Streams {
		fmt.Fprintf(out, "stream %d average %d stdev %d\n", s.Stream, s.Average, s.StdDev)
	}
	return false
}

func (c *Console) doResult(out io.Writer) bool {
	res := report.Collect(c.Run, c.TraceName, c.Drive)
	report.WriteText(out, res)
	return false
}

func (c *Console) doReset(out io.Writer) bool {
	c.Drive.ResetStat()
	fmt.Fprintln(out, "statistics reset")
	return false
}

func (c *Console) doHelp(out io.Writer) bool {
	fmt.Fprintln(out, "commands: stat, result, reset, continue, quit, help")
	return false
}

func (c *Console) doContinue(_ io.Writer) bool {
	return true
}

func (c *Console) doQuit(_ io.Writer) bool {
	return true
}
