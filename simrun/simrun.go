/*
 * Mida - command-line driver
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

// Package simrun holds the command-line driver shared by the two shipped
// binaries (cmd/identitydrive and cmd/midadrive). The two binaries differ
// only in which ftl/policy.Policy they hand to Main; everything else about
// argument parsing, trace replay, and reporting is identical, the way the
// teacher's src/S370/main.go is the one driver shared by every device
// configuration.
package simrun

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	getopt "github.com/pborman/getopt/v2"

	"github.com/Bro-o/Mida/console"
	"github.com/Bro-o/Mida/ftl"
	"github.com/Bro-o/Mida/ftl/policy"
	"github.com/Bro-o/Mida/ftltypes"
	"github.com/Bro-o/Mida/internal/runlog"
	"github.com/Bro-o/Mida/report"
	"github.com/Bro-o/Mida/runconfig"
	"github.com/Bro-o/Mida/tracefile"
)

// PolicyFactory builds the stream-assignment policy for a drive with
// numStreams streams. identitydrive passes policy.NewIdentity,
// midadrive passes policy.NewMiDA.
type PolicyFactory func(numStreams ftltypes.StreamNo) policy.Policy

const usage = "Usage: %s <max_lba> <ops_percent> <num_streams> <trace_path> [<trace_path> ...]\n"

// Main implements the CLI surface of spec.md §6. args is the full argv,
// argv[0] included, as github.com/pborman/getopt/v2 expects. It returns
// the process exit code.
func Main(newPolicy PolicyFactory, args []string) int {
	return run(newPolicy, args, standardOut, standardErr)
}

func run(newPolicy PolicyFactory, args []string, stdout, stderr io.Writer) int {
	prog := "ftlsim"
	if len(args) > 0 {
		prog = args[0]
	}

	set := getopt.New()
	optVerbose := set.BoolLong("verbose", 'v', "Print progress every 100,000 ticks")
	optFormat := set.StringLong("format", 'f', "", "Report format: text or yaml")
	optConfig := set.StringLong("config", 'c', "", "Optional YAML run-configuration file")
	optInteractive := set.BoolLong("interactive", 'i', "Drop into the console between traces")
	optHelp := set.BoolLong("help", 'h', "Help")

	set.Parse(args)

	if *optHelp {
		fmt.Fprintf(stdout, usage, prog)
		return 0
	}

	logLevel := slog.LevelWarn
	if *optVerbose {
		logLevel = slog.LevelInfo
	}
	logger := runlog.New(stderr, logLevel)

	cfg := runconfig.Default()
	if *optConfig != "" {
		loaded, err := runconfig.Load(*optConfig)
		if err != nil {
			logger.Error("config load failed", "path", *optConfig, "err", err)
			return 1
		}
		cfg = loaded
		logger.Info("config loaded", "path", *optConfig, "format", cfg.Format, "interactive", cfg.Interactive)
	}

	verbose := cfg.Verbose || *optVerbose
	format := cfg.Format
	if *optFormat != "" {
		format = *optFormat
	}
	if format == "" {
		format = "text"
	}
	interactive := cfg.Interactive || *optInteractive

	positional := set.Args()
	if len(positional) < 4 {
		fmt.Fprintf(stdout, usage, prog)
		return 0
	}

	maxLBA, err := strconv.ParseUint(positional[0], 10, 64)
	if err != nil {
		fmt.Fprintf(stderr, "invalid max_lba %q: %v\n", positional[0], err)
		return 1
	}
	ops, err := strconv.ParseFloat(positional[1], 64)
	if err != nil {
		fmt.Fprintf(stderr, "invalid ops_percent %q: %v\n", positional[1], err)
		return 1
	}
	numStreams, err := strconv.ParseUint(positional[2], 10, 64)
	if err != nil {
		fmt.Fprintf(stderr, "invalid num_streams %q: %v\n", positional[2], err)
		return 1
	}
	tracePaths := positional[3:]

	pol := newPolicy(ftltypes.StreamNo(numStreams))

	driveOpts := []ftl.Option{ftl.WithOutput(stdout)}
	if verbose {
		driveOpts = append(driveOpts, ftl.WithVerbose(stderr))
	}

	drive := ftl.New(ftltypes.Addr(maxLBA), ops, ftltypes.StreamNo(numStreams), pol, driveOpts...)

	runID := report.NewRun()

	for _, path := range tracePaths {
		tr, err := tracefile.Open(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}

		fmt.Fprintf(stdout, "trace length: %d\n", tr.Length())

		drive.Run(tr)
		tr.Close()

		res := report.Collect(runID, path, drive)
		if err := report.Write(stdout, format, res); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		drive.ResetStat()

		if interactive {
			c := &console.Console{Drive: drive, Run: runID, TraceName: path, Format: format}
			if quit := c.Interact(stdout, prog+"> "); quit {
				break
			}
		}
	}

	return 0
}
