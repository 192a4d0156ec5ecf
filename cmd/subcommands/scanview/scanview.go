// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scanview

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Lexer747/scanview/scan"
	"github.com/Lexer747/scanview/terminal"
	"github.com/Lexer747/scanview/terminal/ansi"
	"github.com/Lexer747/scanview/utils/application"
	"github.com/Lexer747/scanview/utils/box"
	"github.com/Lexer747/scanview/utils/check"
	"github.com/Lexer747/scanview/utils/exit"
)

type Config struct {
	*application.BuildInfo
	*application.SharedFlags
	*flag.FlagSet

	colour *string
	op     *string
	seed   *string
}

func GetFlags(info *application.BuildInfo) *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		BuildInfo:   info,
		SharedFlags: application.NewSharedFlags(f),
		FlagSet:     f,

		colour: f.String("colour", "auto", "when to colour the output, one of: "+strings.Join(terminal.ColourModes, ", ")),
		op:     f.String("op", "sum", "the operator to accumulate with, one of: "+strings.Join(OpNames, ", ")),
		seed: f.String("seed", "", "the initial accumulator, when set every output includes it and the seed\n"+
			"itself is not printed. (default unseeded, the first number is output as is)"),
	}
	f.Usage = func() {
		w := f.Output()
		fmt.Fprintf(w, "Usage of %s: prints the running accumulation of a list of integers\n"+
			"\t scanview [-op sum|product|max|min][-seed N] [NUMBERS...]\n\n"+
			"if no NUMBERS are given they are read from stdin, separated by whitespace.\n"+
			"e.g. %s -op max 1 3 2 5 4\n", os.Args[0], os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunScanView(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := c.InitLogging(c.BuildInfo)
	closeCPUProfile := c.InitCPUProfiling()
	closeMemProfile := c.InitMemProfile()
	// The order defers would run them in, the log file goes last so it sees everything.
	cleanup := []func(){closeMemProfile, closeCPUProfile, closeLogFile}

	mode, err := terminal.ParseColourMode(*c.colour)
	exit.OnErrorMsg(err, "invalid -colour", cleanup...)
	o := options{
		op:    *c.op,
		seed:  *c.seed,
		args:  c.Args(),
		style: terminal.Styler(mode, os.Stdout, ansi.Green),
	}
	slog.Debug("running scanview", "op", o.op, "seed", o.seed, "args", len(o.args), "colour", mode)
	from := "reading stdin"
	if len(o.args) > 0 {
		from = "reading arguments"
	}
	exit.OnErrorMsg(run(os.Stdin, os.Stdout, o), from, cleanup...)
	for _, f := range cleanup {
		f()
	}
}

type options struct {
	op    string
	seed  string
	args  []string
	style ansi.Style
}

// run scans either the numbers in [o.args] or, when there are none, the numbers read from [in]. The result is
// only written to [out] once the whole input was read without error.
func run(in io.Reader, out io.Writer, o options) error {
	op, err := LookupOp(o.op)
	if err != nil {
		return err
	}
	seed, err := parseSeed(o.seed)
	if err != nil {
		return err
	}

	var src scan.Sequence[int64]
	readErr := func() error { return nil }
	if len(o.args) > 0 {
		numbers, err := ParseNumbers(o.args)
		if err != nil {
			return err
		}
		src = scan.FromSlice(numbers)
	} else {
		r := newNumberReader(in)
		pull := scan.FromSeq(r.All())
		defer pull.Stop()
		src = pull
		readErr = r.Err
	}

	adaptor := scan.Scan[int64](op)
	if s, ok := seed.GetOK(); ok {
		adaptor = scan.ScanSeeded[int64, int64](op, s)
	}
	results := scan.Collect(scan.Pipe(src, adaptor))
	if err := readErr(); err != nil {
		return err
	}
	slog.Debug("scan finished", "outputs", len(results))
	_, err = fmt.Fprintln(out, Format(results, o.style))
	return err
}

func parseSeed(s string) (box.Box[int64], error) {
	if s == "" {
		return box.Empty[int64](), nil
	}
	v, err := parseNumber(s)
	if err != nil {
		return box.Empty[int64](), err
	}
	return box.Of(v), nil
}
