// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Lexer747/scanview/cmd/subcommands/scanview"
	"github.com/Lexer747/scanview/cmd/subcommands/version"
	"github.com/Lexer747/scanview/terminal/ansi"
	"github.com/Lexer747/scanview/utils/application"
	"github.com/Lexer747/scanview/utils/errors"
	"github.com/Lexer747/scanview/utils/exit"
)

// Set with -ldflags "-X main.COMMIT=..." by release builds.
//
//nolint:staticcheck
var (
	COMMIT     string
	GO_VERSION string
	BRANCH     string
	TIMESTAMP  string
	TAG        string
)

var programName = ansi.Bold(ansi.Green("scanview"))

const versionString = "version"

type subcommand struct {
	subcommandName string
	description    string
}

var commandsUsage = []subcommand{
	{
		subcommandName: ansi.Red(versionString),
		description:    programName + " " + ansi.Red(versionString) + " prints the version and build details.",
	},
}

var mainDescription = programName + " prints the running accumulation of the integers it's given," +
	" e.g. the running totals of 1 2 3 4 are [1, 3, 6, 10]."

func main() {
	info := application.MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, TIMESTAMP, TAG)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case versionString:
			v := version.GetFlags(info)
			FlagParseError(v.Parse(os.Args[2:]))
			version.RunVersion(v)
			exit.Success()
		default:
			// fallthrough
		}
	}
	s := scanview.GetFlags(info)
	subUsage := s.Usage
	s.Usage = func() {
		fmt.Fprint(s.Output(), "  "+mainDescription+"\n\n")
		for _, cmd := range commandsUsage {
			fmt.Fprint(s.Output(), "  "+cmd.subcommandName+"\n")
			fmt.Fprint(s.Output(), "      "+cmd.description+"\n")
		}
		fmt.Fprint(s.Output(), "\n")
		subUsage()
	}
	FlagParseError(s.Parse(os.Args[1:]))
	scanview.RunScanView(s)
	exit.Success()
}

func FlagParseError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		exit.Usage()
	} else {
		exit.OnError(err)
	}
}
