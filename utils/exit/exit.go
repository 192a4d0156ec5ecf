// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package exit

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Codes the scanview binary exits with.
const (
	SuccessCode = 0
	// UsageCode is used after the flag package has already printed help or a usage error.
	UsageCode = 2
	errCode   = 1
)

// Seams for tests, the process is never really exited from a test binary.
var (
	osExit           = os.Exit
	stderr io.Writer = os.Stderr
)

// OnError should be called when there is no way from the program to continue functioning normally, if err is
// not nil the program will exit and print the error which caused the issue. The [cleanup] funcs run in order
// after the exit has been logged, so a log file closed by one of them still gets the record.
func OnError(err error, cleanup ...func()) {
	if err != nil {
		slog.Error(fmt.Sprintf("Exiting with %d", errCode), "err", err.Error())
		runAll(cleanup)
		fmt.Fprintln(stderr, "scanview: "+err.Error())
		osExit(errCode)
	}
}

// OnErrorMsg is like [OnError] but has a custom message when err is not nil.
func OnErrorMsg(err error, msg string, cleanup ...func()) {
	if err != nil {
		slog.Error(fmt.Sprintf("Exiting with %d", errCode), "err", err.Error(), "msg", msg)
		runAll(cleanup)
		fmt.Fprintf(stderr, "scanview: %s: %s\n", msg, err.Error())
		osExit(errCode)
	}
}

func runAll(cleanup []func()) {
	for _, f := range cleanup {
		f()
	}
}

// Success is a alias for [os.Exit(0)].
func Success() {
	osExit(SuccessCode)
}

// Usage exits without printing anything, the flag package will have already explained the problem.
func Usage() {
	osExit(UsageCode)
}
