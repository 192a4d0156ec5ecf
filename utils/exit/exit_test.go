// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package exit

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Lexer747/scanview/utils/errors"
)

// Not parallel, these tests swap the package level seams.
func capture(t *testing.T) (codes *[]int, out *bytes.Buffer) {
	t.Helper()
	codes = &[]int{}
	out = &bytes.Buffer{}
	prevExit, prevStderr := osExit, stderr
	osExit = func(code int) { *codes = append(*codes, code) }
	stderr = out
	t.Cleanup(func() {
		osExit, stderr = prevExit, prevStderr
	})
	return codes, out
}

func TestOnError(t *testing.T) {
	codes, out := capture(t)
	OnError(nil)
	assert.Check(t, is.Len(*codes, 0))
	assert.Check(t, is.Equal("", out.String()))

	OnError(errors.New("unknown operator \"div\""))
	assert.Check(t, is.DeepEqual([]int{errCode}, *codes))
	assert.Check(t, is.Equal("scanview: unknown operator \"div\"\n", out.String()))
}

func TestOnErrorMsg(t *testing.T) {
	codes, out := capture(t)
	OnErrorMsg(nil, "reading stdin")
	assert.Check(t, is.Len(*codes, 0))

	OnErrorMsg(errors.New("EOF"), "reading stdin")
	assert.Check(t, is.DeepEqual([]int{errCode}, *codes))
	assert.Check(t, is.Equal("scanview: reading stdin: EOF\n", out.String()))
}

func TestSuccessAndUsage(t *testing.T) {
	codes, out := capture(t)
	Success()
	Usage()
	assert.Check(t, is.DeepEqual([]int{SuccessCode, UsageCode}, *codes))
	assert.Check(t, is.Equal("", out.String()))
}

func TestOnError_Cleanup(t *testing.T) {
	codes, out := capture(t)
	prevLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prevLogger) })
	var logged bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logged, nil)))

	var order []string
	closeLog := func() {
		order = append(order, "log closed with "+strconv.Itoa(strings.Count(logged.String(), "Exiting with")))
	}
	closeProfile := func() { order = append(order, "profile") }

	OnError(nil, closeProfile, closeLog)
	assert.Check(t, is.Len(order, 0), "nothing is cleaned up without an error")

	OnErrorMsg(errors.New("EOF"), "reading stdin", closeProfile, closeLog)
	assert.Check(t, is.DeepEqual([]string{"profile", "log closed with 1"}, order))
	assert.Check(t, is.DeepEqual([]int{errCode}, *codes))
	assert.Check(t, is.Contains(logged.String(), `msg="reading stdin"`))

	order = nil
	OnError(errors.New("bad -colour"), closeProfile, closeLog)
	assert.Check(t, is.DeepEqual([]string{"profile", "log closed with 2"}, order))
	assert.Check(t, is.Equal("scanview: reading stdin: EOF\nscanview: bad -colour\n", out.String()))
}
