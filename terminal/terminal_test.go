// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminal_test

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Lexer747/scanview/terminal"
	"github.com/Lexer747/scanview/terminal/ansi"
)

func TestParseColourMode(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		in       string
		expected terminal.ColourMode
	}{
		{"", terminal.Auto},
		{"auto", terminal.Auto},
		{"always", terminal.Always},
		{"never", terminal.Never},
	} {
		mode, err := terminal.ParseColourMode(tc.in)
		assert.Check(t, err)
		assert.Check(t, is.Equal(tc.expected, mode), tc.in)
	}
	_, err := terminal.ParseColourMode("sometimes")
	assert.Check(t, is.ErrorContains(err, `unknown colour mode "sometimes"`))
}

func TestStyler(t *testing.T) {
	t.Parallel()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	assert.NilError(t, err)
	defer f.Close()

	assert.Check(t, !terminal.IsTerminal(f), "a regular file is never a terminal")
	assert.Check(t, is.Equal("x", terminal.Styler(terminal.Auto, f, ansi.Green)("x")))
	assert.Check(t, is.Equal("x", terminal.Styler(terminal.Never, f, ansi.Green)("x")))
	assert.Check(t, is.Equal(ansi.Green("x"), terminal.Styler(terminal.Always, f, ansi.Green)("x")))
	assert.Check(t, is.Equal(ansi.CSI+"92mx"+ansi.FormattingReset, ansi.Green("x")))
	assert.Check(t, is.Equal(ansi.CSI+"1m"+ansi.CSI+"92mx"+ansi.FormattingReset+ansi.FormattingReset,
		terminal.Styler(terminal.Always, f, func(s string) string { return ansi.Bold(ansi.Green(s)) })("x")))
}
