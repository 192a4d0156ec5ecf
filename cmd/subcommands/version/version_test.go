// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package version

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Lexer747/scanview/terminal/ansi"
	"github.com/Lexer747/scanview/utils/application"
)

func TestWrite(t *testing.T) {
	t.Parallel()
	t.Run("Local build", func(t *testing.T) {
		t.Parallel()
		var b bytes.Buffer
		write(&b, application.MakeBuildInfo("", "", "", "", ""), ansi.Plain, ansi.Plain)
		assert.Check(t, is.Equal("scanview version: local build\n", b.String()))
	})
	t.Run("Release", func(t *testing.T) {
		t.Parallel()
		var b bytes.Buffer
		info := application.MakeBuildInfo("abc123", "go1.25.0", "main", "2026-10-01T00:00:00Z", "v0.1.0")
		write(&b, info, ansi.Plain, ansi.Plain)
		assert.Check(t, is.Equal("scanview version: v0.1.0\n"+
			`Details - Commit:abc123 Branch:"main" GoVersion:"go1.25.0" BuildTimestamp:2026-10-01T00:00:00Z`+"\n",
			b.String()))
	})
	t.Run("Coloured", func(t *testing.T) {
		t.Parallel()
		var b bytes.Buffer
		write(&b, nil, ansi.Cyan, ansi.Gray)
		assert.Check(t, is.Equal("scanview version: "+ansi.Cyan("local build")+"\n", b.String()))
	})
}
