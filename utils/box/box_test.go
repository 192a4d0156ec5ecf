// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package box_test

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Lexer747/scanview/utils/box"
)

func TestBox(t *testing.T) {
	t.Parallel()
	var b box.Box[int]
	assert.Check(t, !b.HasValue())
	_, ok := b.GetOK()
	assert.Check(t, !ok)

	b.Set(5)
	assert.Check(t, b.HasValue())
	assert.Check(t, is.Equal(5, b.Get()))

	copied := b
	copied.Set(7)
	assert.Check(t, is.Equal(5, b.Get()), "copies must not alias")
	assert.Check(t, is.Equal(7, copied.Get()))

	v, ok := b.Take()
	assert.Check(t, ok)
	assert.Check(t, is.Equal(5, v))
	assert.Check(t, !b.HasValue())
}

func TestBox_EmptyGetPanics(t *testing.T) {
	t.Parallel()
	b := box.Empty[string]()
	assert.Assert(t, is.Panics(func() { b.Get() }))
	b = box.Of("held")
	assert.Check(t, is.Equal("held", b.Get()))
	b.Reset()
	assert.Assert(t, is.Panics(func() { b.Get() }))
}
