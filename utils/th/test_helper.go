// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"

	"github.com/Lexer747/scanview/scan"
	"github.com/Lexer747/scanview/utils/check"
)

var AllowAllUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// T is the "current" scanview most generic test interface for the most use with all test frameworks and
// third party helpers. [*testing.T] is safer and easier to use if in doubt, you will know when you need this
// helper because certain cross dependency tests have stopped compiling.
type T interface {
	rapid.TB
}

// AssertSequence walks [s] once from the beginning and checks it yields exactly [expected]. If [s] knows its
// size that is checked too. Nil and empty slices are treated as the same.
func AssertSequence[E any](t T, expected []E, s scan.Sequence[E], msgAndArgs ...any) {
	t.Helper()
	actual := scan.Collect(s)
	assert.Check(t, is.DeepEqual(expected, actual, cmpopts.EquateEmpty(), AllowAllUnexported), msgAndArgs...)
	if n, ok := scan.SizeOf(s); ok {
		assert.Check(t, is.Equal(len(expected), n), "Size() disagrees with the walked length")
	}
}

// Walk advances [c] to the end collecting every value, reading each value twice to make sure reading is
// idempotent.
func Walk[E any](t T, c scan.Iterator[E]) []E {
	t.Helper()
	ret := []E{}
	for ; !c.Done(); c.Next() {
		first := c.Value()
		second := c.Value()
		assert.Check(t, is.DeepEqual(first, second, AllowAllUnexported), "Value() changed without Next() at %d", c.Index())
		ret = append(ret, first)
	}
	return ret
}

const smallInt = 1 << 16

// DrawInts draws a slice of ints small enough that summing or subtracting them can never overflow.
func DrawInts(t *rapid.T, label string) []int {
	return rapid.SliceOfN(rapid.IntRange(-smallInt, smallInt), 0, 64).Draw(t, label)
}

// DrawInt draws a single int in the same range as [DrawInts].
func DrawInt(t *rapid.T, label string) int {
	return rapid.IntRange(-smallInt, smallInt).Draw(t, label)
}

// DrawOp draws one of a few binary operations, not all of them associative or commutative. The label of
// the operation is returned for failure messages.
func DrawOp(t *rapid.T, label string) (func(int, int) int, string) {
	ops := []struct {
		name string
		f    func(int, int) int
	}{
		{"add", func(a, b int) int { return a + b }},
		{"sub", func(a, b int) int { return a - b }},
		{"max", func(a, b int) int { return max(a, b) }},
		{"min", func(a, b int) int { return min(a, b) }},
		{"xor", func(a, b int) int { return a ^ b }},
		{"avg", func(a, b int) int { return (a + b) / 2 }},
	}
	i := rapid.IntRange(0, len(ops)-1).Draw(t, label)
	check.Checkf(i < len(ops), "op index %d out of range", i)
	return ops[i].f, ops[i].name
}
