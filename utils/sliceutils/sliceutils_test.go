// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package sliceutils_test

import (
	"strconv"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Lexer747/scanview/utils/sliceutils"
)

func TestPrefixes(t *testing.T) {
	t.Parallel()
	add := func(v, acc int) int { return acc + v }
	t.Run("Running total", testCase[int]{
		Input:  []int{1, 2, 3, 4},
		Base:   0,
		F:      add,
		Output: []int{1, 3, 6, 10},
	}.Run)
	t.Run("Seeded", testCase[int]{
		Input:  []int{1, 2, 3, 4},
		Base:   10,
		F:      add,
		Output: []int{11, 13, 16, 20},
	}.Run)
	t.Run("Empty", testCase[int]{
		Input:  []int{},
		Base:   10,
		F:      add,
		Output: []int{},
	}.Run)
	t.Run("Not commutative", testCase[int]{
		Input:  []int{1, 2, 3},
		Base:   100,
		F:      func(v, acc int) int { return acc - v },
		Output: []int{99, 97, 94},
	}.Run)
}

type testCase[T any] struct {
	Input  []T
	Base   T
	F      func(T, T) T
	Output []T
}

func (tc testCase[T]) Run(t *testing.T) {
	t.Helper()
	t.Parallel()
	result := sliceutils.Prefixes(tc.Input, tc.Base, tc.F)
	assert.Check(t, is.Equal(len(tc.Output), len(result)))
	assert.Check(t, is.DeepEqual(tc.Output, result))
	if len(tc.Input) > 0 {
		assert.Check(t, is.DeepEqual(result[len(result)-1], sliceutils.Fold(tc.Input, tc.Base, tc.F)),
			"last prefix must be the fold")
	}
}

func TestJoinFunc(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1, 2, 3", sliceutils.JoinFunc([]int{1, 2, 3}, strconv.Itoa, ", "))
	assert.Equal(t, "", sliceutils.JoinFunc([]int{}, strconv.Itoa, ", "))
}
