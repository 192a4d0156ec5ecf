// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterutils_test

import (
	"slices"
	"strconv"
	"testing"

	"gotest.tools/v3/assert"
	"pgregory.net/rapid"

	"github.com/Lexer747/scanview/utils/iterutils"
	"github.com/Lexer747/scanview/utils/numeric"
	"github.com/Lexer747/scanview/utils/sliceutils"
)

var hill = []int{1, 2, 3, 4, 5, 4, 3, 2, 1}

func TestScan(t *testing.T) {
	t.Parallel()
	t.Run("sum", func(t *testing.T) {
		t.Parallel()
		actual := slices.Collect(iterutils.RunningSum(slices.Values(hill)))
		assert.DeepEqual(t, []int{1, 3, 6, 10, 15, 19, 22, 24, 25}, actual)
	})
	t.Run("sum seeded", func(t *testing.T) {
		t.Parallel()
		actual := slices.Collect(iterutils.ScanSeeded(slices.Values(hill), 10, numeric.Add[int]))
		assert.DeepEqual(t, []int{11, 13, 16, 20, 25, 29, 32, 34, 35}, actual)
	})
	t.Run("max", func(t *testing.T) {
		t.Parallel()
		actual := slices.Collect(iterutils.Scan(slices.Values(hill), numeric.Max[int]))
		assert.DeepEqual(t, []int{1, 2, 3, 4, 5, 5, 5, 5, 5}, actual)
	})
	t.Run("max seeded", func(t *testing.T) {
		t.Parallel()
		actual := slices.Collect(iterutils.ScanSeeded(slices.Values(hill), 3, numeric.Max[int]))
		assert.DeepEqual(t, []int{3, 3, 3, 4, 5, 5, 5, 5, 5}, actual)
	})
	t.Run("different accumulator", func(t *testing.T) {
		t.Parallel()
		concat := func(acc string, v int) string { return acc + strconv.Itoa(v) }
		actual := slices.Collect(iterutils.ScanSeeded(slices.Values([]int{1, 2, 3}), "2", concat))
		assert.DeepEqual(t, []string{"21", "212", "2123"}, actual)
	})
	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		actual := slices.Collect(iterutils.RunningSum(slices.Values([]int{})))
		assert.Equal(t, 0, len(actual))
	})
}

func TestScan_EarlyStop(t *testing.T) {
	t.Parallel()
	var got []int
	for v := range iterutils.RunningSum(slices.Values(hill)) {
		if v > 10 {
			break
		}
		got = append(got, v)
	}
	assert.DeepEqual(t, []int{1, 3, 6, 10}, got)
}

func TestScan_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		var (
			input = rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(t, "input")
			seed  = rapid.IntRange(-1000, 1000).Draw(t, "seed")
		)
		sub := func(acc, v int) int { return acc - v }
		actual := slices.Collect(iterutils.ScanSeeded(slices.Values(input), seed, sub))
		if len(actual) != len(input) {
			t.Fatalf("ScanSeeded() changed the length: %d != %d", len(actual), len(input))
		}
		for i := range actual {
			expected := sliceutils.Fold(input[:i+1], seed, func(v, acc int) int { return sub(acc, v) })
			if actual[i] != expected {
				t.Fatalf("ScanSeeded()[%d] = %d, expected the fold of the prefix %d", i, actual[i], expected)
			}
		}
	})
}
