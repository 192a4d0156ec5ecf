// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterutils

import (
	"iter"

	"github.com/Lexer747/scanview/utils/numeric"
)

// Scan yields the running accumulation of [in] under [op]. The first element is yielded unchanged, every
// element after that is op(previous output, element). E.g.
//
//	Scan(slices.Values([]int{1, 2, 3}), numeric.Add) // 1, 3, 6
func Scan[T any](in iter.Seq[T], op func(T, T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var acc T
		first := true
		in(func(v T) bool {
			if first {
				acc = v
				first = false
			} else {
				acc = op(acc, v)
			}
			return yield(acc)
		})
	}
}

// ScanSeeded is [Scan] but starting from [seed], so the first element yielded is op(seed, first element).
// The accumulator type is free to differ from the element type.
func ScanSeeded[IN, OUT any](in iter.Seq[IN], seed OUT, op func(OUT, IN) OUT) iter.Seq[OUT] {
	return func(yield func(OUT) bool) {
		acc := seed
		in(func(v IN) bool {
			acc = op(acc, v)
			return yield(acc)
		})
	}
}

// RunningSum is [Scan] with addition.
func RunningSum[T numeric.Addable](in iter.Seq[T]) iter.Seq[T] {
	return Scan(in, numeric.Add[T])
}
