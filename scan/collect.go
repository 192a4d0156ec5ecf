// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

import "iter"

// All ranges over [s] from a fresh Begin. Breaking out of the loop simply stops advancing.
func All[E any](s Sequence[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for it := s.Begin(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect walks all of [s] into a slice, pre-sized with [ReserveHintOf] when that is known.
func Collect[E any](s Sequence[E]) []E {
	n, _ := ReserveHintOf(s)
	ret := make([]E, 0, n)
	for v := range All(s) {
		ret = append(ret, v)
	}
	return ret
}
