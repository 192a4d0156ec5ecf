// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

import "iter"

// Pipeline chains adaptors which keep the element type, e.g.
//
//	scan.From[int](src).Then(scan.Scan[int](scan.Plus[int]())).Then(scan.Scan[int](scan.Max[int]())).Collect()
//
// Applying an adaptor only builds the next lazy sequence, nothing is walked until the result is.
type Pipeline[E any] struct {
	seq Sequence[E]
}

func From[E any](src Sequence[E]) Pipeline[E] {
	return Pipeline[E]{seq: src}
}

func (p Pipeline[E]) Then(adaptor Adaptor[E, E]) Pipeline[E] {
	return Pipeline[E]{seq: adaptor.Apply(p.seq)}
}

func (p Pipeline[E]) Sequence() Sequence[E] { return p.seq }
func (p Pipeline[E]) All() iter.Seq[E]      { return All(p.seq) }
func (p Pipeline[E]) Collect() []E          { return Collect(p.seq) }
