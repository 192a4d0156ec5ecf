// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

import "github.com/Lexer747/scanview/utils/check"

// SliceSource is a forward, sized [Sequence] over a slice. The slice is not copied, iterators read it when
// they are used so it must not be resliced while they are live.
type SliceSource[E any] struct {
	items []E
}

func FromSlice[E any](items []E) *SliceSource[E] {
	return &SliceSource[E]{items: items}
}

// Values is [FromSlice] over its arguments.
func Values[E any](items ...E) *SliceSource[E] {
	return FromSlice(items)
}

func (s *SliceSource[E]) Begin() Iterator[E] {
	return &sliceIterator[E]{src: s}
}

func (s *SliceSource[E]) ReadOnlyBegin() (Iterator[E], bool) {
	return s.Begin(), true
}

func (s *SliceSource[E]) Size() (int, bool)        { return len(s.items), true }
func (s *SliceSource[E]) ReserveHint() (int, bool) { return s.Size() }

type sliceIterator[E any] struct {
	src *SliceSource[E]
	i   int
}

func (it *sliceIterator[E]) Done() bool { return it.i >= len(it.src.items) }
func (it *sliceIterator[E]) Index() int { return it.i }

func (it *sliceIterator[E]) Value() E {
	check.Check(!it.Done(), "slice iterator: Value after the end")
	return it.src.items[it.i]
}

func (it *sliceIterator[E]) Next() {
	check.Check(!it.Done(), "slice iterator: Next after the end")
	it.i++
}

func (it *sliceIterator[E]) Clone() Iterator[E] {
	cp := *it
	return &cp
}
