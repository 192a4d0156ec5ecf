// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

import "github.com/Lexer747/scanview/utils/check"

// TransformView lazily applies a function to every element of a [Sequence]. The function is called each
// time a value is read, it should be cheap and pure.
type TransformView[In, Out any] struct {
	base Sequence[In]
	f    func(In) Out
}

func Transform[In, Out any](src Sequence[In], f func(In) Out) *TransformView[In, Out] {
	check.Check(src != nil, "transform: nil source")
	check.Check(f != nil, "transform: nil function")
	return &TransformView[In, Out]{base: src, f: f}
}

// Map is [Transform] waiting for its source.
func Map[In, Out any](f func(In) Out) Adaptor[In, Out] {
	return AdaptorFunc[In, Out](func(src Sequence[In]) Sequence[Out] {
		return Transform(src, f)
	})
}

func (t *TransformView[In, Out]) Begin() Iterator[Out] {
	return &transformIterator[In, Out]{current: t.base.Begin(), f: t.f}
}

func (t *TransformView[In, Out]) ReadOnlyBegin() (Iterator[Out], bool) {
	ro, ok := t.base.(ReadOnlySequence[In])
	if !ok {
		return nil, false
	}
	it, ok := ro.ReadOnlyBegin()
	if !ok {
		return nil, false
	}
	return &transformIterator[In, Out]{current: it, f: t.f}, true
}

func (t *TransformView[In, Out]) Size() (int, bool)        { return SizeOf(t.base) }
func (t *TransformView[In, Out]) ReserveHint() (int, bool) { return ReserveHintOf(t.base) }

type transformIterator[In, Out any] struct {
	current Iterator[In]
	f       func(In) Out
}

func (it *transformIterator[In, Out]) Done() bool         { return it.current.Done() }
func (it *transformIterator[In, Out]) Value() Out         { return it.f(it.current.Value()) }
func (it *transformIterator[In, Out]) Next()              { it.current.Next() }
func (it *transformIterator[In, Out]) Index() int         { return it.current.Index() }
func (it *transformIterator[In, Out]) Category() Category { return CategoryOf(it.current) }

func (it *transformIterator[In, Out]) Clone() Iterator[Out] {
	check.Checkf(it.Category() == Forward, "transform: Clone of a %s iterator", it.Category())
	return &transformIterator[In, Out]{current: it.current.(Cloner[In]).Clone(), f: it.f}
}
