// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

import (
	"iter"

	"github.com/Lexer747/scanview/utils/box"
	"github.com/Lexer747/scanview/utils/check"
)

// View is the lazy scan of a [Sequence] of [E] into running accumulations of type [A]. The source,
// operation and seed are fixed once the view is made. Cursors keep a pointer back to the view, it must
// outlive them.
type View[E, A any] struct {
	base Sequence[E]
	op   Combiner[A, E]
	// roOp is op when op can combine read only, otherwise nil.
	roOp ReadOnlyCombiner[A, E]
	seed box.Box[A]
	// lift turns the first element into the first accumulation when there is no seed.
	lift func(E) A
}

// New scans [src] under [op] with no seed, the first accumulation is the first element unchanged.
func New[E any](src Sequence[E], op Combiner[E, E]) *View[E, E] {
	return newView(src, op, box.Empty[E](), identity[E])
}

// NewSeeded scans [src] under [op] starting from [seed], the first accumulation is op(seed, first element).
func NewSeeded[E, A any](src Sequence[E], op Combiner[A, E], seed A) *View[E, A] {
	return newView(src, op, box.Of(seed), nil)
}

// RunningSum is [New] with addition.
func RunningSum[E Addable](src Sequence[E]) *View[E, E] {
	return New[E](src, Plus[E]())
}

// Prescan is [NewSeeded], named after the proposal this adaptor comes from.
func Prescan[E, A any](src Sequence[E], op Combiner[A, E], seed A) *View[E, A] {
	return NewSeeded(src, op, seed)
}

func newView[E, A any](src Sequence[E], op Combiner[A, E], seed box.Box[A], lift func(E) A) *View[E, A] {
	check.Check(src != nil, "scan: nil source")
	check.Check(op != nil, "scan: nil operation")
	check.Check(seed.HasValue() || lift != nil, "scan: unseeded scan without a lift")
	v := &View[E, A]{base: src, op: op, seed: seed, lift: lift}
	if ro, ok := op.(ReadOnlyCombiner[A, E]); ok {
		v.roOp = ro
	}
	return v
}

func identity[E any](e E) E { return e }

// Begin returns a cursor at the first accumulation, or at the end if the source is empty.
func (v *View[E, A]) Begin() Iterator[A] {
	return v.Cursor()
}

// Cursor is [View.Begin] without hiding the concrete cursor type.
func (v *View[E, A]) Cursor() *Cursor[E, A] {
	return newCursor(v, v.base.Begin(), false)
}

// BeginReadOnly is [View.Cursor] for callers which must not mutate the view. It is only available when the
// source can be walked read only (see [ReadOnlySequence]) and the operation is a [ReadOnlyCombiner],
// otherwise ok is false.
func (v *View[E, A]) BeginReadOnly() (c *Cursor[E, A], ok bool) {
	if v.roOp == nil {
		return nil, false
	}
	ro, ok := v.base.(ReadOnlySequence[E])
	if !ok {
		return nil, false
	}
	it, ok := ro.ReadOnlyBegin()
	if !ok {
		return nil, false
	}
	return newCursor(v, it, true), true
}

func (v *View[E, A]) ReadOnlyBegin() (Iterator[A], bool) {
	c, ok := v.BeginReadOnly()
	if !ok {
		return nil, false
	}
	return c, true
}

// Sentinel marks the end of a [View], compare a cursor against it with [Cursor.Reached].
type Sentinel struct{}

func (v *View[E, A]) End() Sentinel { return Sentinel{} }

// Size is the size of the source, a scan never adds or removes elements.
func (v *View[E, A]) Size() (int, bool) { return SizeOf(v.base) }

func (v *View[E, A]) ReserveHint() (int, bool) { return ReserveHintOf(v.base) }

// Base is the source being scanned.
func (v *View[E, A]) Base() Sequence[E] { return v.base }

// Seeded reports whether the view was made with a seed.
func (v *View[E, A]) Seeded() bool { return v.seed.HasValue() }

// All ranges over every accumulation.
func (v *View[E, A]) All() iter.Seq[A] { return All[A](v) }
