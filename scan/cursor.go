// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

import (
	"github.com/Lexer747/scanview/utils/box"
	"github.com/Lexer747/scanview/utils/check"
)

// Cursor walks a [View]. While it is on an element it holds the accumulation up to and including that
// element, at the end it holds nothing.
type Cursor[E, A any] struct {
	current  Iterator[E]
	parent   *View[E, A]
	sum      box.Box[A]
	readOnly bool
}

func newCursor[E, A any](parent *View[E, A], current Iterator[E], readOnly bool) *Cursor[E, A] {
	check.Check(current != nil, "scan: source began with a nil iterator")
	c := &Cursor[E, A]{current: current, parent: parent, readOnly: readOnly}
	if current.Done() {
		return c
	}
	first := current.Value()
	if seed, ok := parent.seed.GetOK(); ok {
		c.sum.Set(c.combine(seed, first))
	} else {
		c.sum.Set(parent.lift(first))
	}
	return c
}

func (c *Cursor[E, A]) combine(acc A, e E) A {
	if c.readOnly {
		return c.parent.roOp.CombineReadOnly(acc, e)
	}
	return c.parent.op.Combine(acc, e)
}

// Value is the accumulation at the current position. Calling it more than once without [Cursor.Next]
// returns the same value.
func (c *Cursor[E, A]) Value() A {
	check.Check(c.sum.HasValue(), "scan: Value of a cursor at the end")
	return c.sum.Get()
}

// Next folds the following element into the accumulation. Once the source runs out the cursor is at the end
// and must not be advanced again.
func (c *Cursor[E, A]) Next() {
	check.Check(!c.current.Done(), "scan: Next of a cursor at the end")
	prev, _ := c.sum.Take()
	c.current.Next()
	if c.current.Done() {
		return
	}
	c.sum.Set(c.combine(prev, c.current.Value()))
}

// Done asks the underlying source iterator every time, nothing about the end is cached in the cursor.
func (c *Cursor[E, A]) Done() bool { return c.current.Done() }

// Reached is [Cursor.Done] spelt as a comparison with [View.End].
func (c *Cursor[E, A]) Reached(Sentinel) bool { return c.Done() }

func (c *Cursor[E, A]) Index() int { return c.current.Index() }

// Equal reports whether both cursors are at the same position of the source. Only cursors from the same view
// are comparable.
func (c *Cursor[E, A]) Equal(other *Cursor[E, A]) bool {
	return c.current.Index() == other.current.Index()
}

// Base is the source iterator the cursor is walking.
func (c *Cursor[E, A]) Base() Iterator[E] { return c.current }

// Category is the category of the source iterator, a scan is never more than [Forward].
func (c *Cursor[E, A]) Category() Category { return CategoryOf(c.current) }

// Copy returns an independent cursor at the same position holding a copy of the accumulation. Only
// [Forward] cursors can be copied.
func (c *Cursor[E, A]) Copy() *Cursor[E, A] {
	check.Checkf(c.Category() == Forward, "scan: Copy of a %s cursor", c.Category())
	return &Cursor[E, A]{
		current:  c.current.(Cloner[E]).Clone(),
		parent:   c.parent,
		sum:      c.sum,
		readOnly: c.readOnly,
	}
}

func (c *Cursor[E, A]) Clone() Iterator[A] { return c.Copy() }
