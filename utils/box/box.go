// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package box holds a single optional value inline. A Box is either empty or holds exactly one T, the
// zero value of a Box is empty so T never has to be meaningfully default constructed.
package box

import "github.com/Lexer747/scanview/utils/check"

type Box[T any] struct {
	val     T
	present bool
}

// Of returns a Box holding [v].
func Of[T any](v T) Box[T] {
	return Box[T]{val: v, present: true}
}

// Empty returns a Box holding nothing, the same as the zero value.
func Empty[T any]() Box[T] {
	return Box[T]{}
}

func (b *Box[T]) HasValue() bool { return b.present }

// Get returns the held value, the box must not be empty.
func (b *Box[T]) Get() T {
	check.Check(b.present, "box: Get called on an empty box")
	return b.val
}

// GetOK is the comma-ok form of [Box.Get], it never panics.
func (b *Box[T]) GetOK() (T, bool) {
	return b.val, b.present
}

// Set replaces whatever the box held with [v].
func (b *Box[T]) Set(v T) {
	b.val = v
	b.present = true
}

// Take empties the box returning what it held. Take on an empty box returns the zero T and false.
func (b *Box[T]) Take() (T, bool) {
	v, ok := b.val, b.present
	b.Reset()
	return v, ok
}

// Reset empties the box, the held value is zeroed so the box no longer keeps it reachable.
func (b *Box[T]) Reset() {
	var zero T
	b.val = zero
	b.present = false
}
