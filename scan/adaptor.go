// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

import "github.com/Lexer747/scanview/utils/box"

// Adaptor turns a [Sequence] of [In] into a [Sequence] of [Out] without knowing the source in advance.
// Adaptors compose with [Compose] and are applied with [Pipe].
//
// Taking part in composition is opt in: a type becomes an Adaptor by embedding [Closure].
type Adaptor[In, Out any] interface {
	Apply(src Sequence[In]) Sequence[Out]
	adaptorClosure()
}

// Closure is embedded to mark a type as an [Adaptor].
type Closure struct{}

func (Closure) adaptorClosure() {}

// AdaptorFunc lets a plain function take part in composition.
type AdaptorFunc[In, Out any] func(src Sequence[In]) Sequence[Out]

func (f AdaptorFunc[In, Out]) Apply(src Sequence[In]) Sequence[Out] { return f(src) }
func (AdaptorFunc[In, Out]) adaptorClosure()                        {}

// bound holds the arguments of a partially applied scan until the source turns up.
type bound[E, A any] struct {
	Closure
	op   Combiner[A, E]
	seed box.Box[A]
	lift func(E) A
}

func (b bound[E, A]) Apply(src Sequence[E]) Sequence[A] {
	return newView(src, b.op, b.seed, b.lift)
}

// Scan is [New] waiting for its source.
func Scan[E any](op Combiner[E, E]) Adaptor[E, E] {
	return bound[E, E]{op: op, lift: identity[E]}
}

// ScanSeeded is [NewSeeded] waiting for its source.
func ScanSeeded[E, A any](op Combiner[A, E], seed A) Adaptor[E, A] {
	return bound[E, A]{op: op, seed: box.Of(seed)}
}

type composed[A, B, C any] struct {
	Closure
	first  Adaptor[A, B]
	second Adaptor[B, C]
}

func (c composed[A, B, C]) Apply(src Sequence[A]) Sequence[C] {
	return c.second.Apply(c.first.Apply(src))
}

// Compose returns the adaptor which applies [first] and then feeds the result to [second], i.e.
//
//	Pipe(src, Compose(first, second)) == Pipe(Pipe(src, first), second)
func Compose[A, B, C any](first Adaptor[A, B], second Adaptor[B, C]) Adaptor[A, C] {
	return composed[A, B, C]{first: first, second: second}
}

// Pipe applies [adaptor] to [src], it is exactly adaptor.Apply(src).
func Pipe[In, Out any](src Sequence[In], adaptor Adaptor[In, Out]) Sequence[Out] {
	return adaptor.Apply(src)
}
