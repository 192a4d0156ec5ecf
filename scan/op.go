// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

import (
	"golang.org/x/exp/constraints"

	"github.com/Lexer747/scanview/utils/numeric"
)

// Combiner folds one more element [E] into an accumulation [A]. Implementations are free to keep state
// between calls (e.g. counting calls through a pointer receiver), a [View] only ever calls Combine from the
// cursors handed out by [View.Begin].
type Combiner[A, E any] interface {
	Combine(acc A, e E) A
}

// ReadOnlyCombiner is a [Combiner] which can also combine without touching any state of its own. Only
// these can be used through [View.BeginReadOnly].
type ReadOnlyCombiner[A, E any] interface {
	Combiner[A, E]
	CombineReadOnly(acc A, e E) A
}

// Addable is every element type [RunningSum] and [Plus] accept.
type Addable interface {
	numeric.Addable
}

// Op adapts a plain function to a [ReadOnlyCombiner].
type Op[A, E any] func(acc A, e E) A

func (f Op[A, E]) Combine(acc A, e E) A         { return f(acc, e) }
func (f Op[A, E]) CombineReadOnly(acc A, e E) A { return f(acc, e) }

func Plus[E Addable]() Op[E, E]               { return numeric.Add[E] }
func Times[E numeric.Multipliable]() Op[E, E] { return numeric.Mul[E] }
func Max[E constraints.Ordered]() Op[E, E]    { return numeric.Max[E] }
func Min[E constraints.Ordered]() Op[E, E]    { return numeric.Min[E] }
