// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric

import "golang.org/x/exp/constraints"

// Addable is every type with a builtin + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Multipliable is every type with a builtin * operator.
type Multipliable interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

func Add[T Addable](a, b T) T { return a + b }

func Mul[T Multipliable](a, b T) T { return a * b }

// Max is [max] as a first class function value so that it can be handed to a fold.
func Max[T constraints.Ordered](a, b T) T { return max(a, b) }

// Min is [min] as a first class function value so that it can be handed to a fold.
func Min[T constraints.Ordered](a, b T) T { return min(a, b) }
