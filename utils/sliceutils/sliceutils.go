// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package sliceutils

import (
	"strings"
)

// Map will create a new slice of type [OUT] from which every element comes from [slice] after the function
// [f] has been applied to it.
func Map[IN, OUT any, S ~[]IN](slice S, f func(IN) OUT) []OUT {
	ret := make([]OUT, len(slice))
	for i, in := range slice {
		ret[i] = f(in)
	}
	return ret
}

// Fold is a Left fold over the [slice] of e, applying f(base, e) to every element and returning the final
// [OUT] accumulation.
func Fold[IN, OUT any, S ~[]IN](slice S, base OUT, f func(IN, OUT) OUT) OUT {
	ret := base
	for _, in := range slice {
		ret = f(in, ret)
	}
	return ret
}

// Prefixes is every accumulation [Fold] passes through on the way to its result, one per element. It is
// the eager counterpart of a scan and is what the lazy scans are checked against.
func Prefixes[IN, OUT any, S ~[]IN](slice S, base OUT, f func(IN, OUT) OUT) []OUT {
	ret := make([]OUT, 0, len(slice))
	acc := base
	for _, in := range slice {
		acc = f(in, acc)
		ret = append(ret, acc)
	}
	return ret
}

// JoinFunc will call [strings.Join] with the separator on the slice after applying [f] to every element,
// returning the result.
func JoinFunc[S ~[]T, T any](slice S, f func(T) string, sep string) string {
	return strings.Join(Map(slice, f), sep)
}
