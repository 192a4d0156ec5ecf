// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

/*
Package scan provides a lazy running-accumulation ("scan" or prefix fold) over a sequence.

For a source s and an operation op, [New] yields

	s[0], op(s[0], s[1]), op(op(s[0], s[1]), s[2]), ...

and [NewSeeded] yields

	op(seed, s[0]), op(op(seed, s[0]), s[1]), ...

Nothing is computed until a [Cursor] is advanced, each cursor holds exactly one accumulated value and the
source is only ever walked forward. A [View] is itself a [Sequence] so scans nest, and [Scan] /
[ScanSeeded] give the same thing partially applied so that it can be composed with other adaptors before
the source is known:

	peaks := scan.Compose(scan.Scan[int](scan.Plus[int]()), scan.Scan[int](scan.Max[int]()))
	sums := scan.Pipe[int, int](scan.FromSlice(readings), peaks)
	for v := range scan.All(sums) {
		...
	}

Everything here is synchronous and single threaded. Preconditions (advancing past the end, reading the
value of an end cursor) are not errors, they panic.
*/
package scan
