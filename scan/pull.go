// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

import (
	"iter"

	"github.com/Lexer747/scanview/utils/check"
)

// PullSource adapts a push iterator into a single-pass [Sequence]. It can only be begun once, and if the
// caller stops walking before the end it must call [PullSource.Stop] to release the push iterator:
//
//	src := scan.FromSeq(lines)
//	defer src.Stop()
type PullSource[E any] struct {
	seq   iter.Seq[E]
	stop  func()
	begun bool
}

func FromSeq[E any](seq iter.Seq[E]) *PullSource[E] {
	return &PullSource[E]{seq: seq}
}

func (p *PullSource[E]) Begin() Iterator[E] {
	check.Check(!p.begun, "pull source: Begin called twice on a single-pass sequence")
	p.begun = true
	next, stop := iter.Pull(p.seq)
	p.stop = stop
	it := &pullIterator[E]{next: next, stop: stop}
	it.fetch()
	return it
}

// Stop releases the underlying push iterator, it is safe to call more than once or before Begin.
func (p *PullSource[E]) Stop() {
	if p.stop != nil {
		p.stop()
	}
}

type pullIterator[E any] struct {
	next  func() (E, bool)
	stop  func()
	cur   E
	done  bool
	index int
}

func (it *pullIterator[E]) fetch() {
	v, ok := it.next()
	if !ok {
		var zero E
		it.cur = zero
		it.done = true
		it.stop()
		return
	}
	it.cur = v
}

func (it *pullIterator[E]) Done() bool { return it.done }
func (it *pullIterator[E]) Index() int { return it.index }

func (it *pullIterator[E]) Value() E {
	check.Check(!it.done, "pull iterator: Value after the end")
	return it.cur
}

func (it *pullIterator[E]) Next() {
	check.Check(!it.done, "pull iterator: Next after the end")
	it.index++
	it.fetch()
}
