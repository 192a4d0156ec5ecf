// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scan

// Iterator is a position in a [Sequence]. An iterator starts on the first element (or is already Done for an
// empty sequence) and only moves forward.
type Iterator[E any] interface {
	// Done reports whether the iterator is past the last element, i.e. it compares equal to the end.
	Done() bool
	// Value is the element at the current position, must not be called once Done.
	Value() E
	// Next moves to the following position, must not be called once Done.
	Next()
	// Index is how many times Next has been called since Begin. Two iterators from the same sequence are
	// at the same position iff their indexes are equal.
	Index() int
}

// Sequence is anything that can be walked from the beginning.
type Sequence[E any] interface {
	Begin() Iterator[E]
}

// ReadOnlySequence is implemented by sequences which can also be walked without mutating themselves. The
// bool reports whether that capability is actually available, wrapping sequences forward it from whatever
// they wrap.
type ReadOnlySequence[E any] interface {
	ReadOnlyBegin() (Iterator[E], bool)
}

// Cloner is implemented by iterators which can be copied, the copy advances independently of the
// original. An iterator without it can only be walked once.
type Cloner[E any] interface {
	Clone() Iterator[E]
}

// Sized is implemented by sequences which may know their length up front.
type Sized interface {
	Size() (int, bool)
}

// ReserveHinter is implemented by sequences which may know roughly how long they are, the hint is only
// used for pre-allocation.
type ReserveHinter interface {
	ReserveHint() (int, bool)
}

type Category int

const (
	// SinglePass iterators can only be walked once, there is no way to revisit an element.
	SinglePass Category = iota
	// Forward iterators can be copied and each copy walked independently.
	Forward
)

func (c Category) String() string {
	switch c {
	case SinglePass:
		return "single-pass"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// CategoryOf reports how [it] may be traversed. Iterators wrapping other iterators report their own category
// by implementing `Category() Category`, everything else is [Forward] if it implements [Cloner].
func CategoryOf[E any](it Iterator[E]) Category {
	if c, ok := it.(interface{ Category() Category }); ok {
		return c.Category()
	}
	if _, ok := it.(Cloner[E]); ok {
		return Forward
	}
	return SinglePass
}

// SizeOf reports the length of [s] when it is known.
func SizeOf(s any) (int, bool) {
	if sized, ok := s.(Sized); ok {
		return sized.Size()
	}
	return 0, false
}

// ReserveHintOf reports an estimate of the length of [s], falling back to an exact size if that's all
// that's available.
func ReserveHintOf(s any) (int, bool) {
	if hinter, ok := s.(ReserveHinter); ok {
		if n, ok := hinter.ReserveHint(); ok {
			return n, true
		}
	}
	return SizeOf(s)
}
