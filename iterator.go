// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package ilist

import "github.com/gocollections/ilist/internal/ptr"

// Iterator is a snapshot cursor over a List or Splice, bidirectional.
//
// Construction from a List reads both anchors under a retry loop: if one
// anchor is null while the other is not, the read landed in the brief
// window a push may expose between CAS-linking the first node of an empty
// list and committing the list's last pointer; the constructor retries
// until it observes a consistent pair (both null, or both non-null).
//
// Advancement loads next/prev without synchronization beyond what Go's
// atomics guarantee for the word itself, so an iterator may yield nodes
// that have since been detached from the list or splice it was built
// from. This is safe because the library never frees node storage; it is
// the caller's responsibility not to free a node's backing memory while
// any iterator over it is still in use.
type Iterator[S any, N Node[S]] struct {
	first rawPtr
	last  rawPtr
}

func iteratorFromList[S any, N Node[S]](l *List[S, N]) Iterator[S, N] {
	for {
		first := ptr.Load(&l.first)
		last := ptr.Load(&l.last)
		if (first == nil) == (last == nil) {
			return Iterator[S, N]{first: first, last: last}
		}
	}
}

func iteratorFromSplice[S any, N Node[S]](s *Splice[S, N]) Iterator[S, N] {
	return Iterator[S, N]{first: s.first, last: s.last}
}

// Next returns the next node in forward order, and false once exhausted.
func (it *Iterator[S, N]) Next() (n N, ok bool) {
	if it.first == nil {
		return n, false
	}
	cur := fromRaw[S, N](it.first)
	if it.first == it.last {
		it.first = nil
		it.last = nil
	} else {
		it.first = ptr.Load(&cur.header().next)
	}
	return cur, true
}

// NextBack returns the next node in reverse order, and false once
// exhausted.
func (it *Iterator[S, N]) NextBack() (n N, ok bool) {
	if it.last == nil {
		return n, false
	}
	cur := fromRaw[S, N](it.last)
	if it.first == it.last {
		it.first = nil
		it.last = nil
	} else {
		it.last = ptr.Load(&cur.header().prev)
	}
	return cur, true
}

// Last returns the captured last node directly, without consuming the
// iterator, or false if the range is empty.
func (it *Iterator[S, N]) Last() (n N, ok bool) {
	if it.last == nil {
		return n, false
	}
	return fromRaw[S, N](it.last), true
}

// All returns a range-over-func view for forward iteration.
func (it Iterator[S, N]) All() func(yield func(N) bool) {
	return func(yield func(N) bool) {
		for {
			n, ok := it.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// Rev returns a view of it that advances backward on each call to Next,
// the Go analogue of the original's DoubleEndedIterator::rev.
func (it Iterator[S, N]) Rev() ReverseIterator[S, N] {
	return ReverseIterator[S, N]{it: it}
}

// ReverseIterator walks an Iterator's range back to front.
type ReverseIterator[S any, N Node[S]] struct {
	it Iterator[S, N]
}

// Next returns the next node in reverse order, and false once exhausted.
func (r *ReverseIterator[S, N]) Next() (N, bool) {
	return r.it.NextBack()
}

// All returns a range-over-func view for reverse iteration.
func (r ReverseIterator[S, N]) All() func(yield func(N) bool) {
	return func(yield func(N) bool) {
		for {
			n, ok := r.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}
