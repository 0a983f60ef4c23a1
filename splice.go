// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package ilist

import (
	"fmt"
	"strings"

	"github.com/gocollections/ilist/internal/ptr"
)

// Splice is a detached, contiguous run of already-linked nodes, carried as
// a transferable value. It owns no storage; its job is to move a segment
// of nodes between lists, or between itself and a list, in O(1).
//
// A Splice is owned exclusively by whichever goroutine holds it: no
// cross-thread publication happens through the Splice itself, so its
// pointer updates need no compare-and-swap, only plain atomic loads and
// stores (kept atomic only so they don't race, under the race detector's
// rules, with the CAS-based operations the same node fields may have
// participated in while linked in a List).
type Splice[S any, N Node[S]] struct {
	first rawPtr
	last  rawPtr
}

// NewSplice returns an empty splice.
func NewSplice[S any, N Node[S]]() Splice[S, N] {
	return Splice[S, N]{}
}

// NewSpliceUnchecked wraps an already-linked run [first, last].
//
// Caller must ensure: the internal chain between first and last is
// already intact, first is at or to the left of last (first and last may
// be the same node), and the run is not shared with any list or other
// splice.
func NewSpliceUnchecked[S any, N Node[S]](first, last N) Splice[S, N] {
	return Splice[S, N]{first: toRaw[S, N](first), last: toRaw[S, N](last)}
}

// IsEmpty reports whether the splice carries no nodes.
func (s *Splice[S, N]) IsEmpty() bool {
	return s.first == nil
}

// Endpoints returns the splice's first and last nodes, and false if the
// splice is empty. It is the Go analogue of the original's conversion to
// Option<(first, last)>.
func (s *Splice[S, N]) Endpoints() (first, last N, ok bool) {
	if s.IsEmpty() {
		return first, last, false
	}
	return fromRaw[S, N](s.first), fromRaw[S, N](s.last), true
}

// PushFront attaches a single unlinked node at the front of the splice.
func (s *Splice[S, N]) PushFront(n N) {
	s.PushFrontSplice(NewSpliceUnchecked[S, N](n, n))
}

// PushBack attaches a single unlinked node at the back of the splice.
func (s *Splice[S, N]) PushBack(n N) {
	s.PushBackSplice(NewSpliceUnchecked[S, N](n, n))
}

// PushFrontSplice merges other onto the front of s in O(1). Ownership of
// other's nodes transfers to s.
func (s *Splice[S, N]) PushFrontSplice(other Splice[S, N]) {
	if other.IsEmpty() {
		return
	}

	otherLast := fromRaw[S, N](other.last)
	first := s.first

	ptr.Store(&otherLast.header().next, first)

	s.first = other.first
	if first == nil {
		s.last = other.last
	} else {
		firstNode := fromRaw[S, N](first)
		ptr.Store(&firstNode.header().prev, other.last)
	}
}

// PushBackSplice merges other onto the back of s in O(1). Ownership of
// other's nodes transfers to s.
func (s *Splice[S, N]) PushBackSplice(other Splice[S, N]) {
	if other.IsEmpty() {
		return
	}

	otherFirst := fromRaw[S, N](other.first)
	last := s.last

	ptr.Store(&otherFirst.header().prev, last)

	s.last = other.last
	if last == nil {
		s.first = other.first
	} else {
		lastNode := fromRaw[S, N](last)
		ptr.Store(&lastNode.header().next, other.first)
	}
}

// Iter returns a snapshot iterator over the splice.
func (s *Splice[S, N]) Iter() Iterator[S, N] {
	return iteratorFromSplice[S, N](s)
}

// All returns a range-over-func iterator, the idiomatic Go analogue of the
// original's blanket IntoIterator impl for &Splice.
func (s *Splice[S, N]) All() func(yield func(N) bool) {
	return func(yield func(N) bool) {
		it := s.Iter()
		for {
			n, ok := it.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// String renders the splice's elements the way the original's Debug impl
// walks the list with fmt.debug_list().
func (s *Splice[S, N]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	it := s.Iter()
	first := true
	for {
		n, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", n.Elem())
	}
	b.WriteByte(']')
	return b.String()
}
