// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package ilist

import (
	"fmt"
	"strings"

	"github.com/gocollections/ilist/internal/ptr"
)

// List is the head/tail anchor pair for an intrusive doubly-linked list of
// nodes of type N (a pointer to concrete node type S).
//
// List guarantees that push operations (either end) and reads (Iter,
// IsEmpty) may be done concurrently with each other, with stale-but-
// well-formed snapshots visible to readers. Removal operations
// (RemoveNode, RemoveIf, Clear, Splice) require the caller to hold
// exclusive access: no other push, read, or removal may run concurrently
// on the same List while one of them runs. It is suggested to guard a
// List with a shared-exclusive lock, taking the shared side for pushes
// and reads and the exclusive side for removals; see the guarded package
// for a ready-made wrapper.
//
// A node may still be targeted for removal from multiple goroutines at
// once (at most one such removal succeeds), and a single node may be
// removed from one List concurrently with pushes to a different List, but
// the same node must never be linked into two Lists, or twice into one
// List, at the same time.
type List[S any, N Node[S]] struct {
	first rawPtr
	last  rawPtr
}

// NewList returns an empty list.
func NewList[S any, N Node[S]]() *List[S, N] {
	return &List[S, N]{}
}

// PushBack appends the unlinked node n to the right of the list. May run
// concurrently with other pushes, at either end, and with readers; must
// not run concurrently with a removal on the same list.
func (l *List[S, N]) PushBack(n N) {
	l.PushBackSplice(NewSpliceUnchecked[S, N](n, n))
}

// PushFront prepends the unlinked node n to the left of the list.
// Concurrency rules match PushBack.
func (l *List[S, N]) PushFront(n N) {
	l.PushFrontSplice(NewSpliceUnchecked[S, N](n, n))
}

// PushBackSplice atomically appends an entire detached splice to the
// right of the list. The splice's internal links are already consistent;
// only the two boundary links are formed, at a single linearization
// point (the compare-and-swap that links the splice's first node in).
func (l *List[S, N]) PushBackSplice(splice Splice[S, N]) {
	if splice.IsEmpty() {
		return
	}

	lastNode := fromRaw[S, N](splice.last)
	firstNode := fromRaw[S, N](splice.first)

	ptr.Store(&lastNode.header().next, nil)

	for {
		last := ptr.Load(&l.last)

		ptr.Store(&firstNode.header().prev, last)

		if last == nil {
			if !ptr.CompareAndSwap(&l.first, nil, splice.first) {
				continue
			}
		} else {
			lastHeader := fromRaw[S, N](last).header()
			if !ptr.CompareAndSwap(&lastHeader.next, nil, splice.first) {
				continue
			}
		}

		ptr.AssertStore(&l.last, last, splice.last)
		return
	}
}

// PushFrontSplice atomically prepends an entire detached splice to the
// left of the list. Symmetric to PushBackSplice.
func (l *List[S, N]) PushFrontSplice(splice Splice[S, N]) {
	if splice.IsEmpty() {
		return
	}

	lastNode := fromRaw[S, N](splice.last)
	firstNode := fromRaw[S, N](splice.first)

	ptr.Store(&firstNode.header().prev, nil)

	for {
		first := ptr.Load(&l.first)

		ptr.Store(&lastNode.header().next, first)

		if first == nil {
			if !ptr.CompareAndSwap(&l.first, nil, splice.first) {
				continue
			}
			ptr.AssertStore(&l.last, nil, splice.last)
			return
		}

		firstHeader := fromRaw[S, N](first).header()
		if !ptr.CompareAndSwap(&firstHeader.prev, nil, splice.last) {
			continue
		}
		ptr.AssertStore(&l.first, first, splice.first)
		return
	}
}

// IsEmpty reports whether the list currently holds no nodes. Safe to call
// concurrently with pushes and other reads.
func (l *List[S, N]) IsEmpty() bool {
	return ptr.Load(&l.first) == nil && ptr.Load(&l.last) == nil
}

// Iter returns a snapshot iterator over the list, taken under a retry loop
// that eliminates the torn-anchor window a concurrent push may briefly
// expose.
func (l *List[S, N]) Iter() Iterator[S, N] {
	return iteratorFromList[S, N](l)
}

// All returns a range-over-func iterator, the idiomatic Go analogue of the
// original's blanket IntoIterator impl for &IntrusiveList.
func (l *List[S, N]) All() func(yield func(N) bool) {
	return func(yield func(N) bool) {
		it := l.Iter()
		for {
			n, ok := it.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// RemoveNode detaches n from the list, returning true if n was still
// linked in this list at the time of the call. Requires exclusive access.
func (l *List[S, N]) RemoveNode(n N) bool {
	return l.spliceImpl(n, n)
}

// spliceImpl is the two-CAS detach-and-rollback protocol described by the
// specification: it is run under exclusive access, so the CAS form exists
// only to convert a caller's stale claim about first/last into a false
// return rather than memory corruption, not to arbitrate real contention.
func (l *List[S, N]) spliceImpl(first, last N) bool {
	firstHeader := first.header()
	lastHeader := last.header()

	p := ptr.Load(&firstHeader.prev)
	next := ptr.Load(&lastHeader.next)

	var rightSlot *rawPtr
	if next == nil {
		rightSlot = &l.last
	} else {
		rightSlot = &fromRaw[S, N](next).header().prev
	}

	lastRaw := toRaw[S, N](last)
	if !ptr.CompareAndSwap(rightSlot, lastRaw, p) {
		return false
	}

	var leftSlot *rawPtr
	if p == nil {
		leftSlot = &l.first
	} else {
		leftSlot = &fromRaw[S, N](p).header().next
	}

	firstRaw := toRaw[S, N](first)
	if firstRaw == lastRaw {
		ptr.AssertStoreRelaxed(leftSlot, firstRaw, next)
	} else if !ptr.CompareAndSwap(leftSlot, firstRaw, next) {
		// Revert the change made to rightSlot above so the list is left
		// exactly as it was found.
		ptr.AssertStoreRelaxed(rightSlot, p, lastRaw)
		return false
	}

	return true
}

// Splice detaches the contiguous run [first, last] (inclusive) from the
// list and returns it as a Splice, or returns ok == false if the run did
// not belong to the list at the time of the call. Requires exclusive
// access; first must be at or to the left of last.
func (l *List[S, N]) Splice(first, last N) (splice Splice[S, N], ok bool) {
	if !l.spliceImpl(first, last) {
		return Splice[S, N]{}, false
	}
	return NewSpliceUnchecked[S, N](first, last), true
}

// RemoveIf walks the list left to right, calling pred exactly once per
// node in order, and detaches every maximal run of consecutive nodes for
// which pred returns true in a single O(1) splice per run. Returns the
// number of nodes kept and the number removed. Requires exclusive access.
func (l *List[S, N]) RemoveIf(pred func(n N) bool) (kept, removed int) {
	it := ptr.Load(&l.first)

	var beg, prev N
	var begSet bool
	var total int

	for it != nil {
		node := fromRaw[S, N](it)
		total++
		if pred(node) {
			removed++
			if !begSet {
				beg = node
				begSet = true
			}
		} else if begSet {
			if !l.spliceImpl(beg, prev) {
				panic("ilist: RemoveIf detached a run that was no longer linked")
			}
			begSet = false
		}
		prev = node
		it = ptr.Load(&node.header().next)
	}

	if begSet {
		if !l.spliceImpl(beg, prev) {
			panic("ilist: RemoveIf detached a run that was no longer linked")
		}
	}

	kept = total - removed
	return kept, removed
}

// Clear empties the list. It does not touch the previously-linked nodes'
// own next/prev fields, so reusing those nodes without first resetting
// their pointer words is a caller hazard. Requires exclusive access.
func (l *List[S, N]) Clear() {
	ptr.Store(&l.first, nil)
	ptr.Store(&l.last, nil)
}

// String renders the list's elements, the way the original's Debug impl
// walks the list with fmt.debug_list().
func (l *List[S, N]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	it := l.Iter()
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
