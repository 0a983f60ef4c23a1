// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package guarded wraps an ilist.List with a sync.RWMutex that enforces the
// shared/exclusive discipline the core package documents but does not
// itself enforce.
package guarded

import (
	"sync"

	"github.com/gocollections/ilist"
)

// List pairs an ilist.List with the lock its operations require. The zero
// value is an empty, usable list.
type List[S any, N ilist.Node[S]] struct {
	mu    sync.RWMutex
	inner ilist.List[S, N]
}

// PushBack links n onto the tail under a shared lock.
func (l *List[S, N]) PushBack(n N) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.inner.PushBack(n)
}

// PushFront links n onto the head under a shared lock.
func (l *List[S, N]) PushFront(n N) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.inner.PushFront(n)
}

// PushBackSplice links splice onto the tail under a shared lock.
func (l *List[S, N]) PushBackSplice(splice ilist.Splice[S, N]) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.inner.PushBackSplice(splice)
}

// PushFrontSplice links splice onto the head under a shared lock.
func (l *List[S, N]) PushFrontSplice(splice ilist.Splice[S, N]) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.inner.PushFrontSplice(splice)
}

// IsEmpty reports whether the list currently holds no nodes, under a
// shared lock.
func (l *List[S, N]) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.inner.IsEmpty()
}

// Snapshot returns the values of every node currently linked, under a
// shared lock. It exists because handing out an ilist.Iterator would let
// the caller read past the lock's scope; collecting into a slice here
// keeps the lock's hold time bounded to the call.
func (l *List[S, N]) Snapshot(elem func(N) any) []any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []any
	for n := range l.inner.All() {
		out = append(out, elem(n))
	}
	return out
}

// RemoveNode detaches n under an exclusive lock.
func (l *List[S, N]) RemoveNode(n N) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.RemoveNode(n)
}

// RemoveIf detaches every node matching pred under an exclusive lock.
func (l *List[S, N]) RemoveIf(pred func(n N) bool) (kept, removed int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.RemoveIf(pred)
}

// Splice detaches the contiguous run from first through last under an
// exclusive lock.
func (l *List[S, N]) Splice(first, last N) (ilist.Splice[S, N], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Splice(first, last)
}

// Clear detaches every node under an exclusive lock.
func (l *List[S, N]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Clear()
}

// String renders the list's current contents under a shared lock.
func (l *List[S, N]) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.inner.String()
}
