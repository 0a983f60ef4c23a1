// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package ilist provides an intrusive doubly-linked list. The list stores
// no elements itself; caller-owned node objects embed the linkage words
// (an ilist.Header) and the list's head/tail anchor only ever holds
// pointers into nodes the caller allocated and still owns.
//
// # Concurrency discipline
//
// List is safe for concurrent use only under a discipline the type itself
// does not enforce:
//
//   - PushBack, PushFront, PushBackSplice, PushFrontSplice, Iter, All, and
//     IsEmpty may run concurrently with any number of each other ("shared
//     mode").
//   - RemoveNode, RemoveIf, Clear, and Splice require that no other
//     operation runs concurrently on the same List ("exclusive mode").
//
// The library assumes callers provide this exclusion, typically by
// guarding a List with a shared-exclusive lock taken in shared mode for
// the first group and exclusive mode for the second; see the guarded
// package for a ready-made wrapper around sync.RWMutex.
//
// # Stale reads
//
// Iterators constructed while pushes are in flight may observe nodes that
// have since been detached, or may not yet observe a node that a push is
// in the middle of linking. This is deliberate: the list favors lock-free
// pushes and readers over linearizable snapshots. A detached node remains
// safe to read through a live iterator because the library never frees
// node storage — that responsibility stays with the caller, who must not
// free or reuse a node's memory while any iterator that might still
// observe it is in use.
//
// # Safety
//
// A node must never be linked into two Lists, or twice into the same
// List, concurrently. It may, however, be the target of RemoveNode calls
// from multiple goroutines at once; at most one such call will report
// success.
package ilist
