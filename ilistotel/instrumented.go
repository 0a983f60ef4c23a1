// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package ilistotel

import (
	"context"

	"github.com/gocollections/ilist"
	"github.com/gocollections/ilist/guarded"
)

// InstrumentedList pairs a guarded.List with an operation-name prefix used
// to label the spans, metrics, and log lines its exclusive-mode methods
// emit. The zero value is unusable; construct one with NewInstrumentedList.
type InstrumentedList[S any, N ilist.Node[S]] struct {
	name  string
	inner *guarded.List[S, N]
}

// NewInstrumentedList returns an InstrumentedList that instruments inner's
// exclusive-mode operations under the given name.
func NewInstrumentedList[S any, N ilist.Node[S]](name string, inner *guarded.List[S, N]) *InstrumentedList[S, N] {
	return &InstrumentedList[S, N]{name: name, inner: inner}
}

// PushBack forwards to the wrapped list uninstrumented; see the package
// doc for why pushes are not traced.
func (l *InstrumentedList[S, N]) PushBack(n N) { l.inner.PushBack(n) }

// PushFront forwards to the wrapped list uninstrumented.
func (l *InstrumentedList[S, N]) PushFront(n N) { l.inner.PushFront(n) }

// RemoveNode detaches n, recording a span, a count/duration metric pair,
// and debug log lines under "<name>.remove_node".
func (l *InstrumentedList[S, N]) RemoveNode(ctx context.Context, n N) bool {
	var ok bool
	tracedExec(ctx, l.name+".remove_node", func() {
		ok = l.inner.RemoveNode(n)
	})
	return ok
}

// RemoveIf detaches every node matching pred, instrumented under
// "<name>.remove_if".
func (l *InstrumentedList[S, N]) RemoveIf(ctx context.Context, pred func(n N) bool) (kept, removed int) {
	tracedExec(ctx, l.name+".remove_if", func() {
		kept, removed = l.inner.RemoveIf(pred)
	})
	return kept, removed
}

// Splice detaches the contiguous run from first through last, instrumented
// under "<name>.splice".
func (l *InstrumentedList[S, N]) Splice(ctx context.Context, first, last N) (ilist.Splice[S, N], bool) {
	var splice ilist.Splice[S, N]
	var ok bool
	tracedExec(ctx, l.name+".splice", func() {
		splice, ok = l.inner.Splice(first, last)
	})
	return splice, ok
}

// Clear detaches every node, instrumented under "<name>.clear".
func (l *InstrumentedList[S, N]) Clear(ctx context.Context) {
	tracedExec(ctx, l.name+".clear", func() {
		l.inner.Clear()
	})
}
