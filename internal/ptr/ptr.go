// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package ptr provides the raw, type-erased pointer-word primitives that
// the intrusive list protocols are built from: atomic load/store/swap/CAS
// over a *unsafe.Pointer slot, plus the "commit" helper used at the single
// already-reserved write in every update path.
//
// Go's sync/atomic does not expose the acquire/release/relaxed ordering
// distinctions that the specification states in terms of (every atomic
// operation on a given word is sequentially consistent with respect to
// that word). AssertStore and AssertStoreRelaxed are therefore identical in
// behavior; both names are kept so that callers can document, at each call
// site, which of the specification's two "commit" variants they are
// implementing.
package ptr

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Load reads slot with full ordering.
func Load(slot *unsafe.Pointer) unsafe.Pointer {
	return atomic.LoadPointer(slot)
}

// Store writes val into slot.
func Store(slot *unsafe.Pointer, val unsafe.Pointer) {
	atomic.StorePointer(slot, val)
}

// CompareAndSwap attempts to swap old for new, reporting whether it
// succeeded. It is the reservation step of every push/splice protocol: the
// thread that wins the CAS is the only thread permitted to perform the
// corresponding commit write.
func CompareAndSwap(slot *unsafe.Pointer, old, new unsafe.Pointer) bool {
	return atomic.CompareAndSwapPointer(slot, old, new)
}

// AssertStore performs the committing write described by the
// specification: it swaps new into slot and panics if the value it
// displaced was not expected. It is used only after a CAS-based
// reservation has already succeeded, when the protocol guarantees slot
// currently holds expected; a mismatch here means the linkage has been
// corrupted by misuse (double-linking a node, concurrent pushes of the
// same node, or mutating under the wrong lock mode).
func AssertStore(slot *unsafe.Pointer, expected, new unsafe.Pointer) {
	old := atomic.SwapPointer(slot, new)
	if old != expected {
		panic(fmt.Sprintf("ilist: corrupted linkage: expected %p, found %p", expected, old))
	}
}

// AssertStoreRelaxed is the exclusive-mode sibling of AssertStore, used
// inside regions already serialized by the caller-held exclusive lock.
func AssertStoreRelaxed(slot *unsafe.Pointer, expected, new unsafe.Pointer) {
	AssertStore(slot, expected, new)
}
