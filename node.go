// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package ilist

import "unsafe"

// rawPtr is the type-erased pointer word every linkage slot and every
// detached endpoint is stored as.
type rawPtr = unsafe.Pointer

// Header is the intrusive linkage every linkable node type must embed: two
// distinctly-addressed atomic pointer words, next and prev, initially null
// and mutated only by the protocols in this package. The addresses of the
// two fields are always distinct because they are separate struct fields,
// which is what the push and splice protocols below rely on to avoid
// self-aliasing during compare-and-swap.
//
// Header stores the linked neighbor's node pointer directly (type-erased
// through unsafe.Pointer), not the address of the neighbor's own Header, so
// that a caller-defined node type may place its Header field anywhere in
// its struct layout.
type Header struct {
	next unsafe.Pointer
	prev unsafe.Pointer
}

// Node is the contract a caller-owned object of concrete type S must
// satisfy, expressed as a constraint on S's pointer type: *S must expose
// its embedded Header and a type-erased payload accessor.
//
// Node is deliberately unsafe to implement correctly: a node must not be
// linked into two lists, or twice into one list, concurrently, and must
// not be dropped while linked. See List and Splice for the discipline
// that makes this safe in practice.
type Node[S any] interface {
	*S
	// header returns the embedded linkage word pair.
	header() *Header
	// Elem returns a type-erased borrow of the caller-owned payload.
	Elem() any
}

// header() is promoted to any struct that embeds Header, satisfying the
// unexported method Node[S] requires so callers never interact with
// Header directly.
func (h *Header) header() *Header { return h }

// Elem is the sample node implementation described by the specification: a
// struct holding the two atomic pointer words plus an embedded payload of
// type T, constructible from a T.
type Elem[T any] struct {
	Header
	val T
}

// NewElem constructs an unlinked node wrapping v.
func NewElem[T any](v T) *Elem[T] {
	return &Elem[T]{val: v}
}

// Value returns the typed payload, the statically-typed counterpart to the
// Elem() any accessor required by Node.
func (e *Elem[T]) Value() T { return e.val }

// Elem returns the payload as the type-erased borrow required by Node.
func (e *Elem[T]) Elem() any { return e.val }

func toRaw[S any, N Node[S]](n N) unsafe.Pointer {
	return unsafe.Pointer(n)
}

func fromRaw[S any, N Node[S]](p unsafe.Pointer) N {
	return N(p)
}
