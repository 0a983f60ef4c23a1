// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package ilist_test

import (
	"testing"

	"github.com/gocollections/ilist"
	"github.com/stretchr/testify/require"
)

type intNode = ilist.Elem[int]

func collect(it *ilist.Iterator[intNode, *intNode]) []int {
	var out []int
	for {
		n, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, n.Value())
	}
	return out
}

func makeNodes(n int) []*intNode {
	nodes := make([]*intNode, n)
	for i := range nodes {
		nodes[i] = ilist.NewElem(i)
	}
	return nodes
}

func TestListPushBackOrder(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	nodes := makeNodes(100)
	for _, n := range nodes {
		l.PushBack(n)
	}

	it := l.Iter()
	got := collect(&it)
	chk.Len(got, 100)
	for i, v := range got {
		chk.Equal(i, v)
	}
}

func TestListPushFrontOrder(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	nodes := makeNodes(5)
	for _, n := range nodes {
		l.PushFront(n)
	}

	it := l.Iter()
	chk.Equal([]int{4, 3, 2, 1, 0}, collect(&it))
}

func TestSplitEvenOdd(t *testing.T) {
	chk := require.New(t)

	nodes := makeNodes(100)

	var splice0, splice1 ilist.Splice[intNode, *intNode]
	for _, n := range nodes {
		if n.Value()%2 == 0 {
			splice0.PushBack(n)
		} else {
			splice1.PushFront(n)
		}
	}

	var l ilist.List[intNode, *intNode]
	l.PushBackSplice(splice0)
	l.PushFrontSplice(splice1)

	it := l.Iter()
	got := collect(&it)

	want := make([]int, 0, 100)
	for i := 99; i >= 1; i -= 2 {
		want = append(want, i)
	}
	for i := 0; i <= 98; i += 2 {
		want = append(want, i)
	}
	chk.Equal(want, got)
}

func TestListSplice(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	nodes := makeNodes(100)
	for _, n := range nodes {
		l.PushBack(n)
	}

	splice, ok := l.Splice(nodes[50], nodes[99])
	chk.True(ok)

	sIt := splice.Iter()
	gotSplice := collect(&sIt)
	want := make([]int, 0, 50)
	for i := 50; i < 100; i++ {
		want = append(want, i)
	}
	chk.Equal(want, gotSplice)

	lIt := l.Iter()
	gotResidual := collect(&lIt)
	want = nil
	for i := 0; i < 50; i++ {
		want = append(want, i)
	}
	chk.Equal(want, gotResidual)
}

func TestListSpliceRejectsStaleClaim(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	nodes := makeNodes(10)
	for _, n := range nodes {
		l.PushBack(n)
	}

	_, ok := l.Splice(nodes[0], nodes[4])
	chk.True(ok)

	// nodes[0..5] are no longer linked in l; claiming them again must fail
	// without corrupting the list.
	_, ok = l.Splice(nodes[0], nodes[4])
	chk.False(ok)

	it := l.Iter()
	chk.Equal([]int{5, 6, 7, 8, 9}, collect(&it))
}

func TestListRemoveIf(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	nodes := makeNodes(100)
	for _, n := range nodes {
		l.PushBack(n)
	}

	kept, removed := l.RemoveIf(func(n *intNode) bool {
		return n.Value()%2 == 1
	})
	chk.Equal(50, kept)
	chk.Equal(50, removed)

	it := l.Iter()
	got := collect(&it)
	want := make([]int, 0, 50)
	for i := 0; i < 100; i += 2 {
		want = append(want, i)
	}
	chk.Equal(want, got)
}

func TestListRemoveIfNoMatches(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	nodes := makeNodes(10)
	for _, n := range nodes {
		l.PushBack(n)
	}

	kept, removed := l.RemoveIf(func(*intNode) bool { return false })
	chk.Equal(10, kept)
	chk.Equal(0, removed)
}

func TestListClear(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	nodes := makeNodes(50)
	for _, n := range nodes {
		l.PushBack(n)
	}
	chk.False(l.IsEmpty())

	l.Clear()
	chk.True(l.IsEmpty())
	chk.Equal("[]", l.String())
}

func TestListRemoveNode(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	nodes := makeNodes(5)
	for _, n := range nodes {
		l.PushBack(n)
	}

	chk.True(l.RemoveNode(nodes[2]))
	chk.False(l.RemoveNode(nodes[2]))

	it := l.Iter()
	chk.Equal([]int{0, 1, 3, 4}, collect(&it))
}

func TestListRemoveEndpoints(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	nodes := makeNodes(3)
	for _, n := range nodes {
		l.PushBack(n)
	}

	chk.True(l.RemoveNode(nodes[0]))
	it := l.Iter()
	chk.Equal([]int{1, 2}, collect(&it))

	chk.True(l.RemoveNode(nodes[2]))
	it = l.Iter()
	chk.Equal([]int{1}, collect(&it))

	chk.True(l.RemoveNode(nodes[1]))
	chk.True(l.IsEmpty())
}

func TestListString(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	chk.Equal("[]", l.String())

	l.PushBack(ilist.NewElem(1))
	l.PushBack(ilist.NewElem(2))
	chk.Equal("[1, 2]", l.String())
}

func TestListReverseIteration(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	for _, n := range makeNodes(5) {
		l.PushBack(n)
	}

	it := l.Iter()
	rev := it.Rev()
	var got []int
	for {
		n, ok := rev.Next()
		if !ok {
			break
		}
		got = append(got, n.Value())
	}
	chk.Equal([]int{4, 3, 2, 1, 0}, got)
}

func TestListAllRangeFunc(t *testing.T) {
	chk := require.New(t)

	var l ilist.List[intNode, *intNode]
	for _, n := range makeNodes(3) {
		l.PushBack(n)
	}

	var got []int
	for n := range l.All() {
		got = append(got, n.Value())
	}
	chk.Equal([]int{0, 1, 2}, got)
}
