// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/emberui/ember/tree"
)

// buildTree makes:
//
//	root
//	├── a
//	│   ├── c
//	│   └── d
//	└── b
//	    └── e
func buildTree(t *testing.T) (tr *Tree, a, b, c, d, e NodeId) {
	t.Helper()
	tr = NewTree()
	a, b = tr.NewNodeId(), tr.NewNodeId()
	require.NoError(t, tr.Add(a, Root))
	require.NoError(t, tr.Add(b, Root))
	c, d = tr.NewNodeId(), tr.NewNodeId()
	require.NoError(t, tr.Add(c, a))
	require.NoError(t, tr.Add(d, a))
	e = tr.NewNodeId()
	require.NoError(t, tr.Add(e, b))
	return
}

func backward(it *Iterator) []NodeId {
	var ids []NodeId
	for n, ok := it.NextBack(); ok; n, ok = it.NextBack() {
		ids = append(ids, n)
	}
	return ids
}

func reversed(ids []NodeId) []NodeId {
	out := make([]NodeId, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}
	return out
}

func TestForwardBackward(t *testing.T) {
	tr, a, b, c, d, e := buildTree(t)
	correct := []NodeId{Root, a, c, d, b, e}

	assert.Equal(t, correct, All(tr).Collect())
	assert.Equal(t, reversed(correct), backward(All(tr)))

	correct = []NodeId{a, c, d}
	assert.Equal(t, correct, Subtree(tr, a).Collect())
	assert.Equal(t, reversed(correct), backward(Subtree(tr, a)))
}

func TestMeetInTheMiddle(t *testing.T) {
	tr, a, b, c, d, e := buildTree(t)
	correct := []NodeId{Root, a, c, d, b, e}

	// Alternating front and back cursors must yield every node exactly
	// once, order-consistent with a single forward traversal.
	double := All(tr)
	var front, back []NodeId
	for {
		if n, ok := double.Next(); ok {
			front = append(front, n)
		}
		n, ok := double.NextBack()
		if !ok {
			break
		}
		back = append(back, n)
	}
	assert.Equal(t, correct, append(front, reversed(back)...))
}

func TestMeetInTheMiddleAllSplits(t *testing.T) {
	tr, _, _, _, _, _ := buildTree(t)
	correct := All(tr).Collect()
	n := len(correct)

	// For every k, k from the front and n-k from the back cover the
	// node set exactly once.
	for k := 0; k <= n; k++ {
		it := All(tr)
		var got []NodeId
		for i := 0; i < k; i++ {
			id, ok := it.Next()
			require.True(t, ok)
			got = append(got, id)
		}
		var tail []NodeId
		for i := 0; i < n-k; i++ {
			id, ok := it.NextBack()
			require.True(t, ok)
			tail = append(tail, id)
		}
		_, ok := it.Next()
		assert.False(t, ok)
		_, ok = it.NextBack()
		assert.False(t, ok)
		assert.Equal(t, correct, append(got, reversed(tail)...))
	}
}

func TestBreadthFirst(t *testing.T) {
	tr, a, b, c, d, e := buildTree(t)
	correct := []NodeId{Root, a, b, c, d, e}

	var got []NodeId
	it := BreadthFirst(tr)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		got = append(got, n)
	}
	assert.Equal(t, correct, got)

	// Level order: every node comes after all strictly shallower nodes.
	depth := map[NodeId]int{Root: 0, a: 1, b: 1, c: 2, d: 2, e: 2}
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, depth[got[i]], depth[got[i-1]])
	}
}

func TestIterationAfterRemove(t *testing.T) {
	tr, a, _, _, _, _ := buildTree(t)
	removed, err := tr.Remove(a)
	require.NoError(t, err)

	for _, id := range All(tr).Collect() {
		assert.NotContains(t, removed, id)
	}
}

func TestTraversalAfterRemove(t *testing.T) {
	tr, a, b, c, d, _ := buildTree(t)

	// Removal behind the front cursor: the walk finishes the live
	// remainder and never yields a freed id.
	it := All(tr)
	var got []NodeId
	for i := 0; i < 2; i++ {
		n, ok := it.Next()
		require.True(t, ok)
		got = append(got, n)
	}
	removed, err := tr.Remove(b)
	require.NoError(t, err)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		got = append(got, n)
	}
	assert.Equal(t, []NodeId{Root, a, c, d}, got)
	for _, id := range removed {
		assert.NotContains(t, got, id)
	}

	// Removal of the front cursor's own node ends the iterator instead
	// of yielding freed slots.
	it = All(tr)
	n, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, Root, n)
	_, err = tr.Remove(a)
	require.NoError(t, err)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestBackCursorAfterRemove(t *testing.T) {
	tr, _, b, _, _, e := buildTree(t)

	it := All(tr)
	n, ok := it.NextBack()
	require.True(t, ok)
	assert.Equal(t, e, n)

	// The back cursor now rests on b; removing b's subtree ends the
	// iterator rather than yielding the dead node.
	_, err := tr.Remove(b)
	require.NoError(t, err)
	_, ok = it.NextBack()
	assert.False(t, ok)
}

func TestBreadthAfterRemove(t *testing.T) {
	tr, a, b, _, _, e := buildTree(t)

	it := BreadthFirst(tr)
	n, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, Root, n)

	// a and its children are already enqueued; once removed they are
	// skipped, not yielded.
	_, err := tr.Remove(a)
	require.NoError(t, err)
	var rest []NodeId
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		rest = append(rest, n)
	}
	assert.Equal(t, []NodeId{b, e}, rest)
}

func TestChildren(t *testing.T) {
	tr, a, _, c, d, _ := buildTree(t)

	var got []NodeId
	it := Children(tr, a)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		got = append(got, n)
	}
	assert.Equal(t, []NodeId{c, d}, got)

	it = Children(tr, c)
	_, ok := it.Next()
	assert.False(t, ok)
}

func collectLayoutChildren(tr *Tree, parent NodeId) []NodeId {
	var got []NodeId
	it := LayoutChildren(tr, parent)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		got = append(got, n)
	}
	return got
}

func TestLayoutChildrenIgnored(t *testing.T) {
	tr, a, b, c, d, e := buildTree(t)

	// Ignoring a splices c and d in place among root's layout children.
	require.NoError(t, tr.SetIgnored(a, true))
	assert.Equal(t, []NodeId{c, d, b}, collectLayoutChildren(tr, Root))

	// Nested ignored nodes flatten recursively.
	require.NoError(t, tr.SetIgnored(b, true))
	assert.Equal(t, []NodeId{c, d, e}, collectLayoutChildren(tr, Root))
}

func TestDrawChildren(t *testing.T) {
	tr := NewTree()
	a, b, c := tr.NewNodeId(), tr.NewNodeId(), tr.NewNodeId()
	require.NoError(t, tr.Add(a, Root))
	require.NoError(t, tr.Add(b, Root))
	require.NoError(t, tr.Add(c, Root))
	require.NoError(t, tr.SetZOrder(a, 5))
	require.NoError(t, tr.SetZOrder(c, -1))

	var got []NodeId
	it := DrawChildren(tr, Root)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		got = append(got, n)
	}
	// Ascending z-order; b and no-z siblings keep sibling order.
	assert.Equal(t, []NodeId{c, b, a}, got)
}

func TestDrawChildrenStable(t *testing.T) {
	tr := NewTree()
	var kids []NodeId
	for i := 0; i < 4; i++ {
		id := tr.NewNodeId()
		require.NoError(t, tr.Add(id, Root))
		kids = append(kids, id)
	}

	var got []NodeId
	it := DrawChildren(tr, Root)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		got = append(got, n)
	}
	assert.Equal(t, kids, got)
}

func TestLayoutAncestors(t *testing.T) {
	tr, a, _, c, _, _ := buildTree(t)
	require.NoError(t, tr.SetIgnored(a, true))

	var got []NodeId
	it := LayoutAncestors(tr, c)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		got = append(got, n)
	}
	// a is ignored, so the layout chain skips it.
	assert.Equal(t, []NodeId{c, Root}, got)
}

func TestWalkDown(t *testing.T) {
	tr, a, b, _, _, e := buildTree(t)

	var got []NodeId
	tr.WalkDown(Root, func(n NodeId) bool {
		got = append(got, n)
		return n != a // prune a's subtree
	})
	assert.Equal(t, []NodeId{Root, a, b, e}, got)
}
